// Package observability provides request logging middleware for the site.
package observability

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Maze77-AH/portfolio/internal/services/site/platform/httpx"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

func (rec *statusRecorder) Write(payload []byte) (int, error) {
	if rec.status == 0 {
		rec.status = http.StatusOK
	}
	n, err := rec.ResponseWriter.Write(payload)
	rec.bytes += n
	return n, err
}

// RequestLogger logs one key=value line per request: method, path, status,
// bytes written, latency, and request id.
func RequestLogger(logger *log.Logger) httpx.Middleware {
	if logger == nil {
		logger = log.Default()
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)

			status := rec.status
			if status == 0 {
				status = http.StatusOK
			}
			path := "-"
			method := "-"
			requestID := "-"
			if r != nil {
				path = r.URL.Path
				method = r.Method
				if rid := strings.TrimSpace(r.Header.Get("X-Request-ID")); rid != "" {
					requestID = rid
				}
			}
			logger.Printf(
				"request method=%s path=%s status=%d bytes=%d latency=%s request_id=%s",
				method,
				path,
				status,
				rec.bytes,
				time.Since(start).Round(time.Microsecond),
				requestID,
			)
		})
	}
}
