// Package site hosts the browser-facing portfolio service.
package site

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/Maze77-AH/portfolio/internal/content"
	"github.com/Maze77-AH/portfolio/internal/platform/viewport"
	"github.com/Maze77-AH/portfolio/internal/portfolio"
	"github.com/Maze77-AH/portfolio/internal/services/site/platform/httpx"
	"github.com/Maze77-AH/portfolio/internal/services/site/platform/observability"
	"github.com/Maze77-AH/portfolio/internal/services/site/routepath"
	"github.com/Maze77-AH/portfolio/internal/services/site/static"
	"github.com/Maze77-AH/portfolio/internal/services/site/storage"
)

// HandlerConfig defines the dependencies for the site handler. Preferences,
// SectionViews, and Visitors are optional; the page degrades to cookie-only
// behavior when they are absent.
type HandlerConfig struct {
	Document     content.Document
	Preferences  storage.PreferenceStore
	SectionViews storage.SectionViewStore
	Visitors     *Visitors
	Logger       *log.Logger
	Now          func() time.Time
}

// Handler serves the portfolio pages and fragments.
type Handler struct {
	mu      sync.RWMutex
	doc     content.Document
	records []portfolio.Record
	tags    []string

	prefs    storage.PreferenceStore
	views    storage.SectionViewStore
	visitors *Visitors
	sections *viewport.Notifier
	logger   *log.Logger
	tracer   trace.Tracer
	now      func() time.Time

	root http.Handler
}

// NewHandler builds the site handler and its route table.
func NewHandler(cfg HandlerConfig) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	h := &Handler{
		prefs:    cfg.Preferences,
		views:    cfg.SectionViews,
		visitors: cfg.Visitors,
		sections: &viewport.Notifier{},
		logger:   logger,
		tracer:   otel.Tracer("site"),
		now:      now,
	}
	h.SetDocument(cfg.Document)
	h.subscribeSectionViews()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.handleHome)
	mux.HandleFunc("GET "+routepath.Projects, h.handleProjects)
	mux.HandleFunc("GET "+routepath.ProjectPrefix+"{slug}", h.handleProjectDetail)
	mux.HandleFunc("POST "+routepath.Theme, h.handleTheme)
	mux.HandleFunc("POST "+routepath.SectionEvents, h.handleSectionEvent)
	mux.HandleFunc("GET "+routepath.Health, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.Handle("GET "+routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(static.FS))))

	h.root = httpx.Chain(mux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.RequestLogger(logger),
	)
	return h
}

// ServeHTTP dispatches to the route table.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.root.ServeHTTP(w, r)
}

// SetDocument swaps in a new content document and rebuilds the search index.
// The content watcher calls this on file changes.
func (h *Handler) SetDocument(doc content.Document) {
	if h == nil {
		return
	}
	records := portfolio.BuildIndex(doc.Sources())
	tags := doc.TagList()

	h.mu.Lock()
	h.doc = doc
	h.records = records
	h.tags = tags
	h.mu.Unlock()
}

// snapshot returns the current document and index under the read lock.
func (h *Handler) snapshot() (content.Document, []portfolio.Record, []string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.doc, h.records, h.tags
}

// subscribeSectionViews wires section visibility events into the view store.
// Only entering events count; leaving a section is not a view.
func (h *Handler) subscribeSectionViews() {
	if h.views == nil {
		return
	}
	for _, section := range []string{"hero", "about", portfolio.FragmentAnchor, "contact"} {
		section := section
		h.sections.Observe(section, func(event viewport.Event) {
			if !event.Entering {
				return
			}
			if err := h.views.RecordSectionView(context.Background(), section); err != nil {
				h.logger.Printf("record section view section=%s err=%v", section, err)
			}
		})
	}
}
