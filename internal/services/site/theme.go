package site

import (
	"net/http"
	"strings"
	"time"

	"github.com/Maze77-AH/portfolio/internal/services/site/platform/httpx"
	"github.com/Maze77-AH/portfolio/internal/services/site/routepath"
)

// themeCookieTTL keeps the theme choice for a year.
const themeCookieTTL = 365 * 24 * time.Hour

// handleTheme persists the visitor's theme choice. The cookie is the source
// of truth; the preference store is written best-effort so a broken database
// never blocks the toggle.
func (h *Handler) handleTheme(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	theme := strings.TrimSpace(r.PostFormValue("theme"))
	if !validTheme(theme) {
		http.Error(w, "unknown theme", http.StatusBadRequest)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     themeCookieName,
		Value:    theme,
		Path:     "/",
		MaxAge:   int(themeCookieTTL / time.Second),
		SameSite: http.SameSiteLaxMode,
	})

	if h.prefs != nil && h.visitors != nil {
		if id := h.visitors.VisitorID(w, r); id != "" {
			if err := h.prefs.PutTheme(r.Context(), id, theme); err != nil {
				h.logger.Printf("persist theme visitor=%s err=%v", id, err)
			}
		}
	}

	httpx.WriteRedirect(w, r, redirectTarget(r))
}

// redirectTarget returns a same-site path to send the visitor back to.
func redirectTarget(r *http.Request) string {
	referer := strings.TrimSpace(r.Header.Get("Referer"))
	if strings.HasPrefix(referer, "/") {
		return referer
	}
	if parsed, err := r.URL.Parse(referer); err == nil && referer != "" {
		if parsed.Host == r.Host {
			target := parsed.Path
			if parsed.Fragment != "" {
				target += "#" + parsed.Fragment
			}
			return target
		}
	}
	return routepath.Root
}
