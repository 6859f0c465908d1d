package site

import (
	"net/http"
	"strings"

	"github.com/Maze77-AH/portfolio/internal/content"
	"github.com/Maze77-AH/portfolio/internal/services/site/templates"
)

// themeCookieName stores the visitor's theme choice in the browser.
const themeCookieName = "pf_theme"

// defaultTheme applies when no preference is known.
const defaultTheme = "light"

// validTheme reports whether value names a supported theme.
func validTheme(value string) bool {
	return value == "light" || value == "dark"
}

// resolveTheme picks the page theme: the cookie wins, then the preference
// store, then the default. Store failures fall through silently so the page
// still renders when storage is unavailable.
func (h *Handler) resolveTheme(r *http.Request) string {
	if cookie, err := r.Cookie(themeCookieName); err == nil && validTheme(cookie.Value) {
		return cookie.Value
	}
	if h.prefs != nil && h.visitors != nil {
		if cookie, err := r.Cookie(visitorCookieName); err == nil {
			if id, err := h.visitors.Verify(cookie.Value); err == nil {
				if theme, err := h.prefs.GetTheme(r.Context(), id); err == nil && validTheme(theme) {
					return theme
				}
			}
		}
	}
	return defaultTheme
}

// pageContext builds the shared layout context for a request.
func (h *Handler) pageContext(r *http.Request, doc content.Document) templates.PageContext {
	tag := templates.ResolveTag(r.Header.Get("Accept-Language"))
	return templates.PageContext{
		Lang:        tag.String(),
		Copy:        templates.Copy(tag),
		CurrentPath: r.URL.Path,
		SiteName:    doc.Site.Name,
		Tagline:     doc.Site.Tagline,
		Theme:       h.resolveTheme(r),
		Year:        h.now().Year(),
	}
}

// projectCards maps content projects to cards, marking visibility from the
// filter result.
func projectCards(doc content.Document, visible map[string]bool) []templates.ProjectCard {
	cards := make([]templates.ProjectCard, 0, len(doc.Projects))
	for _, project := range doc.Projects {
		cards = append(cards, templates.ProjectCard{
			Slug:    project.Slug,
			Title:   project.Title,
			Summary: project.Summary,
			Tags:    strings.Fields(strings.ToLower(project.Tags)),
			Repo:    project.Repo,
			Demo:    project.Demo,
			Visible: visible[project.Slug],
		})
	}
	return cards
}
