package site

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/Maze77-AH/portfolio/internal/content"
	"github.com/Maze77-AH/portfolio/internal/portfolio"
	"github.com/Maze77-AH/portfolio/internal/services/site/templates"
)

// handleHome renders the full portfolio page with every project visible.
func (h *Handler) handleHome(w http.ResponseWriter, r *http.Request) {
	doc, records, tags := h.snapshot()
	page := h.pageContext(r, doc)

	result := portfolio.Apply(records, portfolio.DefaultState())
	view := templates.HomeView{
		About:    doc.Site.About,
		Email:    doc.Site.Email,
		GitHub:   doc.Site.GitHub,
		Projects: projectsView(doc, tags, result),
	}

	h.render(w, r, http.StatusOK, templates.Layout(page, doc.Site.Name, templates.Home(page, view)))
}

// projectsView assembles the projects section view from a filter result.
func projectsView(doc content.Document, tags []string, result portfolio.Result) templates.ProjectsView {
	return templates.ProjectsView{
		Tags:         tags,
		ActiveFilter: result.State.Filter,
		Query:        result.State.Query,
		Cards:        projectCards(doc, result.VisibleSet()),
		Count:        result.Count,
		Empty:        result.Empty,
		FragmentHref: "#" + portfolio.FragmentFor(result.State).Encode(),
	}
}

// render writes a component response, logging render failures after the
// status line is already out.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := component.Render(r.Context(), w); err != nil {
		h.logger.Printf("render page path=%s err=%v", r.URL.Path, err)
	}
}
