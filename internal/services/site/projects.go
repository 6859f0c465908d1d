package site

import (
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Maze77-AH/portfolio/internal/portfolio"
	"github.com/Maze77-AH/portfolio/internal/services/site/platform/httpx"
	"github.com/Maze77-AH/portfolio/internal/services/site/templates"
)

// handleProjects serves both the HTMX grid fragment and the full-page deep
// link. Filter state arrives as tag and query parameters; the canonical
// shareable form is mirrored back as a #projects fragment via URL
// replacement so filtering never grows browser history.
func (h *Handler) handleProjects(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "site.projects")
	defer span.End()

	doc, records, tags := h.snapshot()

	requested := portfolio.Fragment{
		Tag:   r.URL.Query().Get("tag"),
		Query: r.URL.Query().Get("query"),
	}
	engine := portfolio.NewEngine(records)
	result := engine.Restore(requested)
	span.SetAttributes(
		attribute.String("filter.tag", result.State.Filter),
		attribute.Bool("filter.empty", result.Empty),
		attribute.Int("filter.count", result.Count),
	)

	view := projectsView(doc, tags, result)
	if httpx.IsHTMXRequest(r) {
		fragment := portfolio.FragmentFor(result.State)
		httpx.ReplaceURL(w, "/#"+fragment.Encode())
		page := h.pageContext(r.WithContext(ctx), doc)
		h.render(w, r, http.StatusOK, templates.ProjectsGrid(page, view))
		return
	}

	// Plain navigation: render the whole page with the requested state
	// applied, so shared links reproduce the filtered view.
	page := h.pageContext(r.WithContext(ctx), doc)
	home := templates.HomeView{
		About:    doc.Site.About,
		Email:    doc.Site.Email,
		GitHub:   doc.Site.GitHub,
		Projects: view,
	}
	h.render(w, r, http.StatusOK, templates.Layout(page, doc.Site.Name, templates.Home(page, home)))
}

// handleProjectDetail renders a single project page.
func (h *Handler) handleProjectDetail(w http.ResponseWriter, r *http.Request) {
	doc, _, _ := h.snapshot()
	page := h.pageContext(r, doc)

	project, ok := doc.Project(r.PathValue("slug"))
	if !ok {
		h.render(w, r, http.StatusNotFound, templates.Layout(page, page.Copy.NotFoundTitle, templates.NotFound(page)))
		return
	}

	view := templates.ProjectDetailView{
		Title:   project.Title,
		Tags:    strings.Fields(strings.ToLower(project.Tags)),
		Summary: project.Summary,
		Body:    project.Body,
		Repo:    project.Repo,
		Demo:    project.Demo,
	}
	if httpx.IsHTMXRequest(r) {
		h.render(w, r, http.StatusOK, templates.ProjectDetail(page, view))
		return
	}
	h.render(w, r, http.StatusOK, templates.Layout(page, project.Title, templates.ProjectDetail(page, view)))
}
