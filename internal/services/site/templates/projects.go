package templates

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/Maze77-AH/portfolio/internal/portfolio"
	"github.com/Maze77-AH/portfolio/internal/services/site/routepath"
)

// ProjectCard is one rendered project entry. Hidden cards stay in the markup
// so filtering toggles visibility instead of reflowing the document.
type ProjectCard struct {
	Slug    string
	Title   string
	Summary string
	Tags    []string
	Repo    string
	Demo    string
	Visible bool
}

// ProjectsView carries everything the projects section renders.
type ProjectsView struct {
	Tags         []string
	ActiveFilter string
	Query        string
	Cards        []ProjectCard
	Count        int
	Empty        bool
	FragmentHref string // shareable #projects?... link for the current state
}

// ProjectsSection renders the full projects section: filter chips, search
// input, and the grid fragment.
func ProjectsSection(page PageContext, view ProjectsView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<section id=\"" + portfolio.FragmentAnchor + "\" data-reveal>\n<h2>")
		b.WriteString(templ.EscapeString(page.Copy.NavProjects))
		b.WriteString("</h2>\n<div class=\"projects-controls\">\n<div class=\"filter-chips\" role=\"group\">\n")

		writeChip(&b, portfolio.FilterAll, page.Copy.FilterAll, view.ActiveFilter == portfolio.FilterAll)
		for _, tag := range view.Tags {
			writeChip(&b, tag, tag, view.ActiveFilter == tag)
		}

		b.WriteString("</div>\n<input id=\"project-search\" type=\"search\" name=\"query\" value=\"")
		b.WriteString(templ.EscapeString(view.Query))
		b.WriteString("\" placeholder=\"")
		b.WriteString(templ.EscapeString(page.Copy.SearchPlaceholder))
		b.WriteString("\" aria-label=\"")
		b.WriteString(templ.EscapeString(page.Copy.SearchLabel))
		b.WriteString("\" hx-get=\"" + routepath.Projects + "\"")
		b.WriteString(" hx-trigger=\"input changed delay:150ms\"")
		b.WriteString(" hx-target=\"#projects-grid\" hx-swap=\"outerHTML\"")
		b.WriteString(" hx-include=\"#active-filter\">\n")
		b.WriteString("<input id=\"active-filter\" type=\"hidden\" name=\"tag\" value=\"")
		b.WriteString(templ.EscapeString(view.ActiveFilter))
		b.WriteString("\">\n</div>\n")

		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := ProjectsGrid(page, view).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</section>\n")
		return err
	})
}

// ProjectsGrid renders the grid and its empty-state indicator. HTMX filter
// requests swap only this fragment.
func ProjectsGrid(page PageContext, view ProjectsView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<div id=\"projects-grid\" data-count=\"")
		b.WriteString(strconv.Itoa(view.Count))
		b.WriteString("\" data-fragment=\"")
		b.WriteString(templ.EscapeString(view.FragmentHref))
		b.WriteString("\">\n")

		for _, card := range view.Cards {
			b.WriteString("<article class=\"project-card\" data-slug=\"")
			b.WriteString(templ.EscapeString(card.Slug))
			b.WriteString("\" data-tags=\"")
			b.WriteString(templ.EscapeString(strings.Join(card.Tags, " ")))
			b.WriteString("\"")
			if !card.Visible {
				b.WriteString(" hidden")
			}
			b.WriteString(">\n<h3><a href=\"")
			b.WriteString(templ.EscapeString(routepath.ProjectDetail(card.Slug)))
			b.WriteString("\">")
			b.WriteString(templ.EscapeString(card.Title))
			b.WriteString("</a></h3>\n<p>")
			b.WriteString(templ.EscapeString(card.Summary))
			b.WriteString("</p>\n<ul class=\"tags\">")
			for _, tag := range card.Tags {
				b.WriteString("<li>")
				b.WriteString(templ.EscapeString(tag))
				b.WriteString("</li>")
			}
			b.WriteString("</ul>\n</article>\n")
		}

		b.WriteString("<p id=\"projects-empty\" class=\"empty-state\"")
		if !view.Empty {
			b.WriteString(" hidden")
		}
		b.WriteString(">")
		b.WriteString(templ.EscapeString(page.Copy.EmptyState))
		b.WriteString("</p>\n</div>\n")

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeChip(b *strings.Builder, tag, label string, active bool) {
	b.WriteString("<button type=\"button\" class=\"chip\" data-tag=\"")
	b.WriteString(templ.EscapeString(tag))
	b.WriteString("\" aria-pressed=\"")
	if active {
		b.WriteString("true")
	} else {
		b.WriteString("false")
	}
	b.WriteString("\" hx-get=\"" + routepath.Projects + "?tag=")
	b.WriteString(templ.EscapeString(tag))
	b.WriteString("\" hx-include=\"#project-search\" hx-target=\"#projects-grid\" hx-swap=\"outerHTML\">")
	b.WriteString(templ.EscapeString(label))
	b.WriteString("</button>\n")
}
