package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/Maze77-AH/portfolio/internal/services/site/routepath"
)

// ProjectDetailView carries a single project page.
type ProjectDetailView struct {
	Title   string
	Tags    []string
	Summary string
	// Body is trusted HTML authored in the content file.
	Body string
	Repo string
	Demo string
}

// ProjectDetail renders a project page with its authored body.
func ProjectDetail(page PageContext, view ProjectDetailView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<article class=\"project-detail\">\n")
		b.WriteString("<p><a href=\"")
		b.WriteString(templ.EscapeString(routepath.Root + "#projects"))
		b.WriteString("\">")
		b.WriteString(templ.EscapeString(page.Copy.DetailBack))
		b.WriteString("</a></p>\n<h1>")
		b.WriteString(templ.EscapeString(view.Title))
		b.WriteString("</h1>\n")
		if len(view.Tags) > 0 {
			b.WriteString("<ul class=\"tags\">\n")
			for _, tag := range view.Tags {
				b.WriteString("<li>")
				b.WriteString(templ.EscapeString(tag))
				b.WriteString("</li>\n")
			}
			b.WriteString("</ul>\n")
		}
		if view.Summary != "" {
			b.WriteString("<p class=\"summary\">")
			b.WriteString(templ.EscapeString(view.Summary))
			b.WriteString("</p>\n")
		}
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if view.Body != "" {
			if err := templ.Raw(view.Body).Render(ctx, w); err != nil {
				return err
			}
		}
		b.Reset()
		b.WriteString("\n<ul class=\"project-links\">\n")
		if view.Repo != "" {
			b.WriteString("<li><a href=\"")
			b.WriteString(templ.EscapeString(view.Repo))
			b.WriteString("\">")
			b.WriteString(templ.EscapeString(page.Copy.DetailRepo))
			b.WriteString("</a></li>\n")
		}
		if view.Demo != "" {
			b.WriteString("<li><a href=\"")
			b.WriteString(templ.EscapeString(view.Demo))
			b.WriteString("\">")
			b.WriteString(templ.EscapeString(page.Copy.DetailDemo))
			b.WriteString("</a></li>\n")
		}
		b.WriteString("</ul>\n</article>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// NotFound renders the localized 404 body.
func NotFound(page PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<section class=\"error-page\">\n<h1>")
		b.WriteString(templ.EscapeString(page.Copy.NotFoundTitle))
		b.WriteString("</h1>\n<p>")
		b.WriteString(templ.EscapeString(page.Copy.NotFoundBody))
		b.WriteString("</p>\n<p><a href=\"")
		b.WriteString(templ.EscapeString(routepath.Root))
		b.WriteString("\">")
		b.WriteString(templ.EscapeString(page.Copy.DetailBack))
		b.WriteString("</a></p>\n</section>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})
}
