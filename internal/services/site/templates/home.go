package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// HomeView carries the home page sections.
type HomeView struct {
	About    string
	Email    string
	GitHub   string
	Projects ProjectsView
}

// Home renders the single-page portfolio body: hero, about, projects, and
// contact sections. Sections carry data-reveal for the scroll-reveal hook.
func Home(page PageContext, view HomeView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<section id=\"hero\" data-reveal>\n<h1>")
		b.WriteString(templ.EscapeString(page.SiteName))
		b.WriteString("</h1>\n<p class=\"tagline\">")
		b.WriteString(templ.EscapeString(page.Tagline))
		b.WriteString("</p>\n</section>\n")

		b.WriteString("<section id=\"about\" data-reveal>\n<h2>")
		b.WriteString(templ.EscapeString(page.Copy.NavAbout))
		b.WriteString("</h2>\n<p>")
		b.WriteString(templ.EscapeString(view.About))
		b.WriteString("</p>\n</section>\n")

		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := ProjectsSection(page, view.Projects).Render(ctx, w); err != nil {
			return err
		}

		b.Reset()
		b.WriteString("<section id=\"contact\" data-reveal>\n<h2>")
		b.WriteString(templ.EscapeString(page.Copy.ContactHeading))
		b.WriteString("</h2>\n<ul>\n")
		if view.Email != "" {
			b.WriteString("<li><a href=\"mailto:")
			b.WriteString(templ.EscapeString(view.Email))
			b.WriteString("\">")
			b.WriteString(templ.EscapeString(view.Email))
			b.WriteString("</a></li>\n")
		}
		if view.GitHub != "" {
			b.WriteString("<li><a href=\"")
			b.WriteString(templ.EscapeString(view.GitHub))
			b.WriteString("\" rel=\"me\">GitHub</a></li>\n")
		}
		b.WriteString("</ul>\n</section>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})
}
