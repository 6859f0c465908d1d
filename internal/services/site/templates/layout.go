package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/Maze77-AH/portfolio/internal/services/site/routepath"
)

// Layout wraps body in the page chrome: head, sticky header with section
// navigation and the theme toggle, and a footer carrying the year stamp.
func Layout(page PageContext, title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<!doctype html>\n<html lang=\"")
		b.WriteString(templ.EscapeString(page.Lang))
		b.WriteString("\" data-theme=\"")
		b.WriteString(templ.EscapeString(page.Theme))
		b.WriteString("\">\n<head>\n")
		b.WriteString("<meta charset=\"utf-8\">\n")
		b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
		b.WriteString("<title>")
		b.WriteString(templ.EscapeString(title))
		b.WriteString("</title>\n")
		b.WriteString("<link rel=\"stylesheet\" href=\"" + routepath.StaticPrefix + "site.css\">\n")
		b.WriteString("<script src=\"https://unpkg.com/htmx.org@1.9.12\" defer></script>\n")
		b.WriteString("<script src=\"" + routepath.StaticPrefix + "site.js\" defer></script>\n")
		b.WriteString("</head>\n<body>\n")

		b.WriteString("<header class=\"site-header\">\n<a class=\"brand\" href=\"/\">")
		b.WriteString(templ.EscapeString(page.SiteName))
		b.WriteString("</a>\n<nav aria-label=\"sections\">\n")
		for _, link := range page.NavLinks() {
			b.WriteString("<a href=\"")
			b.WriteString(templ.EscapeString(link.Href))
			b.WriteString("\"")
			if link.Active {
				b.WriteString(" aria-current=\"page\"")
			}
			b.WriteString(">")
			b.WriteString(templ.EscapeString(link.Label))
			b.WriteString("</a>\n")
		}
		b.WriteString("</nav>\n")
		b.WriteString("<form method=\"post\" action=\"" + routepath.Theme + "\" class=\"theme-toggle\">\n")
		b.WriteString("<input type=\"hidden\" name=\"theme\" value=\"")
		b.WriteString(templ.EscapeString(NextTheme(page.Theme)))
		b.WriteString("\">\n<button type=\"submit\" aria-label=\"")
		b.WriteString(templ.EscapeString(page.Copy.ThemeToggle))
		b.WriteString("\">&#9681;</button>\n</form>\n</header>\n<main>\n")

		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}

		footer := fmt.Sprintf(
			"</main>\n<footer>\n<p>&copy; <span id=\"year\">%d</span> %s</p>\n</footer>\n</body>\n</html>\n",
			page.Year,
			templ.EscapeString(page.SiteName),
		)
		_, err := io.WriteString(w, footer)
		return err
	})
}

// NextTheme returns the theme the toggle switches to.
func NextTheme(current string) string {
	if current == "dark" {
		return "light"
	}
	return "dark"
}
