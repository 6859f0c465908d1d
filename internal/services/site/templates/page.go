package templates

import (
	"strings"

	"github.com/Maze77-AH/portfolio/internal/services/site/routepath"
)

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang        string
	Copy        SiteCopy
	CurrentPath string
	SiteName    string
	Tagline     string
	Theme       string
	Year        int
}

// NavLink is one header navigation entry.
type NavLink struct {
	Href   string
	Label  string
	Active bool
}

// NavLinks returns the header navigation with the current section marked
// active. Section anchors on the home page are matched by path prefix so the
// projects deep link highlights the projects entry.
func (page PageContext) NavLinks() []NavLink {
	isProjects := page.CurrentPath == routepath.Projects ||
		strings.HasPrefix(page.CurrentPath, routepath.ProjectPrefix)
	return []NavLink{
		{Href: "/#about", Label: page.Copy.NavAbout},
		{Href: routepath.Projects, Label: page.Copy.NavProjects, Active: isProjects},
		{Href: "/#contact", Label: page.Copy.NavContact},
	}
}
