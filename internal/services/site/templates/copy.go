package templates

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SiteCopy holds translatable copy for the portfolio page chrome.
type SiteCopy struct {
	NavAbout          string
	NavProjects       string
	NavContact        string
	ThemeToggle       string
	SearchPlaceholder string
	SearchLabel       string
	FilterAll         string
	EmptyState        string
	DetailBack        string
	DetailRepo        string
	DetailDemo        string
	ContactHeading    string
	NotFoundTitle     string
	NotFoundBody      string
}

// supported lists the locales the site ships copy for, base locale first.
var supported = []language.Tag{
	language.MustParse("en-US"),
	language.MustParse("pt-BR"),
}

var matcher = language.NewMatcher(supported)

// ResolveTag matches an Accept-Language header against the supported
// locales, falling back to the base locale.
func ResolveTag(acceptLanguage string) language.Tag {
	if strings.TrimSpace(acceptLanguage) == "" {
		return supported[0]
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return supported[0]
	}
	_, index, _ := matcher.Match(tags...)
	return supported[index]
}

// Copy returns localized page copy for the provided language tag.
func Copy(tag language.Tag) SiteCopy {
	loc := message.NewPrinter(tag)
	return SiteCopy{
		NavAbout:          localizeWithFallback(loc, "nav.about", "About"),
		NavProjects:       localizeWithFallback(loc, "nav.projects", "Projects"),
		NavContact:        localizeWithFallback(loc, "nav.contact", "Contact"),
		ThemeToggle:       localizeWithFallback(loc, "theme.toggle", "Toggle theme"),
		SearchPlaceholder: localizeWithFallback(loc, "projects.search_placeholder", "Search projects"),
		SearchLabel:       localizeWithFallback(loc, "projects.search_label", "Search projects by title, tag, or description"),
		FilterAll:         localizeWithFallback(loc, "projects.filter_all", "All"),
		EmptyState:        localizeWithFallback(loc, "projects.empty", "No projects match the current filter."),
		DetailBack:        localizeWithFallback(loc, "project.back", "Back to projects"),
		DetailRepo:        localizeWithFallback(loc, "project.repo", "Source"),
		DetailDemo:        localizeWithFallback(loc, "project.demo", "Live demo"),
		ContactHeading:    localizeWithFallback(loc, "contact.heading", "Get in touch"),
		NotFoundTitle:     localizeWithFallback(loc, "error.not_found.title", "Page not found"),
		NotFoundBody:      localizeWithFallback(loc, "error.not_found.body", "Nothing lives at this address."),
	}
}

func localizeWithFallback(loc Localizer, key string, fallback string, args ...any) string {
	if loc != nil {
		value := strings.TrimSpace(T(loc, key, args...))
		if value != "" && value != key {
			return value
		}
	}
	if len(args) > 0 {
		return fmt.Sprintf(fallback, args...)
	}
	return fallback
}
