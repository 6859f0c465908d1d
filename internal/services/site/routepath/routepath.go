// Package routepath centralizes the site's URL paths.
package routepath

const (
	// Root serves the single-page portfolio.
	Root = "/"
	// Projects serves the projects section and its filtered grid fragment.
	Projects = "/projects"
	// ProjectPrefix precedes a project slug for detail views.
	ProjectPrefix = "/projects/"
	// Theme accepts theme preference updates.
	Theme = "/theme"
	// SectionEvents accepts viewport enter/exit beacons.
	SectionEvents = "/events/section"
	// Health reports process liveness.
	Health = "/health"
	// StaticPrefix serves embedded assets.
	StaticPrefix = "/static/"
)

// ProjectDetail builds the detail path for a project slug.
func ProjectDetail(slug string) string {
	return ProjectPrefix + slug
}
