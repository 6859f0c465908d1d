package site

import (
	"net/http"
	"strings"
)

// knownSections lists the page regions the beacon may report.
var knownSections = map[string]struct{}{
	"hero":     {},
	"about":    {},
	"projects": {},
	"contact":  {},
}

// handleSectionEvent receives visibility beacons from the page and fans them
// out to section observers. Unknown sections are dropped with a 400 so a
// stale page cannot grow the stored set.
func (h *Handler) handleSectionEvent(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	section := strings.ToLower(strings.TrimSpace(r.PostFormValue("section")))
	if _, ok := knownSections[section]; !ok {
		http.Error(w, "unknown section", http.StatusBadRequest)
		return
	}
	entering := r.PostFormValue("entering") != "false"

	h.sections.Notify(section, entering)
	w.WriteHeader(http.StatusNoContent)
}
