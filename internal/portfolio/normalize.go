// Package portfolio implements the project index and filter engine behind
// the projects section: immutable searchable records, a combined tag-filter
// plus text-search predicate, and the fragment codec that makes filtered
// views shareable.
package portfolio

import "strings"

// Normalize lowercases text, trims it, and collapses internal whitespace so
// queries and search blobs compare consistently. Empty and missing inputs
// normalize to the empty string.
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
