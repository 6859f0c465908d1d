package portfolio

import (
	"net/url"
	"strings"
)

// FragmentAnchor is the page anchor the filter state binds to.
const FragmentAnchor = "projects"

// Fragment is the shareable encoding of the filter state carried in a URL
// hash: projects?tag=<tag>&query=<text>. Default fields are omitted when
// encoding and defaulted when decoding.
type Fragment struct {
	Tag   string
	Query string
}

// FragmentFor encodes state as a fragment. The "all" filter and the empty
// query are defaults and therefore omitted.
func FragmentFor(state State) Fragment {
	fragment := Fragment{Query: state.Query}
	if state.Filter != "" && state.Filter != FilterAll {
		fragment.Tag = state.Filter
	}
	return fragment
}

// State decodes the fragment into filter state. An absent tag defaults to
// "all"; an absent query defaults to empty. Inputs are coerced, not rejected.
func (f Fragment) State() State {
	state := State{Filter: Normalize(f.Tag), Query: Normalize(f.Query)}
	if state.Filter == "" {
		state.Filter = FilterAll
	}
	return state
}

// Encode renders the fragment with empty fields omitted. The anchor is
// preserved even when no parameters are set.
func (f Fragment) Encode() string {
	params := url.Values{}
	if f.Tag != "" {
		params.Set("tag", f.Tag)
	}
	if f.Query != "" {
		params.Set("query", f.Query)
	}
	if len(params) == 0 {
		return FragmentAnchor
	}
	return FragmentAnchor + "?" + params.Encode()
}

// Values returns the fragment parameters as URL query values for server-side
// deep links such as /projects?tag=web.
func (f Fragment) Values() url.Values {
	params := url.Values{}
	if f.Tag != "" {
		params.Set("tag", f.Tag)
	}
	if f.Query != "" {
		params.Set("query", f.Query)
	}
	return params
}

// ParseFragment decodes a URL hash value. ok is false when the anchor does
// not designate the projects section. Malformed parameters inside a matching
// anchor coerce to defaults rather than failing.
func ParseFragment(fragment string) (Fragment, bool) {
	fragment = strings.TrimPrefix(strings.TrimSpace(fragment), "#")
	anchor, rawQuery, _ := strings.Cut(fragment, "?")
	if anchor != FragmentAnchor {
		return Fragment{}, false
	}
	params, err := url.ParseQuery(rawQuery)
	if err != nil {
		return Fragment{}, true
	}
	return Fragment{Tag: params.Get("tag"), Query: params.Get("query")}, true
}
