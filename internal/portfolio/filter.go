package portfolio

import "strings"

// State is the filter state: the active tag filter and the normalized search
// query. The zero value is not valid; use DefaultState.
type State struct {
	Filter string
	Query  string
}

// DefaultState matches every record.
func DefaultState() State {
	return State{Filter: FilterAll}
}

// MatchesFilter reports whether the record passes the active tag filter.
// Unknown tags simply match zero records.
func MatchesFilter(record Record, state State) bool {
	return state.Filter == FilterAll || record.HasTag(state.Filter)
}

// MatchesSearch reports whether the record passes the active query. An empty
// query matches everything.
func MatchesSearch(record Record, state State) bool {
	return state.Query == "" || strings.Contains(record.blob, state.Query)
}

// Result reports the outcome of one visibility pass.
type Result struct {
	Visible []string // slugs of visible records in document order
	Count   int
	Empty   bool // show the empty-state indicator
	State   State
}

// VisibleSet returns visibility keyed by slug for template rendering.
func (r Result) VisibleSet() map[string]bool {
	set := make(map[string]bool, len(r.Visible))
	for _, slug := range r.Visible {
		set[slug] = true
	}
	return set
}

// Apply runs one visibility pass over records in document order. No sorting
// is performed; a filter is not a ranked search.
func Apply(records []Record, state State) Result {
	result := Result{State: state}
	for _, record := range records {
		if MatchesFilter(record, state) && MatchesSearch(record, state) {
			result.Visible = append(result.Visible, record.slug)
		}
	}
	result.Count = len(result.Visible)
	result.Empty = result.Count == 0
	return result
}

// Engine applies the combined filter to a fixed record index and mirrors its
// state through an optional fragment writer. It exposes only SetFilter and
// SetQuery as mutators; predicates stay pure functions over (record, state).
type Engine struct {
	records       []Record
	state         State
	writeFragment func(Fragment)
}

// Option configures an Engine.
type Option func(*Engine)

// WithFragmentWriter registers the callback invoked with the current fragment
// state after every interactive pass. The callback must replace the current
// history entry, never push a new one.
func WithFragmentWriter(write func(Fragment)) Option {
	return func(e *Engine) {
		e.writeFragment = write
	}
}

// NewEngine builds an engine over records in document order with the default
// match-everything state.
func NewEngine(records []Record, opts ...Option) *Engine {
	engine := &Engine{records: records, state: DefaultState()}
	for _, opt := range opts {
		opt(engine)
	}
	return engine
}

// SetFilter normalizes tag (empty or absent means "all"), stores it as the
// active filter, and recomputes visibility.
func (e *Engine) SetFilter(tag string) Result {
	tag = Normalize(tag)
	if tag == "" {
		tag = FilterAll
	}
	e.state.Filter = tag
	return e.apply(false)
}

// SetQuery normalizes text, stores it as the active query, and recomputes
// visibility.
func (e *Engine) SetQuery(text string) Result {
	e.state.Query = Normalize(text)
	return e.apply(false)
}

// Restore applies state decoded from a fragment without writing the fragment
// back, producing the same visible set a user would reach interactively.
func (e *Engine) Restore(fragment Fragment) Result {
	e.state = fragment.State()
	return e.apply(true)
}

// State returns the current filter state.
func (e *Engine) State() State {
	return e.state
}

func (e *Engine) apply(suppressFragment bool) Result {
	result := Apply(e.records, e.state)
	if !suppressFragment && e.writeFragment != nil {
		e.writeFragment(FragmentFor(e.state))
	}
	return result
}
