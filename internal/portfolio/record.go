package portfolio

import "strings"

// FilterAll is the sentinel filter value that matches every record.
const FilterAll = "all"

// Source carries the raw page content one record is built from.
type Source struct {
	Slug  string
	Title string
	Tags  string // whitespace-separated tag tokens
	Body  string // body text with markup already stripped
}

// Record is one immutable, searchable project entry. Records are built once
// at content load and never mutated afterwards.
type Record struct {
	slug    string
	tagList []string
	tags    map[string]struct{}
	blob    string
}

// NewRecord builds a record from raw content. Tag tokens are lowercased and
// deduplicated; the search blob concatenates title, tags, and body text in
// normalized form.
func NewRecord(src Source) Record {
	record := Record{
		slug: strings.TrimSpace(src.Slug),
		tags: map[string]struct{}{},
	}
	for _, token := range strings.Fields(strings.ToLower(src.Tags)) {
		if _, seen := record.tags[token]; seen {
			continue
		}
		record.tags[token] = struct{}{}
		record.tagList = append(record.tagList, token)
	}
	record.blob = Normalize(src.Title + " " + strings.Join(record.tagList, " ") + " " + src.Body)
	return record
}

// BuildIndex constructs records in document order.
func BuildIndex(sources []Source) []Record {
	records := make([]Record, 0, len(sources))
	for _, src := range sources {
		records = append(records, NewRecord(src))
	}
	return records
}

// Slug returns the record's stable handle.
func (r Record) Slug() string {
	return r.slug
}

// Tags returns the record's tag tokens in source order.
func (r Record) Tags() []string {
	tags := make([]string, len(r.tagList))
	copy(tags, r.tagList)
	return tags
}

// HasTag reports whether token is one of the record's tag tokens.
func (r Record) HasTag(token string) bool {
	_, ok := r.tags[token]
	return ok
}
