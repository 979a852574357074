// Package table is the record-set convention every list page is built on:
// a filter predicate, typed column descriptors and renderers over them.
package table

import (
	"net/url"
	"strings"
)

// AllStatuses is the status filter value that disables status matching.
const AllStatuses = "All"

// Query is the search text and selected status of a list request.
type Query struct {
	Text   string
	Status string
}

// ParseQuery reads q and status from request query values. The search text
// is kept as typed.
func ParseQuery(v url.Values) Query {
	return Query{
		Text:   v.Get("q"),
		Status: strings.TrimSpace(v.Get("status")),
	}
}

// AllStatus reports whether the status filter is off.
func (q Query) AllStatus() bool {
	return q.Status == "" || q.Status == AllStatuses
}

// Values encodes q back into query values, omitting empty parts.
func (q Query) Values() url.Values {
	v := url.Values{}
	if q.Text != "" {
		v.Set("q", q.Text)
	}
	if !q.AllStatus() {
		v.Set("status", q.Status)
	}
	return v
}

// Filter is the search predicate for one record type.
type Filter[T any] struct {
	// Fields are the searched accessors. A nil accessor never matches.
	Fields []func(T) string
	// Status reads the record status. A nil accessor fails every status filter.
	Status func(T) string
}

// Match reports whether record satisfies both the text and the status part of q.
func (f Filter[T]) Match(record T, q Query) bool {
	return f.matchText(record, q.Text) && f.matchStatus(record, q)
}

func (f Filter[T]) matchText(record T, text string) bool {
	if text == "" {
		return true
	}
	needle := strings.ToLower(text)
	for _, field := range f.Fields {
		if field == nil {
			continue
		}
		if strings.Contains(strings.ToLower(field(record)), needle) {
			return true
		}
	}
	return false
}

func (f Filter[T]) matchStatus(record T, q Query) bool {
	if q.AllStatus() {
		return true
	}
	if f.Status == nil {
		return false
	}
	return f.Status(record) == q.Status
}

// Apply returns the records matching q, in input order.
func Apply[T any](records []T, f Filter[T], q Query) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if f.Match(r, q) {
			out = append(out, r)
		}
	}
	return out
}

// Count returns how many records have the given status.
func Count[T any](records []T, status func(T) string, want string) int {
	n := 0
	for _, r := range records {
		if status(r) == want {
			n++
		}
	}
	return n
}

// Sum adds value over the records accepted by keep. A nil keep accepts all.
func Sum[T any](records []T, value func(T) int64, keep func(T) bool) int64 {
	var total int64
	for _, r := range records {
		if keep == nil || keep(r) {
			total += value(r)
		}
	}
	return total
}
