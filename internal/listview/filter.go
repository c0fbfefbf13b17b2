package listview

import "strings"

// Spec describes how to filter one entity kind.
type Spec[T any, S Status] struct {
	Status func(T) S

	// Fields are the values searched by the free-text query.
	Fields []func(T) string
}

// Matches reports whether item passes both the status selector and the query.
func (sp Spec[T, S]) Matches(item T, sel Selector[S], query string) bool {
	if !sel.Matches(sp.Status(item)) {
		return false
	}
	return sp.matchesQuery(item, strings.ToLower(query))
}

func (sp Spec[T, S]) matchesQuery(item T, lowered string) bool {
	if lowered == "" {
		return true
	}
	for _, field := range sp.Fields {
		if strings.Contains(strings.ToLower(field(item)), lowered) {
			return true
		}
	}
	return false
}

// Filter returns the records of items that match sel and query, in their
// original order. The result is never nil.
func Filter[T any, S Status](items []T, sp Spec[T, S], sel Selector[S], query string) []T {
	lowered := strings.ToLower(query)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !sel.Matches(sp.Status(item)) {
			continue
		}
		if !sp.matchesQuery(item, lowered) {
			continue
		}
		out = append(out, item)
	}
	return out
}
