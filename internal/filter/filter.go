// Package filter applies search and categorical predicates over record
// slices. Results are always new slices in input order; the source is
// never mutated, so applying the same predicate twice is a no-op.
package filter

import "strings"

// Wildcard is the categorical value that matches every record.
const Wildcard = "all"

// Search returns the records whose designated text fields contain the
// query as a case-insensitive substring. An empty query matches all
// records. Lowering is ASCII-safe, which the dataset vocabulary stays
// within.
func Search[T any](records []T, query string, fields func(T) []string) []T {
	out := make([]T, 0, len(records))
	if query == "" {
		return append(out, records...)
	}
	needle := strings.ToLower(query)
	for _, r := range records {
		for _, field := range fields(r) {
			if strings.Contains(strings.ToLower(field), needle) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// ByCategory returns the records whose field value equals the wanted
// value exactly. The Wildcard value matches every record.
func ByCategory[T any](records []T, want string, field func(T) string) []T {
	out := make([]T, 0, len(records))
	if want == Wildcard {
		return append(out, records...)
	}
	for _, r := range records {
		if field(r) == want {
			out = append(out, r)
		}
	}
	return out
}
