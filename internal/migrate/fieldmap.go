// Package migrate moves household data out of the legacy Firestore project
// into PostgreSQL, and seeds or clears sample data for development.
package migrate

import (
	"strings"
	"time"
	"unicode"
)

// MapKeys converts every key of a Firestore-shaped document from camelCase to
// the snake_case column convention, recursively through nested maps and
// arrays. Timestamp values become RFC 3339 strings so they survive the trip
// through a generic row map.
func MapKeys(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}

	out := make(map[string]any, len(in))
	for key, value := range in {
		out[ToSnakeCase(key)] = mapValue(value)
	}

	return out
}

func mapValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return MapKeys(v)
	case []any:
		mapped := make([]any, len(v))
		for i, item := range v {
			mapped[i] = mapValue(item)
		}

		return mapped
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	default:
		return value
	}
}

// ToSnakeCase converts a camelCase identifier to snake_case. Runs of capitals
// are treated as one word, so "actionURL" becomes "action_url".
func ToSnakeCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)

	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && !unicode.IsUpper(runes[i-1]) && runes[i-1] != '_'
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if i > 0 && (prevLower || nextLower) && runes[i-1] != '_' {
				b.WriteRune('_')
			}
			b.WriteRune(unicode.ToLower(r))

			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}
