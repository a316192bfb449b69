package util

import "strings"

// ToSnakeCase converts a camelCase field name to its snake_case column
// name, e.g. "videoUrl" -> "video_url".
func ToSnakeCase(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ToCamelCase converts a snake_case column name back to camelCase,
// e.g. "video_url" -> "videoUrl".
func ToCamelCase(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	upper := false
	for _, r := range name {
		if r == '_' {
			upper = true
			continue
		}
		if upper && r >= 'a' && r <= 'z' {
			b.WriteRune(r - 'a' + 'A')
			upper = false
			continue
		}
		upper = false
		b.WriteRune(r)
	}
	return b.String()
}

// RecordToSnakeCase returns a copy of rec with every top-level key
// converted to snake_case. Values pass through untouched; nested
// structures are opaque payloads here.
func RecordToSnakeCase(rec map[string]any) map[string]any {
	if rec == nil {
		return nil
	}
	out := make(map[string]any, len(rec))
	for k, v := range rec {
		out[ToSnakeCase(k)] = v
	}
	return out
}

// RecordToCamelCase returns a copy of rec with every top-level key
// converted to camelCase.
func RecordToCamelCase(rec map[string]any) map[string]any {
	if rec == nil {
		return nil
	}
	out := make(map[string]any, len(rec))
	for k, v := range rec {
		out[ToCamelCase(k)] = v
	}
	return out
}
