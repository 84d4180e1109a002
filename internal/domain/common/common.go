// Package common holds the field-shaping rules applied when raw store
// documents cross into view models.
package common

import "time"

// LastUpdatedLayout is the human-readable form of the server write timestamp.
const LastUpdatedLayout = "2006-01-02 15:04"

// StringField reads a string field, falling back when absent or mistyped.
func StringField(fields map[string]any, key, fallback string) string {
	if v, ok := fields[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

// IntField reads a numeric field, tolerating the integer widths the store
// client may hand back.
func IntField(fields map[string]any, key string, fallback int) int {
	switch v := fields[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return fallback
	}
}

// LastUpdated formats the server timestamp field, or "N/A" when it is absent.
func LastUpdated(fields map[string]any, key string) string {
	if ts, ok := fields[key].(time.Time); ok && !ts.IsZero() {
		return ts.Format(LastUpdatedLayout)
	}
	return "N/A"
}
