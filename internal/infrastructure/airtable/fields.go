package airtable

// Typed accessors over the raw field map. Airtable returns JSON, so
// numbers arrive as float64 and absent fields as missing keys; these
// helpers fold both into zero values.

// String returns a string field or "".
func String(fields map[string]any, key string) string {
	if v, ok := fields[key].(string); ok {
		return v
	}
	return ""
}

// Bool returns a checkbox field or false.
func Bool(fields map[string]any, key string) bool {
	if v, ok := fields[key].(bool); ok {
		return v
	}
	return false
}

// Int returns a number field truncated to int, or 0.
func Int(fields map[string]any, key string) int {
	switch v := fields[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}
