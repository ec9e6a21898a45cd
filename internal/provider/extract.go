package provider

import (
	"strconv"
	"strings"
)

// ExtractValue normalizes a stat value from a decoded JSON row.
//
// The stats REST API returns most counters as numbers but nulls for stats a
// player never recorded, and a few fields arrive as strings. This handles
// all of them.
//
// Returns the scalar float64 value, and ok=false if not extractable.
func ExtractValue(val interface{}) (float64, bool) {
	if val == nil {
		return 0, false
	}

	switch v := val.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f, true
		}
		return 0, false
	case map[string]interface{}:
		// Localized objects, e.g. {"default": 3}
		if inner, exists := v["default"]; exists && inner != nil {
			return ExtractValue(inner)
		}
		return 0, false
	default:
		return 0, false
	}
}

// ExtractString returns a display string from a decoded JSON value. The web
// API wraps names in localized objects like {"default": "Toronto"}.
func ExtractString(val interface{}) string {
	switch v := val.(type) {
	case string:
		return v
	case map[string]interface{}:
		if inner, ok := v["default"].(string); ok {
			return inner
		}
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

// StatMap keeps the numeric fields of a decoded row.
func StatMap(row map[string]interface{}) map[string]float64 {
	out := make(map[string]float64, len(row))
	for k, v := range row {
		if f, ok := ExtractValue(v); ok {
			out[k] = f
		}
	}
	return out
}
