package util

import (
	"encoding/json"
	"math"
	"strconv"
)

// ToInt64 converts a decoded JSON value to int64.
// Handles int64, int, float64 (integral only), json.Number and numeric strings.
// The boolean is false for nil, unsupported types and non-integral numbers.
func ToInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		return i, err == nil
	default:
		return 0, false
	}
}

// ToFloat64 converts a decoded JSON value to float64.
// Handles float64, int64, int, json.Number and numeric strings.
// The boolean is false for nil and unsupported types.
func ToFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
