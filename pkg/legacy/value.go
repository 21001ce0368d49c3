package legacy

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Object narrows a decoded JSON value to an object.
func Object(v any) (map[string]any, bool) {
	obj, ok := v.(map[string]any)
	return obj, ok && obj != nil
}

// Array narrows a decoded JSON value to an array.
func Array(v any) ([]any, bool) {
	arr, ok := v.([]any)
	return arr, ok
}

// NonEmptyArray narrows v to an array holding at least one element.
func NonEmptyArray(v any) ([]any, bool) {
	arr, ok := Array(v)
	return arr, ok && len(arr) > 0
}

// Text coerces a decoded value to a string. Missing values, objects and
// arrays become the empty string, as does the literal "undefined" that older
// builds wrote for missing text.
func Text(v any) string {
	switch x := v.(type) {
	case string:
		if x == "undefined" {
			return ""
		}
		return x
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return ""
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	default:
		return ""
	}
}

// Truthy coerces a decoded value to a boolean using loose truthiness: zero,
// NaN, the empty string and null are false, everything else is true.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0 && !math.IsNaN(x)
	case json.Number:
		f, err := x.Float64()
		return err == nil && f != 0
	case string:
		return x != ""
	default:
		return true
	}
}

// maxExact is the largest magnitude at which every integer is exactly
// representable in a float64.
const maxExact = 1 << 53

// Number narrows v to a finite number within ±2^53. Larger values cannot be
// converted to an integer timestamp and are rejected.
func Number(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case json.Number:
		var err error
		if f, err = x.Float64(); err != nil {
			return 0, false
		}
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > maxExact {
		return 0, false
	}
	return f, true
}

// ID reads an identifier field. Hand-edited files sometimes carry numeric
// ids, which are kept in their decimal form.
func ID(v any) string {
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x)
	case float64, json.Number:
		return Text(x)
	default:
		return ""
	}
}

// firstID returns the first field of obj that holds a non-blank id.
func firstID(obj map[string]any, fields ...string) string {
	for _, f := range fields {
		if id := ID(obj[f]); id != "" {
			return id
		}
	}
	return ""
}
