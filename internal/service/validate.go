package service

import "strconv"

// truthy reports whether a decoded JSON value counts as present.
// Missing, null, "", false and numeric 0 are all treated as absent;
// everything else, including "0" and negative numbers, passes.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case float64:
		return x != 0
	default:
		return true
	}
}

// coerceNumber converts a JSON number or numeric string to float64.
func coerceNumber(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case string:
		n, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
