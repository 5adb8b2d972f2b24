// Package convert contains functions to convert dynamically typed values into numbers and bools
package convert

import "strings"

// ParseBool converts bools, numbers (true when non-zero) and the usual words
// like "true"/"false", "yes"/"no", "on"/"off". Anything else is not a bool.
func ParseBool(v any) (bool, bool) {
	switch v := v.(type) {
	case bool:
		return v, true
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "t", "on", "yes":
			return true, true
		case "false", "0", "f", "off", "no":
			return false, true
		default:
			return false, false
		}
	default:
		f, ok := ToNumber(v)
		return ok && f != 0, ok
	}
}
