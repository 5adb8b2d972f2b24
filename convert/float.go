package convert

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// ToNumber converts v into a float64 if v is of an integer or float kind.
// Named types like "type Celsius float64" are accepted as well.
// Everything else, including bools and numeric strings, is rejected.
func ToNumber(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// ToFloat is the lenient sibling of ToNumber. On top of numbers it accepts
// json.Number and numeric strings, where a comma may serve as decimal separator.
// Bools and strings spelling NaN or infinity are rejected.
func ToFloat(v any) (float64, bool) {
	if f, ok := ToNumber(v); ok {
		return f, true
	}
	var s string
	switch v := v.(type) {
	case json.Number:
		s = v.String()
	case string:
		// in case it comes with german float notation
		s = strings.ReplaceAll(strings.TrimSpace(v), ",", ".")
	case []byte:
		s = strings.ReplaceAll(strings.TrimSpace(string(v)), ",", ".")
	default:
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
