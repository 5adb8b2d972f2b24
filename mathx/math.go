package mathx

import (
	"math"

	"golang.org/x/exp/constraints"
)

func Even[T constraints.Integer](t T) bool {
	return t%2 == 0
}

// RoundPlaces rounds v half away from zero. Negative places leave v as is.
func RoundPlaces(v float64, places int) float64 {
	if places < 0 {
		return v
	}
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
