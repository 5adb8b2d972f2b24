package slicesx

import (
	"slices"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

// Sum accumulates in float64, so integer inputs don't overflow T and the
// result can be divided without truncation.
func Sum[T Number](ts []T) float64 {
	var sum float64
	for _, t := range ts {
		sum += float64(t)
	}
	return sum
}

// SortedCopy returns an ascending sorted copy of ts. ts itself is not touched.
func SortedCopy[S ~[]E, E constraints.Ordered](ts S) []E {
	cts := make([]E, len(ts))
	copy(cts, ts)
	slices.Sort(cts)
	return cts
}
