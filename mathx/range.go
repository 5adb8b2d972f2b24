package mathx

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// MaxRangeLen caps the number of values a Range may produce.
const MaxRangeLen = 1 << 24

// NewRange returns the half-open range [start, stop) walked in steps of step.
// A negative step walks downwards. A zero step or more than MaxRangeLen values is an error.
func NewRange[T constraints.Integer](start, stop, step T) (Range[T], error) {
	if step == 0 {
		return Range[T]{}, fmt.Errorf("range step must not be zero")
	}
	r := Range[T]{
		Start: start,
		Stop:  stop,
		Step:  step,
	}
	if n := r.count(); n > MaxRangeLen {
		return Range[T]{}, fmt.Errorf("range [%v, %v) step %v has %d values, max is %d", start, stop, step, n, MaxRangeLen)
	}
	return r, nil
}

// Range is meant to be created with NewRange, which checks the length.
type Range[T constraints.Integer] struct {
	Start T
	Stop  T
	Step  T
}

// count works in uint64, so spans wider than T itself don't overflow.
// Converting to uint64 and subtracting gives the exact distance for every
// integer type of at most 64 bits, as long as the minuend is the larger value.
func (r Range[T]) count() uint64 {
	var span, step uint64
	switch {
	case r.Step > 0 && r.Start < r.Stop:
		span = uint64(r.Stop) - uint64(r.Start)
		step = uint64(r.Step)
	case r.Step < 0 && r.Start > r.Stop:
		span = uint64(r.Start) - uint64(r.Stop)
		step = -uint64(r.Step)
	default:
		return 0
	}
	return (span-1)/step + 1
}

func (r Range[T]) Len() int {
	return int(min(r.count(), MaxRangeLen))
}

func (r Range[T]) Values() []T {
	n := r.Len()
	ts := make([]T, n)
	v := r.Start
	for i := 0; i < n; i++ {
		ts[i] = v
		v += r.Step
	}
	return ts
}
