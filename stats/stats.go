package stats

import (
	"math"

	"github.com/mazzegi/statx/mathx"
	"github.com/mazzegi/statx/slicesx"
)

// Mean returns the arithmetic mean of ts.
func Mean[T slicesx.Number](ts []T) (float64, error) {
	if len(ts) == 0 {
		return math.NaN(), ErrEmptyInput
	}
	return slicesx.Sum(ts) / float64(len(ts)), nil
}

// Median returns the middle value of the sorted ts, or the mean of the two
// middle values if len(ts) is even.
func Median[T slicesx.Number](ts []T) (float64, error) {
	if len(ts) == 0 {
		return math.NaN(), ErrEmptyInput
	}
	sts := slicesx.SortedCopy(ts)
	n := len(sts)
	mid := n / 2
	if mathx.Even(n) {
		return (float64(sts[mid-1]) + float64(sts[mid])) / 2, nil
	}
	return float64(sts[mid]), nil
}

// Summary bundles the figures computed by Describe.
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
}

// Describe computes count, mean and median of ts in one go.
func Describe[T slicesx.Number](ts []T) (Summary, error) {
	mean, err := Mean(ts)
	if err != nil {
		return Summary{}, err
	}
	median, err := Median(ts)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Count:  len(ts),
		Mean:   mean,
		Median: median,
	}, nil
}

// SampleInput returns the sequence 0, 1, ..., 9.
func SampleInput() []int {
	r, _ := mathx.NewRange(0, 10, 1)
	return r.Values()
}
