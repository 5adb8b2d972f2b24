package stats

import (
	"fmt"
	"math"

	"github.com/mazzegi/statx/convert"
	"github.com/mazzegi/statx/errorx"
)

// Numbers converts vs into floats, accepting integer and float kinds only.
// Every offending element is reported as *InvalidElementError.
func Numbers(vs []any) ([]float64, error) {
	return floats(vs, convert.ToNumber)
}

// Coerce is like Numbers, but additionally accepts numeric strings and json.Number.
func Coerce(vs []any) ([]float64, error) {
	return floats(vs, convert.ToFloat)
}

func floats(vs []any, conv func(any) (float64, bool)) ([]float64, error) {
	fs := make([]float64, len(vs))
	g := errorx.NewGroup()
	for i, v := range vs {
		f, ok := conv(v)
		if !ok {
			g.Append(&InvalidElementError{Index: i, Value: v})
			continue
		}
		fs[i] = f
	}
	if err := g.Error(); err != nil {
		return nil, err
	}
	return fs, nil
}

// MeanAny is Mean for dynamically typed input. Non-numeric elements are rejected.
func MeanAny(vs []any) (float64, error) {
	fs, err := Numbers(vs)
	if err != nil {
		return math.NaN(), fmt.Errorf("mean: %w", err)
	}
	return Mean(fs)
}

// MedianAny is Median for dynamically typed input. Non-numeric elements are rejected.
func MedianAny(vs []any) (float64, error) {
	fs, err := Numbers(vs)
	if err != nil {
		return math.NaN(), fmt.Errorf("median: %w", err)
	}
	return Median(fs)
}
