// Package stats computes the arithmetic mean and the median of numeric sequences.
//
// All functions are pure: they never modify the passed slice and may be called
// concurrently on the same input. On empty input they return NaN together
// with ErrEmptyInput.
//
//	data := stats.SampleInput() // 0, 1, ..., 9
//	mean, _ := stats.Mean(data)     // 4.5
//	median, _ := stats.Median(data) // 4.5
package stats
