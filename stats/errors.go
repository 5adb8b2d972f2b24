package stats

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput     = errors.New("empty input")
	ErrInvalidElement = errors.New("invalid element")
)

// InvalidElementError reports a non-numeric element in dynamically typed input.
type InvalidElementError struct {
	Index int
	Value any
}

func (e *InvalidElementError) Error() string {
	return fmt.Sprintf("element #%d: %v (%T) is not a number", e.Index, e.Value, e.Value)
}

func (e *InvalidElementError) Unwrap() error {
	return ErrInvalidElement
}
