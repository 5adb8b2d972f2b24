package errorx

import (
	"strings"
)

// Group collects errors. Nil errors are dropped on Append.
type Group struct {
	errs []error
}

func NewGroup(errs ...error) *Group {
	g := &Group{}
	g.Append(errs...)
	return g
}

func (g *Group) Append(errs ...error) {
	for _, err := range errs {
		if err == nil {
			continue
		}
		g.errs = append(g.errs, err)
	}
}

// Error returns nil for an empty group. Otherwise the returned error lists all
// collected errors and unwraps to them, so errors.Is and errors.As see every member.
func (g *Group) Error() error {
	if len(g.errs) == 0 {
		return nil
	}
	return groupError(append([]error{}, g.errs...))
}

type groupError []error

func (ge groupError) Error() string {
	sl := make([]string, len(ge))
	for i, err := range ge {
		sl[i] = err.Error()
	}
	return strings.Join(sl, " | ")
}

func (ge groupError) Unwrap() []error {
	return ge
}
