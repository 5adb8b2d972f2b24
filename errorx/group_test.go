package errorx

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mazzegi/statx/testx"
)

var errFoo = errors.New("foo")

type codeError struct {
	code int
}

func (e *codeError) Error() string {
	return fmt.Sprintf("code %d", e.code)
}

func TestGroupEmpty(t *testing.T) {
	tx := testx.NewTx(t)
	g := NewGroup(nil, nil)
	tx.AssertNoErr(g.Error())
}

func TestGroupUnwrap(t *testing.T) {
	tx := testx.NewTx(t)
	g := NewGroup()
	g.Append(fmt.Errorf("first: %w", errFoo), nil, &codeError{code: 7})

	err := g.Error()
	tx.AssertEqual("first: foo | code 7", err.Error())
	tx.AssertErrIs(err, errFoo)

	var cerr *codeError
	tx.AssertEqual(true, errors.As(err, &cerr))
	tx.AssertEqual(7, cerr.code)
}
