package testx

import (
	"errors"
	"testing"
)

func NewTx(t *testing.T) *Tx {
	return &Tx{t: t}
}

type Tx struct {
	t *testing.T
}

func (tx *Tx) T() *testing.T {
	return tx.t
}

func (tx *Tx) AssertEqual(want, have any) {
	tx.t.Helper()
	AssertEqual(tx.t, want, have)
}

func (tx *Tx) AssertInDelta(want, have, delta float64) {
	tx.t.Helper()
	AssertInDelta(tx.t, want, have, delta)
}

func (tx *Tx) AssertNoErr(err error) {
	tx.t.Helper()
	AssertNoErr(tx.t, err)
}

func (tx *Tx) AssertErr(err error) {
	tx.t.Helper()
	AssertErr(tx.t, err)
}

// AssertErrIs fails unless errors.Is(err, target)
func (tx *Tx) AssertErrIs(err error, target error) {
	tx.t.Helper()
	if errors.Is(err, target) {
		return
	}
	tx.t.Fatalf("want error %q, have %v", target, err)
}

func (tx *Tx) AssertUnchanged(before, after any) {
	tx.t.Helper()
	AssertUnchanged(tx.t, before, after)
}
