package testx

import (
	"testing"

	"github.com/r3labs/diff/v3"
)

// AssertUnchanged fails if after differs from before. Slices are compared
// position by position, so a reordering counts as a change.
func AssertUnchanged(t *testing.T, before, after any) {
	t.Helper()
	cl, err := diff.Diff(before, after, diff.SliceOrdering(true))
	if err != nil {
		t.Fatalf("diff: %v", err)
	}
	if len(cl) == 0 {
		return
	}
	for _, c := range cl {
		t.Errorf("%s %v: %v -> %v", c.Type, c.Path, c.From, c.To)
	}
	t.FailNow()
}
