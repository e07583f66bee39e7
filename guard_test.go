package omni

import (
	"testing"

	"github.com/dozm/omni/errorx"
)

func TestRecursionGuard(t *testing.T) {
	g := newRecursionGuard()

	if err := g.enter("a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := g.enter("b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := g.enter("a")
	if !errorx.IsCircularDependency(err) {
		t.Errorf("expected CircularDependencyError, got %v", err)
	}

	g.leave("a")
	g.leave("b")
	if g.len() != 0 {
		t.Error("the guard is not empty")
	}

	if err := g.enter("a"); err != nil {
		t.Errorf("re-entering after leave failed: %v", err)
	}
}
