package omni

import (
	"github.com/dozm/omni/errorx"
)

// recursionGuard tracks the identifiers being resolved on one container.
// It is not safe for concurrent use.
type recursionGuard struct {
	resolving map[string]struct{}
}

func newRecursionGuard() *recursionGuard {
	return &recursionGuard{
		resolving: make(map[string]struct{}),
	}
}

// enter marks id as resolving. Every successful enter must be paired with a
// deferred leave.
func (g *recursionGuard) enter(id string) error {
	if _, ok := g.resolving[id]; ok {
		return &errorx.CircularDependencyError{ID: id}
	}
	g.resolving[id] = struct{}{}
	return nil
}

func (g *recursionGuard) leave(id string) {
	delete(g.resolving, id)
}

func (g *recursionGuard) len() int {
	return len(g.resolving)
}
