package ui

import (
	"github.com/vango-dev/coat/pkg/key"
	"github.com/vango-dev/coat/pkg/tree"
)

// pass carries what every Ui of one build pass shares.
type pass struct {
	arena *tree.Arena
	alloc *tree.Allocator
	top   *tree.ChildTree
	state tree.PassState
	stats passStats
}

type passStats struct {
	nodesCreated  int
	nodesUpdated  int
	statesCreated int
	purged        tree.PurgeStats
}

// Ui is the declaration cursor over one node's children. A Ui is only valid
// inside the build function or body it was passed to.
type Ui struct {
	p *pass

	// owner is the node whose children are declared; zero for the top level.
	owner tree.Handle

	stateIndex  int
	renderIndex int
}

// children resolves the child tree being declared into. The pointer must be
// re-resolved after anything that may allocate arena nodes.
func (u *Ui) children() *tree.ChildTree {
	if u.owner.IsZero() {
		return u.p.top
	}
	return &u.p.arena.Get(u.owner).Children
}

// NodeID returns the ID of the node whose children u declares, or 0 at the
// top level.
func (u *Ui) NodeID() tree.ID {
	if u.owner.IsZero() {
		return 0
	}
	return u.p.arena.Get(u.owner).State.ID
}

func (u *Ui) findState(c *tree.ChildTree, k key.Key) (int, bool) {
	for i := u.stateIndex; i < len(c.States); i++ {
		if c.States[i].Key == k {
			return i, true
		}
	}
	return -1, false
}

func (u *Ui) findRender(c *tree.ChildTree, k key.Key) (int, bool) {
	for i := u.renderIndex; i < len(c.Renders); i++ {
		if n := u.p.arena.Get(c.Renders[i]); n != nil && n.Key == k {
			return i, true
		}
	}
	return -1, false
}
