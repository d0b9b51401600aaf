package tree

import (
	"github.com/vango-dev/coat/pkg/bloom"
	"github.com/vango-dev/coat/pkg/geom"
	"github.com/vango-dev/coat/pkg/key"
)

// NodeState is the bookkeeping the core keeps for every render node.
type NodeState struct {
	// ID is assigned at creation and never changes.
	ID ID

	// Filter covers ID and the IDs of every descendant.
	Filter bloom.Filter

	// RequestUpdate asks the host to run another build pass.
	RequestUpdate bool

	// RequestLayout asks the layout pipeline to lay this node out again.
	RequestLayout bool

	// PaintInsets is set by the object during update or layout.
	PaintInsets geom.Insets
}

// StateCell is one piece of persistent local state declared by a build
// function. Value holds a pointer to the declared type.
type StateCell struct {
	Key   key.Key
	Value any
	Dead  bool
}

// RenderNode wraps one render object and owns its children.
type RenderNode struct {
	Key      key.Key
	Object   Object
	State    NodeState
	Children ChildTree
	Dead     bool
}

// Handle addresses a RenderNode in an Arena.
// The zero Handle never refers to a node.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h is the zero handle.
func (h Handle) IsZero() bool {
	return h.gen == 0
}
