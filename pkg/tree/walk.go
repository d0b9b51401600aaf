package tree

import (
	"fmt"
)

// Walk visits every node under c depth-first, parents before children.
// Returning false from fn skips the node's children.
func (a *Arena) Walk(c *ChildTree, fn func(h Handle, n *RenderNode, depth int) bool) {
	a.walk(c, 0, fn)
}

func (a *Arena) walk(c *ChildTree, depth int, fn func(Handle, *RenderNode, int) bool) {
	for _, h := range c.Renders {
		n := a.Get(h)
		if n == nil {
			continue
		}
		if fn(h, n, depth) {
			a.walk(&n.Children, depth+1, fn)
		}
	}
}

// Find locates the node with the given ID under c. Subtrees whose filter
// rules the ID out are skipped without being visited.
func (a *Arena) Find(c *ChildTree, id ID) (Handle, bool) {
	for _, h := range c.Renders {
		n := a.Get(h)
		if n == nil || !n.State.Filter.MayContain(uint64(id)) {
			continue
		}
		if n.State.ID == id {
			return h, true
		}
		if found, ok := a.Find(&n.Children, id); ok {
			return found, true
		}
	}
	return Handle{}, false
}

// NodeSnapshot is a serializable copy of one render node.
type NodeSnapshot struct {
	ID            ID             `json:"id"`
	Key           string         `json:"key"`
	Type          string         `json:"type"`
	States        int            `json:"states"`
	RequestUpdate bool           `json:"requestUpdate,omitempty"`
	RequestLayout bool           `json:"requestLayout,omitempty"`
	Children      []NodeSnapshot `json:"children,omitempty"`
}

// Snapshot copies the tree under c.
func (a *Arena) Snapshot(c *ChildTree) []NodeSnapshot {
	var out []NodeSnapshot
	for _, h := range c.Renders {
		if n := a.Get(h); n != nil {
			out = append(out, a.SnapshotNode(n))
		}
	}
	return out
}

// SnapshotNode copies n and its subtree.
func (a *Arena) SnapshotNode(n *RenderNode) NodeSnapshot {
	return NodeSnapshot{
		ID:            n.State.ID,
		Key:           n.Key.String(),
		Type:          fmt.Sprintf("%T", n.Object),
		States:        len(n.Children.States),
		RequestUpdate: n.State.RequestUpdate,
		RequestLayout: n.State.RequestLayout,
		Children:      a.Snapshot(&n.Children),
	}
}
