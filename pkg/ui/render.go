package ui

import (
	"slices"

	"github.com/vango-dev/coat/pkg/key"
	"github.com/vango-dev/coat/pkg/tree"
)

// RenderObject is a render object updated from props of type P. Update
// returns an action of type A to the code that declared the object, such as
// whether a button was clicked since the last pass.
type RenderObject[P, A any] interface {
	tree.Object
	Update(ctx *tree.UpdateCtx, props P) A
}

// Kind describes how to create a render object of type R from props P.
// Widget packages declare one Kind per widget and pass it to Render.
type Kind[P, A any, R RenderObject[P, A]] struct {
	Create func(props P) R
}

// Render declares a render object under k and returns its action.
//
// When no node with k is found ahead of the cursor, kind.Create(props)
// builds a new object, the node gets a fresh ID, and the zero A is returned.
// Otherwise the existing object is updated with props and its action is
// returned. body then declares the node's children; children not declared
// are purged when body returns. A nil body declares no children.
//
// If the node stored under k holds a different object type the pass aborts
// with an error matching ErrTypeMismatch.
func Render[P, A any, R RenderObject[P, A]](u *Ui, k key.Key, kind Kind[P, A, R], props P, body func(u *Ui)) A {
	c := u.children()
	index, found := u.findRender(c, k)
	if !found {
		obj := kind.Create(props)
		h := u.p.arena.Alloc(tree.RenderNode{
			Key:    k,
			Object: obj,
			State:  tree.NodeState{ID: u.p.alloc.Generate()},
		})
		c = u.children()
		index = u.renderIndex
		c.Renders = slices.Insert(c.Renders, index, h)
		u.p.stats.nodesCreated++
	}

	for i := u.renderIndex; i < index; i++ {
		u.p.arena.Get(c.Renders[i]).Dead = true
	}
	h := c.Renders[index]
	u.renderIndex = index + 1

	var action A
	if found {
		node := u.p.arena.Get(h)
		obj, ok := node.Object.(R)
		if !ok {
			panic(mismatchError("E002", k, typeName[R](), node.Object))
		}
		action = obj.Update(tree.NewUpdateCtx(&u.p.state, &node.State), props)
		node.State.RequestUpdate = false
		u.p.stats.nodesUpdated++
	}

	child := &Ui{p: u.p, owner: h}
	if body != nil {
		body(child)
	}

	node := u.p.arena.Get(h)
	u.p.stats.purged.Add(node.Children.Purge(u.p.arena, child.stateIndex, child.renderIndex))
	u.p.arena.RecomputeFilter(h)

	return action
}
