package tree

import "github.com/vango-dev/coat/pkg/geom"

// Event is an input event routed through the tree. Its concrete types are
// defined by the event pipeline.
type Event interface{}

// LifecycleEvent is a lifecycle notification (added, focus changed, ...).
type LifecycleEvent interface{}

// Object is the capability set every render object implements. The
// reconciler creates and updates objects; the remaining methods are called
// by traversal code walking the finished tree.
type Object interface {
	Event(ctx *EventCtx, ev Event, children Children)
	Lifecycle(ctx *LifecycleCtx, ev LifecycleEvent)
	Layout(ctx *LayoutCtx, bc geom.Constraints, children Children) geom.Size
	Paint(ctx *PaintCtx, children Children)
}

// Disposer is implemented by objects and state values that hold resources
// to release when their node or cell is purged.
type Disposer interface {
	Dispose()
}

// Base gives no-op implementations of Object for embedding.
type Base struct{}

func (Base) Event(*EventCtx, Event, Children)        {}
func (Base) Lifecycle(*LifecycleCtx, LifecycleEvent) {}
func (Base) Paint(*PaintCtx, Children)               {}

// Layout takes the smallest size the constraints allow.
func (Base) Layout(_ *LayoutCtx, bc geom.Constraints, _ Children) geom.Size {
	return bc.Min
}

// PassState is shared by every UpdateCtx of one build pass.
type PassState struct {
	// LayoutRequested is set when any update requested layout.
	LayoutRequested bool
}

// UpdateCtx is passed to an object's Update method.
type UpdateCtx struct {
	pass *PassState
	node *NodeState
}

// NewUpdateCtx binds a context to the pass and to the node being updated.
func NewUpdateCtx(pass *PassState, node *NodeState) *UpdateCtx {
	return &UpdateCtx{pass: pass, node: node}
}

// ID returns the ID of the node being updated.
func (c *UpdateCtx) ID() ID {
	return c.node.ID
}

// RequestUpdate asks for another build pass.
func (c *UpdateCtx) RequestUpdate() {
	c.node.RequestUpdate = true
}

// RequestLayout marks the node for layout.
func (c *UpdateCtx) RequestLayout() {
	c.node.RequestLayout = true
	if c.pass != nil {
		c.pass.LayoutRequested = true
	}
}

// SetPaintInsets records how far the node paints outside its bounds.
func (c *UpdateCtx) SetPaintInsets(insets geom.Insets) {
	c.node.PaintInsets = insets
}

// EventCtx is passed to Object.Event.
type EventCtx struct {
	Node    *NodeState
	Handled bool
}

// SetHandled stops further propagation of the event.
func (c *EventCtx) SetHandled() {
	c.Handled = true
}

// RequestUpdate asks for another build pass after the event.
func (c *EventCtx) RequestUpdate() {
	c.Node.RequestUpdate = true
}

// LifecycleCtx is passed to Object.Lifecycle.
type LifecycleCtx struct {
	Node *NodeState
}

// LayoutCtx is passed to Object.Layout.
type LayoutCtx struct {
	Node *NodeState
}

// SetPaintInsets records how far the node paints outside its bounds.
func (c *LayoutCtx) SetPaintInsets(insets geom.Insets) {
	c.Node.PaintInsets = insets
}

// PaintCtx is passed to Object.Paint.
type PaintCtx struct {
	Node *NodeState
	Size geom.Size
}
