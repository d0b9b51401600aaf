// Package tree holds the persistent render tree that the reconciler in
// package ui builds and updates.
//
// # Ownership
//
// Render nodes live in an Arena and are addressed by Handle. A ChildTree
// stores the handles of a node's children next to its state cells, so the
// tree is a forest of arena slots rather than a web of pointers. A
// *RenderNode returned by Arena.Get is only valid until the next Alloc;
// callers that may allocate in between keep the Handle and resolve it again.
//
// # Identity
//
// Every render node gets an ID from an Allocator when it is created. IDs are
// never reused, and each node's NodeState.Filter summarizes its own ID and
// those of all of its descendants (see package bloom).
//
// # Render objects
//
// Object is the capability set implemented by concrete widgets. The
// reconciler only creates and updates objects; event dispatch, lifecycle,
// layout and painting are driven by traversal code outside this package.
package tree
