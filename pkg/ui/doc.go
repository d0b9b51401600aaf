// Package ui reconciles declarative build functions against the persistent
// render tree.
//
// A build function declares state cells and render objects through a *Ui.
// Each declaration carries a key (normally the call site, see package key).
// The reconciler walks the existing children of the current node with a
// cursor that only moves forward, matching declarations by key:
//
//	root := ui.NewRoot(ui.WithLogger(logger))
//	report, err := root.Build(ctx, func(u *ui.Ui) {
//	    ui.State(u, key.Caller(0), func() int { return 0 }, func(u *ui.Ui, clicks *int) {
//	        if ui.Render(u, key.Caller(0), buttonKind, "Click", nil) {
//	            *clicks++
//	        }
//	    })
//	})
//
// # Matching
//
// A declaration scans forward from the cursor for an entry with its key.
// Entries skipped on the way are marked dead, and entries that are dead or
// beyond the final cursor are purged when the enclosing body returns. The
// scan is not a general list diff: moving an item ahead of its siblings
// destroys the siblings it jumps over, and they are created again on their
// next declaration. Lists that reorder should derive keys with
// key.Key.WithIndex from a stable item index.
//
// # Errors
//
// Declaring a different state type or render object type under a key that
// already holds another type is a programming error. The pass aborts, Build
// returns the error, and the root refuses further passes.
package ui
