package main

import (
	"fmt"

	"github.com/vango-dev/coat/pkg/geom"
	"github.com/vango-dev/coat/pkg/key"
	"github.com/vango-dev/coat/pkg/tree"
	"github.com/vango-dev/coat/pkg/ui"
)

const (
	addCaption    = "Add"
	removeCaption = "Remove first"
)

// todos is the demo app's state.
type todos struct {
	items []string
	next  int
}

// demoApp is a list whose items are added and removed by two buttons.
func demoApp(u *ui.Ui) {
	ui.State(u, key.Caller(0), func() todos { return todos{} }, func(u *ui.Ui, s *todos) {
		ui.Render(u, key.Caller(0), columnKind, geom.Insets{Top: 4, Bottom: 4}, func(u *ui.Ui) {
			ui.Render(u, key.Caller(0), labelKind, fmt.Sprintf("%d items", len(s.items)), nil)

			if ui.Render(u, key.Caller(0), buttonKind, addCaption, nil) {
				s.next++
				s.items = append(s.items, fmt.Sprintf("item %d", s.next))
			}
			if ui.Render(u, key.Caller(0), buttonKind, removeCaption, nil) && len(s.items) > 0 {
				s.items = s.items[1:]
			}

			row := key.Caller(0)
			for i, item := range s.items {
				ui.Render(u, row.WithIndex(i), labelKind, item, nil)
			}
		})
	})
}

// findButton returns the ID of the button with caption.
func findButton(r *ui.Root, caption string) (tree.ID, bool) {
	var id tree.ID
	r.Walk(func(n *tree.RenderNode, _ int) bool {
		if b, ok := n.Object.(*button); ok && b.caption == caption {
			id = n.State.ID
		}
		return id == 0
	})
	return id, id != 0
}

// scriptStep clicks the buttons the way a user would between passes: add on
// every pass, remove on every third.
func scriptStep(r *ui.Root, pass int) error {
	captions := []string{addCaption}
	if pass%3 == 0 {
		captions = append(captions, removeCaption)
	}
	for _, caption := range captions {
		id, ok := findButton(r, caption)
		if !ok {
			return fmt.Errorf("button %q not found", caption)
		}
		if err := press(r, id); err != nil {
			return fmt.Errorf("button %q: %w", caption, err)
		}
	}
	return nil
}

// press delivers a click to the node with id.
func press(r *ui.Root, id tree.ID) error {
	handled, found := r.Dispatch(id, click{})
	switch {
	case !found:
		return fmt.Errorf("node %d is not in the tree", id)
	case !handled:
		return fmt.Errorf("node %d ignored the click", id)
	}
	return nil
}
