package ui

import (
	"slices"

	"github.com/vango-dev/coat/pkg/key"
	"github.com/vango-dev/coat/pkg/tree"
)

// State declares a persistent state cell of type T under k.
//
// The first declaration stores init(); later passes that declare k again get
// the same value back. body runs with a pointer to the value and may declare
// further state and render objects as siblings. A nil body is allowed.
//
// If the cell stored under k holds a different type the pass aborts with an
// error matching ErrTypeMismatch.
func State[T any](u *Ui, k key.Key, init func() T, body func(u *Ui, value *T)) {
	c := u.children()
	index, found := u.findState(c, k)
	if !found {
		v := init()
		index = u.stateIndex
		c.States = slices.Insert(c.States, index, tree.StateCell{Key: k, Value: &v})
		u.p.stats.statesCreated++
	}

	for i := u.stateIndex; i < index; i++ {
		c.States[i].Dead = true
	}
	u.stateIndex = index + 1

	stored := c.States[index].Value
	value, ok := stored.(*T)
	if !ok {
		panic(mismatchError("E001", k, typeName[*T](), stored))
	}
	if body != nil {
		body(u, value)
	}
}

// Use is State without a body: it returns the pointer to the cell's value.
// The pointer stays valid for as long as the cell is declared every pass.
func Use[T any](u *Ui, k key.Key, init func() T) *T {
	var out *T
	State(u, k, init, func(_ *Ui, v *T) { out = v })
	return out
}
