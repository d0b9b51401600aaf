package tree

import "github.com/vango-dev/coat/pkg/bloom"

type slot struct {
	node RenderNode
	gen  uint32
	live bool
}

// Arena stores render nodes. Freed slots are recycled; their generation is
// bumped so stale handles resolve to nil instead of to the new occupant.
type Arena struct {
	slots []slot
	free  []uint32
	live  int
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Alloc stores n and returns its handle. Alloc may move existing nodes, so
// pointers obtained from Get before the call must not be used after it.
func (a *Arena) Alloc(n RenderNode) Handle {
	a.live++
	if len(a.free) > 0 {
		idx := a.free[len(a.free)-1]
		a.free = a.free[:len(a.free)-1]
		s := &a.slots[idx]
		s.node = n
		s.live = true
		return Handle{index: idx, gen: s.gen}
	}
	a.slots = append(a.slots, slot{node: n, gen: 1, live: true})
	return Handle{index: uint32(len(a.slots) - 1), gen: 1}
}

// Get resolves h. It returns nil for the zero handle and for handles whose
// node has been freed.
func (a *Arena) Get(h Handle) *RenderNode {
	if h.IsZero() || int(h.index) >= len(a.slots) {
		return nil
	}
	s := &a.slots[h.index]
	if !s.live || s.gen != h.gen {
		return nil
	}
	return &s.node
}

// Len returns the number of live nodes.
func (a *Arena) Len() int {
	return a.live
}

// Free releases h and its whole subtree, children before parents. Objects
// and state values implementing Disposer are disposed. It returns the number
// of nodes released.
func (a *Arena) Free(h Handle) int {
	n := a.Get(h)
	if n == nil {
		return 0
	}
	states := n.Children.States
	renders := n.Children.Renders
	object := n.Object

	freed := 0
	for i := len(renders) - 1; i >= 0; i-- {
		freed += a.Free(renders[i])
	}
	disposeStates(states)
	if d, ok := object.(Disposer); ok {
		d.Dispose()
	}

	s := &a.slots[h.index]
	s.node = RenderNode{}
	s.live = false
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	a.free = append(a.free, h.index)
	a.live--
	return freed + 1
}

// RecomputeFilter rebuilds the descendant filter of h from its own ID and
// the filters of its live children.
func (a *Arena) RecomputeFilter(h Handle) {
	n := a.Get(h)
	if n == nil {
		return
	}
	n.State.Filter = a.FilterOf(&n.Children, n.State.ID)
}

// FilterOf returns a filter covering self (when non-zero) and every node in c.
func (a *Arena) FilterOf(c *ChildTree, self ID) bloom.Filter {
	f := bloom.New()
	if self != 0 {
		f.Add(uint64(self))
	}
	for _, ch := range c.Renders {
		if child := a.Get(ch); child != nil {
			f = f.Union(child.State.Filter)
		}
	}
	return f
}

func disposeStates(states []StateCell) {
	for i := len(states) - 1; i >= 0; i-- {
		if d, ok := states[i].Value.(Disposer); ok {
			d.Dispose()
		}
	}
}
