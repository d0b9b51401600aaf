package tree

import (
	"math"
	"testing"

	"github.com/vango-dev/coat/pkg/key"
)

type disposable struct {
	Base
	name     string
	disposed *[]string
}

func (d *disposable) Dispose() {
	*d.disposed = append(*d.disposed, d.name)
}

type counterState struct {
	n        int
	disposed *int
}

func (c *counterState) Dispose() {
	*c.disposed++
}

func TestAllocatorMonotonic(t *testing.T) {
	a := NewAllocator()
	if a.Last() != 0 {
		t.Errorf("Last() = %d, want 0", a.Last())
	}
	prev := ID(0)
	for i := 0; i < 100; i++ {
		id := a.Generate()
		if id <= prev {
			t.Fatalf("Generate() = %d after %d", id, prev)
		}
		prev = id
	}
	if a.Last() != 100 {
		t.Errorf("Last() = %d, want 100", a.Last())
	}
}

func TestAllocatorsAreIndependent(t *testing.T) {
	a, b := NewAllocator(), NewAllocator()
	a.Generate()
	a.Generate()
	if got := b.Generate(); got != 1 {
		t.Errorf("second allocator Generate() = %d, want 1", got)
	}
}

func TestArenaAllocGet(t *testing.T) {
	a := NewArena()
	h := a.Alloc(RenderNode{State: NodeState{ID: 7}})
	if h.IsZero() {
		t.Fatal("Alloc returned zero handle")
	}
	n := a.Get(h)
	if n == nil || n.State.ID != 7 {
		t.Fatalf("Get() = %+v, want node 7", n)
	}
	if a.Get(Handle{}) != nil {
		t.Error("Get(zero) != nil")
	}
	if a.Len() != 1 {
		t.Errorf("Len() = %d, want 1", a.Len())
	}
}

func TestArenaStaleHandleAfterReuse(t *testing.T) {
	a := NewArena()
	old := a.Alloc(RenderNode{State: NodeState{ID: 1}})
	if freed := a.Free(old); freed != 1 {
		t.Fatalf("Free() = %d, want 1", freed)
	}
	fresh := a.Alloc(RenderNode{State: NodeState{ID: 2}})

	if a.Get(old) != nil {
		t.Error("stale handle resolved after slot reuse")
	}
	if n := a.Get(fresh); n == nil || n.State.ID != 2 {
		t.Errorf("Get(fresh) = %+v, want node 2", n)
	}
	if a.Free(old) != 0 {
		t.Error("Free(stale) freed something")
	}
}

func TestArenaFreeDisposesSubtree(t *testing.T) {
	a := NewArena()
	var order []string
	stateDisposed := 0

	leaf := a.Alloc(RenderNode{Object: &disposable{name: "leaf", disposed: &order}})
	mid := a.Alloc(RenderNode{
		Object: &disposable{name: "mid", disposed: &order},
		Children: ChildTree{
			Renders: []Handle{leaf},
			States:  []StateCell{{Value: &counterState{disposed: &stateDisposed}}},
		},
	})
	root := a.Alloc(RenderNode{
		Object:   &disposable{name: "root", disposed: &order},
		Children: ChildTree{Renders: []Handle{mid}},
	})

	if freed := a.Free(root); freed != 3 {
		t.Errorf("Free() = %d, want 3", freed)
	}
	want := []string{"leaf", "mid", "root"}
	if len(order) != len(want) {
		t.Fatalf("disposed = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("disposed[%d] = %s, want %s", i, order[i], want[i])
		}
	}
	if stateDisposed != 1 {
		t.Errorf("state disposals = %d, want 1", stateDisposed)
	}
	if a.Len() != 0 {
		t.Errorf("Len() = %d, want 0", a.Len())
	}
	for _, h := range []Handle{leaf, mid, root} {
		if a.Get(h) != nil {
			t.Errorf("handle %v still resolves", h)
		}
	}
}

func TestPurgeTruncatesAndDropsDead(t *testing.T) {
	a := NewArena()
	stateDisposed := 0
	var order []string

	h1 := a.Alloc(RenderNode{State: NodeState{ID: 1}})
	h2 := a.Alloc(RenderNode{State: NodeState{ID: 2}, Dead: true, Object: &disposable{name: "two", disposed: &order}})
	h3 := a.Alloc(RenderNode{State: NodeState{ID: 3}})
	h4 := a.Alloc(RenderNode{State: NodeState{ID: 4}, Object: &disposable{name: "four", disposed: &order}})

	c := ChildTree{
		States: []StateCell{
			{Key: key.Caller(0), Value: &counterState{disposed: &stateDisposed}},
			{Key: key.Caller(0), Value: &counterState{disposed: &stateDisposed}, Dead: true},
			{Key: key.Caller(0), Value: &counterState{disposed: &stateDisposed}},
		},
		Renders: []Handle{h1, h2, h3, h4},
	}

	stats := c.Purge(a, 2, 3)

	if stats.States != 2 {
		t.Errorf("purged states = %d, want 2", stats.States)
	}
	if stats.Nodes != 2 {
		t.Errorf("purged nodes = %d, want 2", stats.Nodes)
	}
	if len(c.States) != 1 {
		t.Errorf("len(States) = %d, want 1", len(c.States))
	}
	if stateDisposed != 2 {
		t.Errorf("state disposals = %d, want 2", stateDisposed)
	}
	if len(c.Renders) != 2 || c.Renders[0] != h1 || c.Renders[1] != h3 {
		t.Errorf("Renders = %v, want [h1 h3]", c.Renders)
	}
	if len(order) != 2 {
		t.Errorf("disposed objects = %v, want two and four", order)
	}
	if a.Len() != 2 {
		t.Errorf("arena Len() = %d, want 2", a.Len())
	}
}

func TestClear(t *testing.T) {
	a := NewArena()
	child := a.Alloc(RenderNode{})
	parent := a.Alloc(RenderNode{Children: ChildTree{Renders: []Handle{child}}})
	c := ChildTree{Renders: []Handle{parent}, States: []StateCell{{}}}

	stats := c.Clear(a)
	if stats.Nodes != 2 || stats.States != 1 {
		t.Errorf("Clear() = %+v, want 2 nodes 1 state", stats)
	}
	if a.Len() != 0 {
		t.Errorf("arena Len() = %d, want 0", a.Len())
	}
}

func buildFilteredTree(a *Arena) (ChildTree, map[ID]Handle) {
	handles := map[ID]Handle{}
	alloc := NewAllocator()

	var build func(depth int) ChildTree
	build = func(depth int) ChildTree {
		var c ChildTree
		if depth == 3 {
			return c
		}
		for i := 0; i < 3; i++ {
			id := alloc.Generate()
			children := build(depth + 1)
			h := a.Alloc(RenderNode{State: NodeState{ID: id}, Children: children})
			a.RecomputeFilter(h)
			handles[id] = h
			c.Renders = append(c.Renders, h)
		}
		return c
	}
	return build(0), handles
}

func TestFilterSoundness(t *testing.T) {
	a := NewArena()
	root, _ := buildFilteredTree(a)

	var check func(c *ChildTree) []ID
	check = func(c *ChildTree) []ID {
		var all []ID
		for _, h := range c.Renders {
			n := a.Get(h)
			below := append([]ID{n.State.ID}, check(&n.Children)...)
			for _, id := range below {
				if !n.State.Filter.MayContain(uint64(id)) {
					t.Errorf("node %d filter rejects descendant %d", n.State.ID, id)
				}
			}
			all = append(all, below...)
		}
		return all
	}
	check(&root)
}

func TestFind(t *testing.T) {
	a := NewArena()
	root, handles := buildFilteredTree(a)

	for id, want := range handles {
		got, ok := a.Find(&root, id)
		if !ok || got != want {
			t.Errorf("Find(%d) = %v, %v, want %v", id, got, ok, want)
		}
	}
	if _, ok := a.Find(&root, 10_000); ok {
		t.Error("Find(10000) found a node")
	}
}

func TestWalkSkip(t *testing.T) {
	a := NewArena()
	root, _ := buildFilteredTree(a)

	visited := 0
	a.Walk(&root, func(_ Handle, _ *RenderNode, depth int) bool {
		visited++
		return depth == 0
	})
	// 3 top-level nodes plus their 9 children.
	if visited != 12 {
		t.Errorf("visited = %d, want 12", visited)
	}
}

func TestSnapshot(t *testing.T) {
	a := NewArena()
	var order []string
	child := a.Alloc(RenderNode{State: NodeState{ID: 2}, Object: &disposable{disposed: &order}})
	parent := a.Alloc(RenderNode{
		Key:      key.Caller(0),
		State:    NodeState{ID: 1, RequestLayout: true},
		Object:   Base{},
		Children: ChildTree{Renders: []Handle{child}, States: []StateCell{{}}},
	})
	c := ChildTree{Renders: []Handle{parent}}

	snap := a.Snapshot(&c)
	if len(snap) != 1 {
		t.Fatalf("len(snapshot) = %d, want 1", len(snap))
	}
	got := snap[0]
	if got.ID != 1 || got.States != 1 || !got.RequestLayout {
		t.Errorf("snapshot = %+v", got)
	}
	if got.Type != "tree.Base" {
		t.Errorf("Type = %q, want tree.Base", got.Type)
	}
	if len(got.Children) != 1 || got.Children[0].Type != "*tree.disposable" {
		t.Errorf("Children = %+v", got.Children)
	}
}

type point struct{ X, Y int }

type approx float64

func (a approx) Equal(other any) bool {
	b, ok := other.(approx)
	return ok && math.Abs(float64(a-b)) < 0.01
}

func TestPropsEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"strings", "a", "a", true},
		{"different strings", "a", "b", false},
		{"type mismatch", 1, int64(1), false},
		{"floats", 1.5, 1.5, true},
		{"NaN", math.NaN(), math.NaN(), true},
		{"bools", true, false, false},
		{"nil", nil, nil, true},
		{"nil vs value", nil, 1, false},
		{"structs", point{1, 2}, point{1, 2}, true},
		{"different structs", point{1, 2}, point{2, 1}, false},
		{"Equal method", approx(1.0), approx(1.001), true},
		{"slices", []int{1, 2}, []int{1, 2}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PropsEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("PropsEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestUpdateCtx(t *testing.T) {
	var pass PassState
	state := NodeState{ID: 5}
	ctx := NewUpdateCtx(&pass, &state)

	if ctx.ID() != 5 {
		t.Errorf("ID() = %d, want 5", ctx.ID())
	}
	ctx.RequestUpdate()
	ctx.RequestLayout()
	if !state.RequestUpdate || !state.RequestLayout || !pass.LayoutRequested {
		t.Errorf("flags not set: state=%+v pass=%+v", state, pass)
	}
}
