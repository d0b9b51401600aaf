package tree

// ChildTree holds the state cells and render-node handles declared under one
// parent. The two sequences are reconciled with independent cursors.
type ChildTree struct {
	States  []StateCell
	Renders []Handle
}

// PurgeStats counts what a purge removed.
type PurgeStats struct {
	States int
	Nodes  int
}

// Add accumulates other into s.
func (s *PurgeStats) Add(other PurgeStats) {
	s.States += other.States
	s.Nodes += other.Nodes
}

// Purge ends a pass over c: entries at or beyond each cursor were not
// visited and are dropped, then every remaining dead entry is dropped.
// Removed render nodes are freed from a together with their subtrees; the
// Nodes count includes those descendants.
func (c *ChildTree) Purge(a *Arena, stateCursor, renderCursor int) PurgeStats {
	var stats PurgeStats

	if stateCursor < len(c.States) {
		disposeStates(c.States[stateCursor:])
		stats.States += len(c.States) - stateCursor
		clear(c.States[stateCursor:])
		c.States = c.States[:stateCursor]
	}
	kept := c.States[:0]
	for _, s := range c.States {
		if s.Dead {
			disposeStates([]StateCell{s})
			stats.States++
			continue
		}
		kept = append(kept, s)
	}
	clear(c.States[len(kept):])
	c.States = kept

	if renderCursor < len(c.Renders) {
		for i := len(c.Renders) - 1; i >= renderCursor; i-- {
			stats.Nodes += a.Free(c.Renders[i])
		}
		c.Renders = c.Renders[:renderCursor]
	}
	live := c.Renders[:0]
	for _, h := range c.Renders {
		if n := a.Get(h); n == nil || n.Dead {
			stats.Nodes += a.Free(h)
			continue
		}
		live = append(live, h)
	}
	c.Renders = live

	return stats
}

// Clear frees everything in c.
func (c *ChildTree) Clear(a *Arena) PurgeStats {
	return c.Purge(a, 0, 0)
}

// Children is a read view over a node's child render nodes, handed to
// render objects by the traversal pipeline.
type Children struct {
	arena   *Arena
	handles []Handle
}

// ChildrenOf returns the view of c's render nodes.
func (a *Arena) ChildrenOf(c *ChildTree) Children {
	return Children{arena: a, handles: c.Renders}
}

// Len returns the number of child nodes.
func (c Children) Len() int {
	return len(c.handles)
}

// At returns the i-th child node.
func (c Children) At(i int) *RenderNode {
	return c.arena.Get(c.handles[i])
}

// Handle returns the handle of the i-th child.
func (c Children) Handle(i int) Handle {
	return c.handles[i]
}
