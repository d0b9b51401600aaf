package ui

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/coat/internal/errors"
	"github.com/vango-dev/coat/pkg/bloom"
	"github.com/vango-dev/coat/pkg/tree"
)

// DefaultTracerName is the OpenTelemetry tracer used when none is given.
const DefaultTracerName = "coat"

// Root owns a render tree and runs build passes over it.
//
// Build is the only writer. Snapshot, Find, Walk and the other readers may
// be called from other goroutines; they wait for a running pass to finish.
type Root struct {
	mu sync.RWMutex

	arena    *tree.Arena
	alloc    *tree.Allocator
	children tree.ChildTree
	filter   bloom.Filter

	passes   uint64
	poisoned error

	logger    *slog.Logger
	tracer    trace.Tracer
	observers []Observer
}

// Option configures a Root.
type Option func(*Root)

// WithLogger sets the structured logger. Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Root) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithTracer sets the tracer used for per-pass spans.
// Default: otel.Tracer(DefaultTracerName) from the global provider.
func WithTracer(tracer trace.Tracer) Option {
	return func(r *Root) {
		if tracer != nil {
			r.tracer = tracer
		}
	}
}

// WithObserver adds an observer notified after every pass. Observers run
// with the root locked and must not call back into it.
func WithObserver(o Observer) Option {
	return func(r *Root) {
		if o != nil {
			r.observers = append(r.observers, o)
		}
	}
}

// WithAllocator makes the root draw node IDs from alloc, so several roots
// can share one ID space.
func WithAllocator(alloc *tree.Allocator) Option {
	return func(r *Root) {
		if alloc != nil {
			r.alloc = alloc
		}
	}
}

// NewRoot creates an empty tree.
func NewRoot(opts ...Option) *Root {
	r := &Root{
		arena:  tree.NewArena(),
		alloc:  tree.NewAllocator(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.tracer == nil {
		r.tracer = otel.Tracer(DefaultTracerName)
	}
	return r
}

// Observe adds an observer after construction.
func (r *Root) Observe(o Observer) {
	if o == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers = append(r.observers, o)
}

// Build runs one build pass: fn declares the top level of the tree, and the
// persistent tree is reconciled against the declarations.
//
// A type mismatch aborts the pass. Build then returns the error and the root
// is poisoned: later calls return an error matching ErrPoisoned.
func (r *Root) Build(ctx context.Context, fn func(u *Ui)) (PassReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.poisoned != nil {
		err := errors.New("E003").
			WithDetailf("A previous pass aborted: %v", r.poisoned).
			Wrap(ErrPoisoned)
		return PassReport{Pass: r.passes}, err
	}

	r.passes++
	ctx, span := r.tracer.Start(ctx, "coat.build",
		trace.WithAttributes(attribute.Int64("coat.pass", int64(r.passes))),
	)
	defer span.End()

	p := &pass{arena: r.arena, alloc: r.alloc, top: &r.children}
	start := time.Now()
	err := r.run(p, fn)

	report := PassReport{
		Pass:            r.passes,
		NodesCreated:    p.stats.nodesCreated,
		NodesUpdated:    p.stats.nodesUpdated,
		NodesPurged:     p.stats.purged.Nodes,
		StatesCreated:   p.stats.statesCreated,
		StatesPurged:    p.stats.purged.States,
		LiveNodes:       r.arena.Len(),
		LayoutRequested: p.state.LayoutRequested,
		Duration:        time.Since(start),
	}

	span.SetAttributes(
		attribute.Int("coat.nodes_created", report.NodesCreated),
		attribute.Int("coat.nodes_purged", report.NodesPurged),
		attribute.Int("coat.live_nodes", report.LiveNodes),
	)

	if err != nil {
		r.poisoned = err
		report.Err = err.Error()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.logger.Error("build pass aborted",
			"pass", report.Pass,
			"error", err,
		)
	} else {
		span.SetStatus(codes.Ok, "")
		r.logger.Debug("build pass complete",
			"pass", report.Pass,
			"created", report.NodesCreated,
			"updated", report.NodesUpdated,
			"purged", report.NodesPurged,
			"live", report.LiveNodes,
			"duration", report.Duration,
		)
	}

	for _, o := range r.observers {
		o.ObservePass(ctx, report)
	}
	return report, err
}

// run executes fn and purges the top level. A coat error raised inside the
// pass is returned; any other panic poisons the root and is re-raised.
func (r *Root) run(p *pass, fn func(u *Ui)) (err error) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		if ce, ok := rec.(*errors.CoatError); ok {
			err = ce
			return
		}
		r.poisoned = fmt.Errorf("pass %d panicked: %v", r.passes, rec)
		panic(rec)
	}()

	u := &Ui{p: p}
	if fn != nil {
		fn(u)
	}
	p.stats.purged.Add(r.children.Purge(r.arena, u.stateIndex, u.renderIndex))
	r.filter = r.arena.FilterOf(&r.children, 0)
	return nil
}

// Snapshot is a serializable copy of the whole tree.
type Snapshot struct {
	Pass      uint64              `json:"pass"`
	LiveNodes int                 `json:"liveNodes"`
	States    int                 `json:"states"`
	Nodes     []tree.NodeSnapshot `json:"nodes"`
}

// Snapshot copies the tree as of the last completed pass.
func (r *Root) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return Snapshot{
		Pass:      r.passes,
		LiveNodes: r.arena.Len(),
		States:    len(r.children.States),
		Nodes:     r.arena.Snapshot(&r.children),
	}
}

// Contains reports whether a node with id is in the tree.
func (r *Root) Contains(id tree.ID) bool {
	_, ok := r.Find(id)
	return ok
}

// Find returns a snapshot of the node with id and its subtree.
func (r *Root) Find(id tree.ID) (tree.NodeSnapshot, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.filter.MayContain(uint64(id)) {
		return tree.NodeSnapshot{}, false
	}
	h, ok := r.arena.Find(&r.children, id)
	if !ok {
		return tree.NodeSnapshot{}, false
	}
	return r.arena.SnapshotNode(r.arena.Get(h)), true
}

// Walk visits every node depth-first while holding the read lock. fn must
// not retain n or call back into r. Returning false skips n's children.
func (r *Root) Walk(fn func(n *tree.RenderNode, depth int) bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	r.arena.Walk(&r.children, func(_ tree.Handle, n *tree.RenderNode, depth int) bool {
		return fn(n, depth)
	})
}

// Children returns the top-level nodes for traversal code. It must only be
// used between passes by the goroutine that calls Build.
func (r *Root) Children() tree.Children {
	return r.arena.ChildrenOf(&r.children)
}

// NeedsUpdate reports whether any node asked for another pass.
func (r *Root) NeedsUpdate() bool {
	needs := false
	r.Walk(func(n *tree.RenderNode, _ int) bool {
		if n.State.RequestUpdate {
			needs = true
		}
		return !needs
	})
	return needs
}

// Dispatch delivers ev to the node with id and reports whether the node
// handled it. An event that requests an update is picked up by NeedsUpdate.
func (r *Root) Dispatch(id tree.ID, ev tree.Event) (handled, found bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.filter.MayContain(uint64(id)) {
		return false, false
	}
	h, ok := r.arena.Find(&r.children, id)
	if !ok {
		return false, false
	}
	n := r.arena.Get(h)
	ctx := &tree.EventCtx{Node: &n.State}
	n.Object.Event(ctx, ev, r.arena.ChildrenOf(&n.Children))
	return ctx.Handled, true
}

// Pass returns the number of passes started so far.
func (r *Root) Pass() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.passes
}

// LiveNodes returns the number of render nodes in the tree.
func (r *Root) LiveNodes() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.arena.Len()
}

// Close releases every node and state cell, disposing resources.
func (r *Root) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := r.children.Clear(r.arena)
	r.filter = bloom.New()
	r.logger.Debug("render tree closed", "nodes", stats.Nodes, "states", stats.States)
}
