package ui

import (
	"context"
	"time"
)

// PassReport summarizes one build pass.
type PassReport struct {
	Pass            uint64        `json:"pass"`
	NodesCreated    int           `json:"nodesCreated"`
	NodesUpdated    int           `json:"nodesUpdated"`
	NodesPurged     int           `json:"nodesPurged"`
	StatesCreated   int           `json:"statesCreated"`
	StatesPurged    int           `json:"statesPurged"`
	LiveNodes       int           `json:"liveNodes"`
	LayoutRequested bool          `json:"layoutRequested"`
	Duration        time.Duration `json:"durationNs"`
	Err             string        `json:"error,omitempty"`
}

// Changed reports whether the pass inserted or removed anything.
func (r PassReport) Changed() bool {
	return r.NodesCreated+r.NodesPurged+r.StatesCreated+r.StatesPurged > 0
}

// Observer is notified after every build pass, including aborted ones.
// Observers run synchronously while the root is locked and must not call
// back into it.
type Observer interface {
	ObservePass(ctx context.Context, report PassReport)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ctx context.Context, report PassReport)

// ObservePass implements Observer.
func (f ObserverFunc) ObservePass(ctx context.Context, report PassReport) {
	f(ctx, report)
}
