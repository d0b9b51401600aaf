package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vango-dev/coat/internal/config"
	"github.com/vango-dev/coat/pkg/telemetry"
	"github.com/vango-dev/coat/pkg/tree"
	"github.com/vango-dev/coat/pkg/ui"
)

// session is one demo app bound to a root with metrics attached.
type session struct {
	root     *ui.Root
	registry *prometheus.Registry
	out      io.Writer
	showTree bool
}

func newSession(cfg *config.Config, logger *slog.Logger, out io.Writer) *session {
	registry := prometheus.NewRegistry()
	recorder := telemetry.NewRecorder(
		telemetry.WithNamespace(cfg.Metrics.Namespace),
		telemetry.WithRegistry(registry),
	)
	root := ui.NewRoot(
		ui.WithLogger(logger),
		ui.WithObserver(recorder),
	)
	return &session{root: root, registry: registry, out: out}
}

// step runs one pass and then clicks the demo buttons for the next one.
func (s *session) step(ctx context.Context) (ui.PassReport, error) {
	report, err := s.root.Build(ctx, demoApp)
	if err != nil {
		return report, err
	}
	s.printReport(report)
	if s.showTree {
		printTree(s.out, s.root.Snapshot().Nodes, 1)
	}
	if err := scriptStep(s.root, int(report.Pass)); err != nil {
		return report, err
	}
	return report, nil
}

// run steps passes times, waiting interval between passes. passes <= 0
// runs until ctx is done.
func (s *session) run(ctx context.Context, passes int, interval time.Duration) error {
	var ticker *time.Ticker
	if interval > 0 {
		ticker = time.NewTicker(interval)
		defer ticker.Stop()
	}

	for i := 0; passes <= 0 || i < passes; i++ {
		if i > 0 && ticker != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}
		} else if ctx.Err() != nil {
			return nil
		}
		if _, err := s.step(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (s *session) close() {
	s.root.Close()
}

func (s *session) printReport(r ui.PassReport) {
	success(s.out, "pass %d: +%d ~%d -%d nodes, %d live (%s)",
		r.Pass, r.NodesCreated, r.NodesUpdated, r.NodesPurged, r.LiveNodes,
		r.Duration.Round(time.Microsecond))
	if r.LayoutRequested {
		info(s.out, "layout requested")
	}
}

// printTree prints one line per node, indented by depth.
func printTree(w io.Writer, nodes []tree.NodeSnapshot, depth int) {
	for _, n := range nodes {
		fmt.Fprintf(w, "%s#%d %s  %s\n", strings.Repeat("  ", depth), n.ID, n.Type, n.Key)
		printTree(w, n.Children, depth+1)
	}
}
