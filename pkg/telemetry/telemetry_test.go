package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/vango-dev/coat/pkg/key"
	"github.com/vango-dev/coat/pkg/tree"
	"github.com/vango-dev/coat/pkg/ui"
)

func metricCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	return m.GetCounter().GetValue()
}

func metricGaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		t.Fatalf("gauge Write() error: %v", err)
	}
	return m.GetGauge().GetValue()
}

func metricHistogramCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	var m dto.Metric
	if err := h.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}

type leaf struct{ tree.Base }

func (*leaf) Update(*tree.UpdateCtx, int) struct{} { return struct{}{} }

var leafKind = ui.Kind[int, struct{}, *leaf]{Create: func(int) *leaf { return &leaf{} }}

func TestRecorderObservesRoot(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := NewRecorder(WithRegistry(reg), WithNamespace("test"))
	root := ui.NewRoot(ui.WithObserver(rec))
	k := key.Caller(0)

	pass := func(n int) {
		t.Helper()
		_, err := root.Build(context.Background(), func(u *ui.Ui) {
			for i := 0; i < n; i++ {
				ui.Render(u, k.WithIndex(i), leafKind, i, nil)
			}
		})
		if err != nil {
			t.Fatalf("Build() error: %v", err)
		}
	}
	pass(3)
	pass(3)
	pass(1)

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"created", metricCounterValue(t, rec.nodesCreated), 3},
		{"updated", metricCounterValue(t, rec.nodesUpdated), 4},
		{"purged", metricCounterValue(t, rec.nodesPurged), 2},
		{"passes ok", metricCounterValue(t, rec.passes.WithLabelValues("ok")), 3},
		{"live", metricGaugeValue(t, rec.liveNodes), 1},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
	if n := metricHistogramCount(t, rec.duration); n != 3 {
		t.Errorf("duration samples = %d, want 3", n)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
	found := false
	for _, f := range families {
		if f.GetName() == "test_pass_duration_seconds" {
			found = true
		}
	}
	if !found {
		t.Error("test_pass_duration_seconds not registered")
	}
}

func TestRecorderCountsAbortedPasses(t *testing.T) {
	rec := NewRecorder(WithRegistry(prometheus.NewRegistry()))
	rec.ObservePass(context.Background(), ui.PassReport{
		Err:           "E001: State type mismatch",
		StatesCreated: 2,
		Duration:      time.Millisecond,
	})

	if got := metricCounterValue(t, rec.passes.WithLabelValues("aborted")); got != 1 {
		t.Errorf("aborted passes = %v, want 1", got)
	}
	if got := metricCounterValue(t, rec.statesCreated); got != 2 {
		t.Errorf("states created = %v, want 2", got)
	}
}

func TestConstLabelsAndSubsystem(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewRecorder(
		WithRegistry(reg),
		WithSubsystem("ui"),
		WithConstLabels(prometheus.Labels{"app": "demo"}),
		WithBuckets([]float64{0.001, 0.01}),
	)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
	for _, f := range families {
		if f.GetName() != "coat_ui_live_nodes" {
			continue
		}
		labels := f.GetMetric()[0].GetLabel()
		if len(labels) != 1 || labels[0].GetName() != "app" || labels[0].GetValue() != "demo" {
			t.Errorf("labels = %v, want app=demo", labels)
		}
		return
	}
	t.Error("coat_ui_live_nodes not registered")
}
