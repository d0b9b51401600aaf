package telemetry

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/coat/pkg/ui"
)

// Config configures the Prometheus recorder.
type Config struct {
	// Namespace is the metrics namespace (default: "coat").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for pass duration.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the recorder.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "coat",
		// Passes are expected to take micro- to milliseconds.
		Buckets:  prometheus.ExponentialBuckets(0.00001, 4, 10),
		Registry: prometheus.DefaultRegisterer,
	}
}

// Recorder records PassReports as Prometheus metrics.
type Recorder struct {
	passes        *prometheus.CounterVec
	nodesCreated  prometheus.Counter
	nodesUpdated  prometheus.Counter
	nodesPurged   prometheus.Counter
	statesCreated prometheus.Counter
	statesPurged  prometheus.Counter
	liveNodes     prometheus.Gauge
	duration      prometheus.Histogram
}

var _ ui.Observer = (*Recorder)(nil)

// NewRecorder creates and registers the metrics. Registering twice on the
// same registry panics, as with promauto.
func NewRecorder(opts ...Option) *Recorder {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	counter := func(name, help string) prometheus.Counter {
		return factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: config.ConstLabels,
		})
	}

	return &Recorder{
		passes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "passes_total",
			Help:        "Total number of build passes by status",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		nodesCreated:  counter("nodes_created_total", "Render nodes created by build passes"),
		nodesUpdated:  counter("nodes_updated_total", "Render nodes updated with new props"),
		nodesPurged:   counter("nodes_purged_total", "Render nodes purged, including descendants"),
		statesCreated: counter("states_created_total", "State cells created by build passes"),
		statesPurged:  counter("states_purged_total", "State cells purged"),

		liveNodes: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "live_nodes",
			Help:        "Render nodes alive after the last pass",
			ConstLabels: config.ConstLabels,
		}),

		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "pass_duration_seconds",
			Help:        "Build pass duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),
	}
}

// ObservePass implements ui.Observer.
func (r *Recorder) ObservePass(_ context.Context, report ui.PassReport) {
	status := "ok"
	if report.Err != "" {
		status = "aborted"
	}
	r.passes.WithLabelValues(status).Inc()
	r.nodesCreated.Add(float64(report.NodesCreated))
	r.nodesUpdated.Add(float64(report.NodesUpdated))
	r.nodesPurged.Add(float64(report.NodesPurged))
	r.statesCreated.Add(float64(report.StatesCreated))
	r.statesPurged.Add(float64(report.StatesPurged))
	r.liveNodes.Set(float64(report.LiveNodes))
	r.duration.Observe(report.Duration.Seconds())
}
