// Package telemetry exports build pass metrics to Prometheus.
//
// A Recorder implements ui.Observer; attach it to a root and every pass is
// counted:
//
//	rec := telemetry.NewRecorder(telemetry.WithRegistry(reg))
//	root := ui.NewRoot(ui.WithObserver(rec))
//
// Metrics collected (namespace "coat" by default):
//   - coat_passes_total{status}: passes by "ok" or "aborted"
//   - coat_nodes_created_total, coat_nodes_updated_total, coat_nodes_purged_total
//   - coat_states_created_total, coat_states_purged_total
//   - coat_live_nodes: render nodes alive after the last pass
//   - coat_pass_duration_seconds: pass duration histogram
package telemetry
