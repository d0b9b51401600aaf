// Package inspect serves a live view of a render tree for development tools.
//
// Routes:
//
//	GET /tree         JSON snapshot of the whole tree
//	GET /nodes/{id}   JSON snapshot of one node and its subtree
//	GET /passes       websocket stream of pass reports
//	GET /metrics      Prometheus metrics, when a gatherer is configured
//
// The server registers itself as an observer of the root, so every build
// pass is pushed to connected websocket clients as it completes.
package inspect
