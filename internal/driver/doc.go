// Package driver runs a behavior tree: it owns the root node and calls
// Update on it once per tick until the root stops.
//
// A Runner drives exactly one tree. Step ticks synchronously on the caller's
// goroutine; Run ticks on a go-behaviortree Ticker at a fixed interval. In
// both cases only one goroutine ever touches the tree at a time, and the root
// is cancelled at most once, after the last Update has returned.
//
// Runs are observable through log/slog, Prometheus metrics (see NewMetrics)
// and OpenTelemetry spans (one span per run, one event per tick).
package driver
