// Package metrics holds histogram buckets shared by the Prometheus collectors
// of the scanner.
package metrics

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// BatchBuckets cover whole scan batches, which fetch a page of content and
// run every rule over it. Remote content sources push them into seconds.
var BatchBuckets = []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60} //nolint: gochecknoglobals
