// Package metrics records navigation store shape and render outcomes.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so no call site needs a nil check:
//
//	rec := metrics.Recorder(metrics.NoopRecorder{})
//	if metricsFile != "" {
//	    reg := prometheus.NewRegistry()
//	    rec = metrics.NewPrometheusRecorder(reg)
//	    defer metrics.WriteTextfile(metricsFile, reg)
//	}
//
// The CLI is short-lived, so metrics are exported in the node_exporter textfile format
// rather than served over HTTP.
package metrics
