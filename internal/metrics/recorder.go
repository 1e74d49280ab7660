package metrics

import (
	"time"

	"git.home.luguber.info/inful/docnav/internal/nav"
)

// ResultLabel enumerates result categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultFailed  ResultLabel = "failed"
)

// ResultOf maps an error to its result label.
func ResultOf(err error) ResultLabel {
	if err != nil {
		return ResultFailed
	}
	return ResultSuccess
}

// Recorder defines observability hooks for configuration loading and rendering.
type Recorder interface {
	ObserveStore(stats nav.Stats)
	IncConfigLoad(result ResultLabel)
	ObserveRenderDuration(format string, d time.Duration)
	IncRenderResult(format string, result ResultLabel)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStore(nav.Stats)                      {}
func (NoopRecorder) IncConfigLoad(ResultLabel)                   {}
func (NoopRecorder) ObserveRenderDuration(string, time.Duration) {}
func (NoopRecorder) IncRenderResult(string, ResultLabel)         {}
