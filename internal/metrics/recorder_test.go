package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"git.home.luguber.info/inful/docnav/internal/nav"
)

type testRecorder struct {
	stores        int
	loads         map[ResultLabel]int
	renders       map[string]map[ResultLabel]int
	renderTimings int
}

func newTestRecorder() *testRecorder {
	return &testRecorder{loads: map[ResultLabel]int{}, renders: map[string]map[ResultLabel]int{}}
}

func (t *testRecorder) ObserveStore(nav.Stats)                      { t.stores++ }
func (t *testRecorder) IncConfigLoad(r ResultLabel)                 { t.loads[r]++ }
func (t *testRecorder) ObserveRenderDuration(string, time.Duration) { t.renderTimings++ }
func (t *testRecorder) IncRenderResult(format string, r ResultLabel) {
	m, ok := t.renders[format]
	if !ok {
		m = map[ResultLabel]int{}
		t.renders[format] = m
	}
	m[r]++
}

func TestRecorderInterfaces(t *testing.T) {
	var _ Recorder = NoopRecorder{}
	var _ Recorder = (*PrometheusRecorder)(nil)
	var _ Recorder = newTestRecorder()
}

func TestResultOf(t *testing.T) {
	assert.Equal(t, ResultSuccess, ResultOf(nil))
	assert.Equal(t, ResultFailed, ResultOf(errors.New("boom")))

	rec := newTestRecorder()
	rec.IncRenderResult("hugo", ResultOf(nil))
	rec.IncRenderResult("hugo", ResultOf(errors.New("boom")))
	assert.Equal(t, 1, rec.renders["hugo"][ResultFailed])
}
