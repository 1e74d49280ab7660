package metrics

import (
	"fmt"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/docnav/internal/nav"
)

const namespace = "docnav"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	storeShape     *prom.GaugeVec
	configLoads    *prom.CounterVec
	renderDuration *prom.HistogramVec
	renderResults  *prom.CounterVec
}

// NewPrometheusRecorder constructs metrics and registers them with reg (a fresh registry
// when nil).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		storeShape: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "store_entries",
			Help:      "Size of the loaded navigation store by dimension",
		}, []string{"dimension"}),
		configLoads: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "config_loads_total",
			Help:      "Configuration loads by result",
		}, []string{"result"}),
		renderDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Duration of renderer runs",
			Buckets:   prom.DefBuckets,
		}, []string{"format"}),
		renderResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "render_results_total",
			Help:      "Renderer runs by format and result",
		}, []string{"format", "result"}),
	}
	reg.MustRegister(pr.storeShape, pr.configLoads, pr.renderDuration, pr.renderResults)
	return pr
}

func (p *PrometheusRecorder) ObserveStore(s nav.Stats) {
	if p == nil {
		return
	}
	for dim, v := range map[string]int{
		"nav_items":        s.NavItems,
		"sidebar_prefixes": s.SidebarPrefixes,
		"sections":         s.Sections,
		"sidebar_items":    s.SidebarItems,
		"max_depth":        s.MaxDepth,
		"labels":           s.Labels,
	} {
		p.storeShape.WithLabelValues(dim).Set(float64(v))
	}
}

func (p *PrometheusRecorder) IncConfigLoad(result ResultLabel) {
	if p == nil {
		return
	}
	p.configLoads.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) ObserveRenderDuration(format string, d time.Duration) {
	if p == nil {
		return
	}
	p.renderDuration.WithLabelValues(format).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRenderResult(format string, result ResultLabel) {
	if p == nil {
		return
	}
	p.renderResults.WithLabelValues(format, string(result)).Inc()
}

// WriteTextfile writes everything gathered by g to filename in the text exposition
// format, atomically.
func WriteTextfile(filename string, g prom.Gatherer) error {
	if err := prom.WriteToTextfile(filename, g); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
