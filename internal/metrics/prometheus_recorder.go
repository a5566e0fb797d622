package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	copied       *prom.CounterVec
	runDuration  prom.Histogram
	runOutcome   *prom.CounterVec
	lastCopied   prom.Gauge
	lastRunStamp prom.Gauge
}

// NewPrometheusRecorder constructs and registers Prometheus metrics on reg.
// A nil registry gets a private one so callers can still gather from the recorder.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		copied: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "codelabcopy",
			Name:      "codelabs_copied_total",
			Help:      "Codelab directories copied into the site, by category",
		}, []string{"category"}),
		runDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "codelabcopy",
			Name:      "run_duration_seconds",
			Help:      "Duration of a codelab copy pass",
			Buckets:   prom.DefBuckets,
		}),
		runOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "codelabcopy",
			Name:      "run_outcomes_total",
			Help:      "Copy pass outcomes by final status",
		}, []string{"outcome"}),
		lastCopied: prom.NewGauge(prom.GaugeOpts{
			Namespace: "codelabcopy",
			Name:      "last_run_copied",
			Help:      "Number of codelabs copied by the most recent pass",
		}),
		lastRunStamp: prom.NewGauge(prom.GaugeOpts{
			Namespace: "codelabcopy",
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the most recent pass finished",
		}),
	}
	reg.MustRegister(pr.copied, pr.runDuration, pr.runOutcome, pr.lastCopied, pr.lastRunStamp)
	return pr
}

func (p *PrometheusRecorder) IncCodelabCopied(category string) {
	if p == nil {
		return
	}
	p.copied.WithLabelValues(category).Inc()
}

func (p *PrometheusRecorder) ObserveRunDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.runDuration.Observe(d.Seconds())
	p.lastRunStamp.SetToCurrentTime()
}

func (p *PrometheusRecorder) IncRunOutcome(outcome OutcomeLabel) {
	if p == nil {
		return
	}
	p.runOutcome.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) SetLastRunCopied(n int) {
	if p == nil {
		return
	}
	p.lastCopied.Set(float64(n))
}
