package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.IncCodelabCopied("android")
	pr.IncCodelabCopied("android")
	pr.IncCodelabCopied("web")
	pr.ObserveRunDuration(150 * time.Millisecond)
	pr.IncRunOutcome(OutcomeCopied)
	pr.SetLastRunCopied(3)

	mfs, err := reg.Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			key := mf.GetName()
			for _, lp := range m.GetLabel() {
				key += "/" + lp.GetValue()
			}
			switch {
			case m.GetCounter() != nil:
				values[key] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				values[key] = m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				values[key] = float64(m.GetHistogram().GetSampleCount())
			}
		}
	}

	require.InDelta(t, 2.0, values["codelabcopy_codelabs_copied_total/android"], 0)
	require.InDelta(t, 1.0, values["codelabcopy_codelabs_copied_total/web"], 0)
	require.InDelta(t, 1.0, values["codelabcopy_run_outcomes_total/copied"], 0)
	require.InDelta(t, 3.0, values["codelabcopy_last_run_copied"], 0)
	require.InDelta(t, 1.0, values["codelabcopy_run_duration_seconds"], 0)
	require.Positive(t, values["codelabcopy_last_run_timestamp_seconds"])
}

func TestPrometheusRecorder_NilReceiver(t *testing.T) {
	var pr *PrometheusRecorder
	pr.IncCodelabCopied("android")
	pr.ObserveRunDuration(time.Second)
	pr.IncRunOutcome(OutcomeFailed)
	pr.SetLastRunCopied(1)
}

func TestWriteTextfile(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.IncCodelabCopied("flutter")
	pr.IncRunOutcome(OutcomeCopied)

	path := filepath.Join(t.TempDir(), "textfile", "codelabcopy.prom")
	require.NoError(t, WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	require.True(t, strings.Contains(text, `codelabcopy_codelabs_copied_total{category="flutter"} 1`), text)
	require.Contains(t, text, `codelabcopy_run_outcomes_total{outcome="copied"} 1`)
}
