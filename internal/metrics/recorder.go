package metrics

import "time"

// OutcomeLabel enumerates copy run outcomes for counters.
type OutcomeLabel string

const (
	OutcomeCopied  OutcomeLabel = "copied"  // at least one codelab copied
	OutcomeEmpty   OutcomeLabel = "empty"   // source present, nothing to copy
	OutcomeMissing OutcomeLabel = "missing" // no codelabs directory in source
	OutcomeFailed  OutcomeLabel = "failed"
)

// Recorder defines observability hooks for the codelab copy step. Implementations
// may forward to Prometheus, OpenTelemetry, etc.
type Recorder interface {
	IncCodelabCopied(category string)
	ObserveRunDuration(d time.Duration)
	IncRunOutcome(outcome OutcomeLabel)
	SetLastRunCopied(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncCodelabCopied(string)          {}
func (NoopRecorder) ObserveRunDuration(time.Duration) {}
func (NoopRecorder) IncRunOutcome(OutcomeLabel)       {}
func (NoopRecorder) SetLastRunCopied(int)             {}
