package metrics

import (
	"testing"
	"time"
)

// NoopRecorder must satisfy Recorder and accept any input.
func TestNoopRecorder(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.IncCodelabCopied("android")
	r.ObserveRunDuration(time.Second)
	r.IncRunOutcome(OutcomeCopied)
	r.SetLastRunCopied(3)
}
