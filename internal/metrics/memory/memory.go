// Package memory provides an in-memory metrics.Recorder backing the CLI's
// end-of-run summary and test assertions.
package memory

import "sync"

// Recorder accumulates per-type and per-reason counters in memory.
type Recorder struct {
	mu       sync.Mutex
	applied  map[string]int64
	rejected map[string]map[string]int64
}

// New creates an empty Recorder.
func New() *Recorder {
	return &Recorder{
		applied:  make(map[string]int64),
		rejected: make(map[string]map[string]int64),
	}
}

// Applied implements metrics.Recorder.
func (r *Recorder) Applied(eventType string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.applied[eventType]++
}

// Rejected implements metrics.Recorder.
func (r *Recorder) Rejected(eventType, reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	byReason, ok := r.rejected[eventType]
	if !ok {
		byReason = make(map[string]int64)
		r.rejected[eventType] = byReason
	}
	byReason[reason]++
}

// AppliedCount returns how many events of the given type were applied.
func (r *Recorder) AppliedCount(eventType string) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.applied[eventType]
}

// RejectedCount returns how many events of the given type were rejected
// for the given reason.
func (r *Recorder) RejectedCount(eventType, reason string) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rejected[eventType][reason]
}

// RejectedByReason returns total rejections keyed by reason, summed across
// event types.
func (r *Recorder) RejectedByReason() map[string]int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	totals := make(map[string]int64)
	for _, byReason := range r.rejected {
		for reason, n := range byReason {
			totals[reason] += n
		}
	}
	return totals
}
