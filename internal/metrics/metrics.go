// Package metrics defines the diagnostic channel for the ledger engine:
// counters for applied and rejected events. The engine never inspects the
// recorder; implementations decide where the counts go.
package metrics

// Recorder counts how the engine disposed of each input event. The engine
// calls into the recorder once per event, so implementations must be cheap.
type Recorder interface {
	// Applied counts a successfully applied event of the given type.
	Applied(eventType string)
	// Rejected counts an ignored event of the given type under a stable
	// rejection reason label.
	Rejected(eventType, reason string)
}

// Nop is a Recorder that discards everything.
type Nop struct{}

// Applied implements Recorder.
func (Nop) Applied(string) {}

// Rejected implements Recorder.
func (Nop) Rejected(string, string) {}
