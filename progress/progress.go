// Package progress provides a lightweight tracker that keeps aggregated
// execution counters (nodes total, completed, failed, skipped) for a single
// flow run. The tracker instance lives in the execution context - every
// component that receives the context can atomically update the counters via
// the Delta helper without requiring a global registry.

package progress

import (
	"context"
	"sync"
	"time"

	"github.com/viant/nodly/internal/clock"
)

// Delta represents an incremental counter change emitted by node execution.
// The fields are signed and therefore can be either positive (increment) or
// negative (decrement).
type Delta struct {
	Total     int
	Completed int
	Skipped   int
	Failed    int
	Running   int
}

// Snapshot is a read-only copy of the tracker counters.
type Snapshot struct {
	// Identification - informative only, filled when the root run starts.
	RunID     string
	Flow      string
	StartedAt time.Time

	TotalNodes     int
	CompletedNodes int
	SkippedNodes   int
	FailedNodes    int
	RunningNodes   int
}

// Progress keeps aggregated node counters for the root flow run and all its
// sub-flows. It is safe for concurrent use.
type Progress struct {
	mu       sync.Mutex
	current  Snapshot
	onChange func(Snapshot)
}

// Update applies the supplied delta to the tracker. It is safe to call from
// multiple goroutines. A registered onChange callback is invoked with a copy
// of the updated tracker outside the critical section so that it can perform
// slow operations without blocking engine internals.
func (p *Progress) Update(d Delta) {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.current.TotalNodes += d.Total
	p.current.CompletedNodes += d.Completed
	p.current.SkippedNodes += d.Skipped
	p.current.FailedNodes += d.Failed
	p.current.RunningNodes += d.Running
	snapshot := p.current
	cb := p.onChange
	p.mu.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}

// Snapshot returns a copy of the tracker suitable for read-only inspection.
func (p *Progress) Snapshot() Snapshot {
	if p == nil {
		return Snapshot{}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// OnChange registers a callback that is invoked after every Update. Passing
// nil disables the callback. Only one callback can be active; subsequent
// calls overwrite the previous value.
func (p *Progress) OnChange(cb func(Snapshot)) {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.onChange = cb
	p.mu.Unlock()
}

type trackerKeyT struct{}

var trackerKey trackerKeyT

// WithNewTracker creates a new Progress tracker, embeds it in a derived
// context and returns both. The caller may optionally pass an onChange
// callback invoked after every counter update.
func WithNewTracker(ctx context.Context, runID, flow string, onChange func(Snapshot)) (context.Context, *Progress) {
	if ctx == nil {
		ctx = context.Background()
	}
	tracker := &Progress{
		current: Snapshot{
			RunID:     runID,
			Flow:      flow,
			StartedAt: clock.Now(),
		},
		onChange: onChange,
	}
	return context.WithValue(ctx, trackerKey, tracker), tracker
}

// FromContext returns the tracker embedded in ctx, or nil.
func FromContext(ctx context.Context) *Progress {
	if ctx == nil {
		return nil
	}
	if tracker, ok := ctx.Value(trackerKey).(*Progress); ok {
		return tracker
	}
	return nil
}
