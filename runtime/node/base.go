package node

import (
	"sync"

	"github.com/viant/nodly/policy"
	"github.com/viant/nodly/progress"
	"github.com/viant/nodly/runtime/execution"
	"github.com/viant/nodly/service/event"
	"github.com/viant/nodly/tracing"
)

// Base bundles the state machine shared by every node kind: predicate
// evaluation, before/after hooks, status tracking and result caching. Embed it
// and supply the node's own work via run.
type Base[T any] struct {
	name         string
	predicate    execution.Predicate[T]
	ctxPredicate execution.CtxPredicate[T]
	before       func(ec *execution.Context[T]) error
	after        func(ec *execution.Context[T]) error

	// failStatus is the status recorded when the node's own step (predicate,
	// hook) fails: StatusFailed for leaves, StatusSingleNodeFailed for
	// composites whose children are unaffected.
	failStatus execution.Status

	mu     sync.Mutex
	status execution.Status
	last   *execution.Result
}

// NewBase constructs the shared node core.
func NewBase[T any](name string, failStatus execution.Status, options ...Option[T]) Base[T] {
	b := Base[T]{
		name:       name,
		failStatus: failStatus,
		status:     execution.StatusNotRun,
	}
	for _, option := range options {
		option(&b)
	}
	return b
}

// Name returns the node name.
func (b *Base[T]) Name() string { return b.name }

// SetName renames the node; flow resolution uses it to give a registered
// constructor's instance the component name declared in the definition.
func (b *Base[T]) SetName(name string) { b.name = name }

// Status returns the node's current execution status.
func (b *Base[T]) Status() execution.Status {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.status
}

// Reset returns the node to NotRun and clears the cached result.
func (b *Base[T]) Reset() {
	b.mu.Lock()
	b.status = execution.StatusNotRun
	b.last = nil
	b.mu.Unlock()
}

// SetPredicate sets the non-blocking predicate.
func (b *Base[T]) SetPredicate(predicate execution.Predicate[T]) {
	b.predicate = predicate
}

// SetCtxPredicate sets the blocking predicate form.
func (b *Base[T]) SetCtxPredicate(predicate execution.CtxPredicate[T]) {
	b.ctxPredicate = predicate
}

// HasPredicate reports whether either predicate form is set.
func (b *Base[T]) HasPredicate() bool {
	return b.predicate != nil || b.ctxPredicate != nil
}

// shouldExecute evaluates the node predicate; the blocking form wins when
// both are present, absent predicates default to true.
func (b *Base[T]) shouldExecute(ec *execution.Context[T]) (bool, error) {
	if b.ctxPredicate != nil {
		var ok bool
		err := guard(func() error {
			var e error
			ok, e = b.ctxPredicate(ec)
			return e
		})
		return ok, err
	}
	if b.predicate != nil {
		var ok bool
		err := guard(func() error {
			ok = b.predicate(ec)
			return nil
		})
		return ok, err
	}
	return true, nil
}

// run drives the node state machine around the supplied work function. Work
// receives the node's fresh result (to append children or link sub-flow
// results to) and returns the status of the node's own outcome together with
// any captured failure.
func (b *Base[T]) run(ec *execution.Context[T], work func(res *execution.Result) (execution.Status, error)) *execution.Result {
	b.mu.Lock()
	if b.status != execution.StatusNotRun && b.last != nil {
		cached := b.last
		b.mu.Unlock()
		return cached
	}
	b.mu.Unlock()

	res := execution.NewResult(b.name)
	_, span := tracing.StartSpan(ec, "node.execute "+b.name)
	tracker := progress.FromContext(ec)
	tracker.Update(progress.Delta{Total: 1, Running: 1})
	b.publish(ec, event.KindNodeStarted, "", nil)

	finish := func(status execution.Status, err error) *execution.Result {
		res.Finish(status, err, ec.Subject())
		b.mu.Lock()
		b.status = status
		b.last = res
		b.mu.Unlock()

		delta := progress.Delta{Running: -1}
		switch {
		case status == execution.StatusNotRun:
			delta.Skipped = 1
		case status.Failure():
			delta.Failed = 1
		default:
			delta.Completed = 1
		}
		tracker.Update(delta)
		b.publish(ec, event.KindNodeFinished, status, err)
		tracing.EndSpan(span, err)
		return res
	}

	// Cancellation observed before the node started leaves it NotRun with the
	// context error recorded; work already under way is responsible for
	// checking the context cooperatively.
	if err := ec.Err(); err != nil {
		return finish(execution.StatusNotRun, err)
	}
	if !policy.FromContext(ec).IsAllowed(b.name) {
		return finish(execution.StatusNotRun, nil)
	}

	ok, err := b.shouldExecute(ec)
	if err != nil {
		return finish(b.failStatus, err)
	}
	if !ok {
		return finish(execution.StatusNotRun, nil)
	}

	if b.before != nil {
		if err := guard(func() error { return b.before(ec) }); err != nil {
			return finish(b.failStatus, err)
		}
	}

	status, err := work(res)

	if b.after != nil {
		if afterErr := guard(func() error { return b.after(ec) }); afterErr != nil {
			err = execution.NewMultiError(err, afterErr)
			if !status.Failure() {
				status = b.failStatus
			}
		}
	}
	return finish(status, err)
}

func (b *Base[T]) publish(ec *execution.Context[T], kind event.Kind, status execution.Status, err error) {
	events := ec.Events()
	if events == nil {
		return
	}
	e := &event.Event{RunID: ec.ID(), Node: b.name, Kind: kind}
	if status != "" {
		e.Status = status.String()
	}
	if err != nil {
		e.Error = err.Error()
	}
	events.Publish(ec, e)
}
