package node

import (
	"reflect"

	"github.com/viant/nodly/runtime/execution"
)

// Transition bridges two subject types: it maps the source subject forward
// into a destination value, executes a differently-typed child tree against a
// fresh destination context, then maps the outcome back onto the source
// subject. Child failures are re-attached to the transition's own result so
// they surface in the source-side exception gathering exactly once.
type Transition[S, D any] struct {
	Base[S]
	child    Node[D]
	forward  func(ec *execution.Context[S]) (D, error)
	backward func(ec *execution.Context[S], destination D, result *execution.Result) (S, error)
}

// TransitionOption customises a transition at construction time.
type TransitionOption[S, D any] func(t *Transition[S, D])

// WithChild sets the destination-typed child tree.
func WithChild[S, D any](child Node[D]) TransitionOption[S, D] {
	return func(t *Transition[S, D]) { t.child = child }
}

// WithForward sets the source-to-destination subject mapping.
func WithForward[S, D any](forward func(ec *execution.Context[S]) (D, error)) TransitionOption[S, D] {
	return func(t *Transition[S, D]) { t.forward = forward }
}

// WithBackward sets the destination-to-source subject mapping applied after
// the child executed; when absent the source subject is left untouched.
func WithBackward[S, D any](backward func(ec *execution.Context[S], destination D, result *execution.Result) (S, error)) TransitionOption[S, D] {
	return func(t *Transition[S, D]) { t.backward = backward }
}

// WithTransitionBase applies regular node options to the transition's source
// side (predicates, hooks).
func WithTransitionBase[S, D any](options ...Option[S]) TransitionOption[S, D] {
	return func(t *Transition[S, D]) {
		for _, option := range options {
			option(&t.Base)
		}
	}
}

// NewTransition creates a type-changing node.
func NewTransition[S, D any](name string, options ...TransitionOption[S, D]) *Transition[S, D] {
	t := &Transition[S, D]{
		Base: NewBase[S](name, execution.StatusFailed),
	}
	for _, option := range options {
		option(t)
	}
	return t
}

// Reset returns the transition and its destination-typed subtree to NotRun.
func (t *Transition[S, D]) Reset() {
	t.Base.Reset()
	if t.child != nil {
		t.child.Reset()
	}
}

// Execute maps the subject forward, runs the child in its own context with a
// fresh state store but shared options, run identity and cancellation, links
// the child result tree and maps the destination back onto the source.
func (t *Transition[S, D]) Execute(ec *execution.Context[S]) *execution.Result {
	return t.run(ec, func(res *execution.Result) (execution.Status, error) {
		if t.child == nil {
			return execution.StatusNotRun, nil
		}

		var destination D
		if t.forward != nil {
			if err := guard(func() error {
				var e error
				destination, e = t.forward(ec)
				return e
			}); err != nil {
				return execution.StatusFailed, err
			}
		}

		destCtx := execution.NewContext[D](ec, destination,
			execution.WithOptions[D](ec.Options()),
			execution.WithEvents[D](ec.Events()),
			execution.WithID[D](ec.ID()),
		)
		childResult := t.child.Execute(destCtx)
		destCtx.BindResult(childResult)
		res.Linked = childResult
		err := execution.NewMultiError(childResult.FailErrors()...)

		if t.backward != nil {
			var mapped S
			if backErr := guard(func() error {
				var e error
				mapped, e = t.backward(ec, destCtx.Subject(), childResult)
				return e
			}); backErr != nil {
				return execution.StatusFailed, execution.NewMultiError(err, backErr)
			}
			if !reflect.DeepEqual(mapped, ec.Subject()) {
				ec.SetSubject(mapped)
			}
		}
		return childResult.Status, err
	})
}
