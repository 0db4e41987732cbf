package node

import (
	"github.com/viant/nodly/runtime/execution"
)

// Action is the leaf node: a named perform function executed against the
// shared context.
type Action[T any] struct {
	Base[T]
	perform func(ec *execution.Context[T]) error
}

// NewAction creates a leaf node wrapping the supplied perform function.
func NewAction[T any](name string, perform func(ec *execution.Context[T]) error, options ...Option[T]) *Action[T] {
	return &Action[T]{
		Base:    NewBase(name, execution.StatusFailed, options...),
		perform: perform,
	}
}

// Execute runs the action; any error or panic raised by perform is captured on
// the returned result.
func (a *Action[T]) Execute(ec *execution.Context[T]) *execution.Result {
	return a.run(ec, func(res *execution.Result) (execution.Status, error) {
		if a.perform == nil {
			return execution.StatusSucceeded, nil
		}
		if err := guard(func() error { return a.perform(ec) }); err != nil {
			return execution.StatusFailed, err
		}
		return execution.StatusSucceeded, nil
	})
}
