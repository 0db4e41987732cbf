package node

import (
	"fmt"

	"github.com/viant/nodly/runtime/execution"
)

// Node is the atomic executable unit: predicate check, before hook, perform,
// after hook, status. Execute never panics and never returns an error - every
// failure is captured on the returned result so that callers always receive a
// result tree, even on failure.
type Node[T any] interface {
	Name() string

	// Status returns the node's current execution status.
	Status() execution.Status

	// Execute runs the node against the supplied context and returns its
	// result. Re-executing a node in a terminal status returns the cached
	// result until Reset is called.
	Execute(ec *execution.Context[T]) *execution.Result

	// Reset returns the node (and, for composites, its whole subtree) to
	// NotRun, clearing captured results so the same tree can run again.
	Reset()

	SetPredicate(predicate execution.Predicate[T])
	SetCtxPredicate(predicate execution.CtxPredicate[T])
	HasPredicate() bool
}

// Composer is implemented by nodes that own an ordered child collection.
type Composer[T any] interface {
	Node[T]
	Add(children ...Node[T])
	Children() []Node[T]
}

// guard invokes fn converting a panic into an error so that no failure ever
// crosses a composition boundary as a thrown value.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("node panicked: %v", r)
		}
	}()
	return fn()
}
