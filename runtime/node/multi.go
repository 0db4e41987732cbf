package node

import (
	"github.com/viant/nodly/runtime/execution"
)

// Multi is the shared core of nodes owning an ordered child collection. Child
// failures never appear on the composite's own Err; they stay on the child
// results and are gathered via Result.FailErrors.
type Multi[T any] struct {
	Base[T]
	children   []Node[T]
	completion Completion
}

// NewMulti constructs the composite core.
func NewMulti[T any](name string, options ...Option[T]) Multi[T] {
	return Multi[T]{
		Base:       NewBase(name, execution.StatusSingleNodeFailed, options...),
		completion: DefaultCompletion(),
	}
}

// Add appends children preserving declaration order.
func (m *Multi[T]) Add(children ...Node[T]) {
	m.children = append(m.children, children...)
}

// Children returns a copy of the child collection in declaration order.
func (m *Multi[T]) Children() []Node[T] {
	ret := make([]Node[T], len(m.children))
	copy(ret, m.children)
	return ret
}

// SetCompletion overrides how child outcomes combine.
func (m *Multi[T]) SetCompletion(completion Completion) {
	m.completion = completion
}

// Completion returns the active completion policy.
func (m *Multi[T]) Completion() Completion {
	return m.completion
}

// Reset returns the composite and its whole subtree to NotRun.
func (m *Multi[T]) Reset() {
	m.Base.Reset()
	for _, child := range m.children {
		child.Reset()
	}
}

// combine derives the composite status from child results. NotRun children are
// neutral: they count neither as success nor as failure.
func (m *Multi[T]) combine(results []*execution.Result) execution.Status {
	var succeeded, failed int
	for _, r := range results {
		switch {
		case r.Status.Failure():
			failed++
		case r.Status.Success():
			succeeded++
		}
	}
	if failed == 0 {
		return execution.StatusSucceeded
	}
	if succeeded == 0 {
		return execution.StatusGroupFailedAllChildNodes
	}
	if m.completion.AllowPartial {
		return execution.StatusGroupSucceededWithErrors
	}
	return execution.StatusGroupFailed
}
