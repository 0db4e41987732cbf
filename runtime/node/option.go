package node

import (
	"github.com/viant/nodly/runtime/execution"
)

// Option customises a node at construction time.
type Option[T any] func(b *Base[T])

// WithPredicate sets the non-blocking execution predicate.
func WithPredicate[T any](predicate execution.Predicate[T]) Option[T] {
	return func(b *Base[T]) { b.predicate = predicate }
}

// WithCtxPredicate sets the blocking predicate form; it takes precedence over
// the non-blocking form when both are present.
func WithCtxPredicate[T any](predicate execution.CtxPredicate[T]) Option[T] {
	return func(b *Base[T]) { b.ctxPredicate = predicate }
}

// WithBefore sets a hook invoked after the predicate admitted execution and
// before the node's own work.
func WithBefore[T any](hook func(ec *execution.Context[T]) error) Option[T] {
	return func(b *Base[T]) { b.before = hook }
}

// WithAfter sets a hook invoked after the node's own work completed.
func WithAfter[T any](hook func(ec *execution.Context[T]) error) Option[T] {
	return func(b *Base[T]) { b.after = hook }
}
