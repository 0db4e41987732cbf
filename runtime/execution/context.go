package execution

import (
	"context"
	"sync"

	"github.com/viant/nodly/internal/idgen"
	"github.com/viant/nodly/service/event"
)

// Predicate guards node execution; it must not block.
type Predicate[T any] func(ec *Context[T]) bool

// CtxPredicate is the blocking predicate form; it may perform I/O and must
// honour cancellation via the embedded context. When both forms are set on a
// node the blocking form takes precedence.
type CtxPredicate[T any] func(ec *Context[T]) (bool, error)

// Context carries the subject value, the shared read-only options bag, the
// sibling-visible state store, the cancellation signal (via the embedded
// context.Context) and a handle to the result being assembled. One Context
// exists per subject-type boundary: a transition constructs a new
// Context[Destination] for its child, linked to but distinct from the parent
// Context[Source]. Within a boundary the same instance is threaded by
// reference through the entire sub-tree.
type Context[T any] struct {
	context.Context
	id      string
	subject *cell[T]
	options *Options
	state   *State
	events  *event.Service
	result  *Result
}

// cell holds the replaceable subject. A single mutable cell makes a
// replacement visible to every node still referencing the owning context.
type cell[T any] struct {
	mu    sync.RWMutex
	value T
}

// ContextOption customises a new Context.
type ContextOption[T any] func(c *Context[T])

// WithOptions attaches the shared options bag.
func WithOptions[T any](options *Options) ContextOption[T] {
	return func(c *Context[T]) { c.options = options }
}

// WithState attaches an existing state store instead of a fresh one.
func WithState[T any](state *State) ContextOption[T] {
	return func(c *Context[T]) { c.state = state }
}

// WithEvents attaches the event service nodes publish lifecycle events to.
func WithEvents[T any](events *event.Service) ContextOption[T] {
	return func(c *Context[T]) { c.events = events }
}

// WithID sets the run identifier; when absent a new one is generated.
func WithID[T any](id string) ContextOption[T] {
	return func(c *Context[T]) { c.id = id }
}

// NewContext creates an execution context for one subject-type boundary.
func NewContext[T any](ctx context.Context, subject T, options ...ContextOption[T]) *Context[T] {
	if ctx == nil {
		ctx = context.Background()
	}
	ret := &Context[T]{
		Context: ctx,
		subject: &cell[T]{value: subject},
	}
	for _, option := range options {
		option(ret)
	}
	if ret.id == "" {
		ret.id = idgen.New()
	}
	if ret.options == nil {
		ret.options = NewOptions(nil)
	}
	if ret.state == nil {
		ret.state = NewState()
	}
	if ret.result == nil {
		ret.result = NewResult("")
	}
	return ret
}

// ID returns the run identifier shared by every context of a single run.
func (c *Context[T]) ID() string { return c.id }

// Subject returns the current subject value.
func (c *Context[T]) Subject() T {
	c.subject.mu.RLock()
	defer c.subject.mu.RUnlock()
	return c.subject.value
}

// SetSubject atomically replaces the subject; the replacement is visible to
// every node still holding this context.
func (c *Context[T]) SetSubject(value T) {
	c.subject.mu.Lock()
	c.subject.value = value
	c.subject.mu.Unlock()
}

// Options returns the shared read-only options bag; never nil.
func (c *Context[T]) Options() *Options { return c.options }

// State returns the sibling-visible state store; never nil.
func (c *Context[T]) State() *State { return c.state }

// Events returns the attached event service, or nil.
func (c *Context[T]) Events() *event.Service { return c.events }

// Result returns the result this boundary's execution contributes to.
func (c *Context[T]) Result() *Result { return c.result }

// BindResult records the executed boundary root's result on the context.
func (c *Context[T]) BindResult(result *Result) {
	if result != nil {
		c.result = result
	}
}
