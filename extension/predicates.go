package extension

import (
	"sync"

	"github.com/viant/nodly/runtime/execution"
)

// PredicateEntry holds one registered predicate in whichever form it was
// registered; at most one form is set per name.
type PredicateEntry[T any] struct {
	Plain execution.Predicate[T]
	Ctx   execution.CtxPredicate[T]
}

// Apply installs the registered form on the supplied node.
func (e PredicateEntry[T]) Apply(target interface {
	SetPredicate(execution.Predicate[T])
	SetCtxPredicate(execution.CtxPredicate[T])
}) {
	if e.Ctx != nil {
		target.SetCtxPredicate(e.Ctx)
		return
	}
	if e.Plain != nil {
		target.SetPredicate(e.Plain)
	}
}

// Predicates is the named predicate registry flow definitions reference via
// their "when" attribute.
type Predicates[T any] struct {
	mux     sync.RWMutex
	entries map[string]PredicateEntry[T]
}

// Register adds a non-blocking predicate under name.
func (p *Predicates[T]) Register(name string, predicate execution.Predicate[T]) {
	p.mux.Lock()
	defer p.mux.Unlock()
	p.entries[name] = PredicateEntry[T]{Plain: predicate}
}

// RegisterCtx adds a blocking predicate under name.
func (p *Predicates[T]) RegisterCtx(name string, predicate execution.CtxPredicate[T]) {
	p.mux.Lock()
	defer p.mux.Unlock()
	p.entries[name] = PredicateEntry[T]{Ctx: predicate}
}

// Lookup returns the predicate registered under name.
func (p *Predicates[T]) Lookup(name string) (PredicateEntry[T], bool) {
	p.mux.RLock()
	defer p.mux.RUnlock()
	entry, ok := p.entries[name]
	return entry, ok
}

// NewPredicates creates a predicate registry.
func NewPredicates[T any]() *Predicates[T] {
	return &Predicates[T]{entries: make(map[string]PredicateEntry[T])}
}
