package node

import (
	"sync"

	"github.com/viant/nodly/runtime/execution"
)

// Group executes its children concurrently and combines their outcomes.
// Results are reported in declaration order regardless of completion order.
type Group[T any] struct {
	Multi[T]
	workers int
}

// NewGroup creates a concurrent composite. A workers value of zero or less
// runs every child on its own goroutine.
func NewGroup[T any](name string, options ...Option[T]) *Group[T] {
	return &Group[T]{Multi: NewMulti(name, options...)}
}

// SetWorkers caps the number of children executing at once.
func (g *Group[T]) SetWorkers(workers int) {
	g.workers = workers
}

// Execute fans the children out over a bounded worker pool. A child failure
// never stops its siblings; every child runs to its own outcome.
func (g *Group[T]) Execute(ec *execution.Context[T]) *execution.Result {
	return g.run(ec, func(res *execution.Result) (execution.Status, error) {
		results := g.executeChildren(ec)
		res.Append(results...)
		return g.combine(results), nil
	})
}

func (g *Group[T]) executeChildren(ec *execution.Context[T]) []*execution.Result {
	results := make([]*execution.Result, len(g.children))
	workers := g.workers
	if workers <= 0 || workers > len(g.children) {
		workers = len(g.children)
	}
	if workers <= 1 {
		for i, child := range g.children {
			results[i] = child.Execute(ec)
		}
		return results
	}

	indexes := make(chan int, len(g.children))
	for i := range g.children {
		indexes <- i
	}
	close(indexes)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indexes {
				results[i] = g.children[i].Execute(ec)
			}
		}()
	}
	wg.Wait()
	return results
}
