package node

import (
	"github.com/viant/nodly/runtime/execution"
)

// Pipeline executes its children sequentially in declaration order and stops
// at the first failed child; the remainder stays NotRun.
type Pipeline[T any] struct {
	Multi[T]
}

// NewPipeline creates a sequential, short-circuiting composite.
func NewPipeline[T any](name string, options ...Option[T]) *Pipeline[T] {
	return &Pipeline[T]{Multi: NewMulti(name, options...)}
}

// Execute runs children one after another. On a child failure remaining
// children are recorded as NotRun and the pipeline reports GroupFailed.
func (p *Pipeline[T]) Execute(ec *execution.Context[T]) *execution.Result {
	return p.run(ec, func(res *execution.Result) (execution.Status, error) {
		results := make([]*execution.Result, 0, len(p.children))
		shortCircuited := false
		for i, child := range p.children {
			r := child.Execute(ec)
			results = append(results, r)
			if r.Status.Failure() {
				shortCircuited = true
				for _, skipped := range p.children[i+1:] {
					results = append(results, execution.NewResult(skipped.Name()))
				}
				break
			}
		}
		res.Append(results...)
		if shortCircuited {
			return execution.StatusGroupFailed, nil
		}
		return p.combine(results), nil
	})
}
