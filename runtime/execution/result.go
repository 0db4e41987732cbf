package execution

import (
	"time"

	"github.com/viant/nodly/internal/clock"
)

// Result is the outcome tree mirroring an executed node tree. A composite
// node's Err is only ever its own failure (hook or predicate error); child
// failures stay on the child results and are gathered on demand so that no
// exception is ever counted twice.
type Result struct {
	Name       string    `json:"name,omitempty"`
	Status     Status    `json:"status"`
	Err        error     `json:"-"`
	Subject    any       `json:"subject,omitempty"`
	Children   []*Result `json:"children,omitempty"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt,omitempty"`

	// Linked holds the result tree of a differently-typed sub-flow executed
	// behind a transition. It is kept for inspection only: FailErrors does not
	// traverse it because the transition re-attaches the linked failures to
	// its own Err.
	Linked *Result `json:"linked,omitempty"`
}

// NewResult returns a fresh NotRun result for the named node.
func NewResult(name string) *Result {
	return &Result{
		Name:      name,
		Status:    StatusNotRun,
		StartedAt: clock.Now(),
	}
}

// Append adds child results in declaration order.
func (r *Result) Append(children ...*Result) {
	r.Children = append(r.Children, children...)
}

// Finish stamps the terminal status, error and subject snapshot.
func (r *Result) Finish(status Status, err error, subject any) *Result {
	r.Status = status
	r.Err = err
	r.Subject = subject
	r.FinishedAt = clock.Now()
	return r
}

// FailErrors gathers every exception present anywhere in the result subtree,
// depth-first, each exactly once. Aggregates are expanded into their original
// errors; linked transition subtrees are excluded (see Linked).
func (r *Result) FailErrors() []error {
	if r == nil {
		return nil
	}
	var errs []error
	if r.Err != nil {
		if multi, ok := r.Err.(*MultiError); ok {
			errs = append(errs, multi.Errors...)
		} else {
			errs = append(errs, r.Err)
		}
	}
	for _, child := range r.Children {
		errs = append(errs, child.FailErrors()...)
	}
	return errs
}

// AggregateError combines all gathered failures into a single error value, or
// nil when the subtree holds none.
func (r *Result) AggregateError() error {
	return NewMultiError(r.FailErrors()...)
}
