package node

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/nodly/runtime/execution"
)

func TestPipeline_StateFlowsBetweenSteps(t *testing.T) {
	pipeline := NewPipeline[*invoice]("settle")
	pipeline.Add(
		NewAction("reserve", func(ec *execution.Context[*invoice]) error {
			ec.State().Set("reservation", "r-42")
			return nil
		}),
		NewAction("charge", func(ec *execution.Context[*invoice]) error {
			reservation := ec.State().Get("reservation")
			if reservation == nil {
				return errors.New("missing reservation")
			}
			ec.Subject().Paid = true
			return nil
		}),
	)

	ec := newTestContext(t, &invoice{ID: "1", Total: 10})
	result := pipeline.Execute(ec)
	assert.Equal(t, execution.StatusSucceeded, result.Status)
	assert.True(t, ec.Subject().Paid)
	if assert.Len(t, result.Children, 2) {
		assert.Equal(t, "reserve", result.Children[0].Name)
		assert.Equal(t, "charge", result.Children[1].Name)
	}
}

func TestPipeline_ShortCircuit(t *testing.T) {
	chargeErr := errors.New("card declined")
	notified := false
	pipeline := NewPipeline[*invoice]("settle")
	pipeline.Add(
		NewAction("reserve", func(ec *execution.Context[*invoice]) error { return nil }),
		NewAction("charge", func(ec *execution.Context[*invoice]) error { return chargeErr }),
		NewAction("notify", func(ec *execution.Context[*invoice]) error {
			notified = true
			return nil
		}),
	)

	result := pipeline.Execute(newTestContext(t, &invoice{}))
	assert.Equal(t, execution.StatusGroupFailed, result.Status)
	assert.False(t, notified, "steps after a failure must not run")
	if assert.Len(t, result.Children, 3) {
		assert.Equal(t, execution.StatusSucceeded, result.Children[0].Status)
		assert.Equal(t, execution.StatusFailed, result.Children[1].Status)
		assert.Equal(t, execution.StatusNotRun, result.Children[2].Status)
	}
	assert.Equal(t, []error{chargeErr}, result.FailErrors())
}

func TestPipeline_ResetAllowsRerun(t *testing.T) {
	attempts := 0
	pipeline := NewPipeline[*invoice]("settle")
	pipeline.Add(NewAction("charge", func(ec *execution.Context[*invoice]) error {
		attempts++
		if attempts == 1 {
			return errors.New("transient")
		}
		return nil
	}))

	ec := newTestContext(t, &invoice{})
	first := pipeline.Execute(ec)
	assert.Equal(t, execution.StatusGroupFailed, first.Status)

	// Without Reset the cached failed result comes back untouched.
	assert.Same(t, first, pipeline.Execute(ec))
	assert.Equal(t, 1, attempts)

	pipeline.Reset()
	assert.Equal(t, execution.StatusNotRun, pipeline.Status())
	second := pipeline.Execute(ec)
	assert.Equal(t, execution.StatusSucceeded, second.Status)
	assert.Equal(t, 2, attempts)
}

func TestPipeline_SkippedStepIsNeutral(t *testing.T) {
	pipeline := NewPipeline[*invoice]("settle")
	pipeline.Add(
		NewAction("reserve", func(ec *execution.Context[*invoice]) error { return nil }),
		NewAction("discount", func(ec *execution.Context[*invoice]) error { return nil },
			WithPredicate(func(ec *execution.Context[*invoice]) bool { return false })),
		NewAction("charge", func(ec *execution.Context[*invoice]) error { return nil }),
	)

	result := pipeline.Execute(newTestContext(t, &invoice{}))
	assert.Equal(t, execution.StatusSucceeded, result.Status, "NotRun steps count neither as success nor failure")
	assert.Equal(t, execution.StatusNotRun, result.Children[1].Status)
}

func TestPipeline_Empty(t *testing.T) {
	pipeline := NewPipeline[*invoice]("settle")
	result := pipeline.Execute(newTestContext(t, &invoice{}))
	assert.Equal(t, execution.StatusSucceeded, result.Status)
}
