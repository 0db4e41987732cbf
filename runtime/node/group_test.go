package node

import (
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/nodly/runtime/execution"
)

func TestGroup_Combine(t *testing.T) {
	succeed := func(ec *execution.Context[*invoice]) error { return nil }
	fail := func(ec *execution.Context[*invoice]) error { return errors.New("boom") }

	testCases := []struct {
		description  string
		performs     []func(ec *execution.Context[*invoice]) error
		allowPartial bool
		expect       execution.Status
	}{
		{
			description:  "all children succeed",
			performs:     []func(ec *execution.Context[*invoice]) error{succeed, succeed},
			allowPartial: true,
			expect:       execution.StatusSucceeded,
		},
		{
			description:  "all children fail",
			performs:     []func(ec *execution.Context[*invoice]) error{fail, fail},
			allowPartial: true,
			expect:       execution.StatusGroupFailedAllChildNodes,
		},
		{
			description:  "mixed outcome with partial success allowed",
			performs:     []func(ec *execution.Context[*invoice]) error{succeed, fail},
			allowPartial: true,
			expect:       execution.StatusGroupSucceededWithErrors,
		},
		{
			description:  "mixed outcome with partial success refused",
			performs:     []func(ec *execution.Context[*invoice]) error{succeed, fail},
			allowPartial: false,
			expect:       execution.StatusGroupFailed,
		},
		{
			description:  "no children",
			performs:     nil,
			allowPartial: true,
			expect:       execution.StatusSucceeded,
		},
	}
	for _, testCase := range testCases {
		group := NewGroup[*invoice]("fanout")
		group.SetCompletion(Completion{AllowPartial: testCase.allowPartial})
		for i, perform := range testCase.performs {
			group.Add(NewAction(fmt.Sprintf("child-%d", i), perform))
		}
		result := group.Execute(newTestContext(t, &invoice{}))
		assert.Equal(t, testCase.expect, result.Status, testCase.description)
	}
}

func TestGroup_SiblingsOutliveFailure(t *testing.T) {
	var executed int32
	group := NewGroup[*invoice]("fanout")
	group.Add(
		NewAction("a", func(ec *execution.Context[*invoice]) error {
			atomic.AddInt32(&executed, 1)
			return errors.New("a failed")
		}),
		NewAction("b", func(ec *execution.Context[*invoice]) error {
			atomic.AddInt32(&executed, 1)
			return nil
		}),
		NewAction("c", func(ec *execution.Context[*invoice]) error {
			atomic.AddInt32(&executed, 1)
			return nil
		}),
	)
	result := group.Execute(newTestContext(t, &invoice{}))
	assert.Equal(t, int32(3), atomic.LoadInt32(&executed), "a failed sibling never stops the others")
	assert.Equal(t, execution.StatusGroupSucceededWithErrors, result.Status)
	assert.Len(t, result.FailErrors(), 1)
}

func TestGroup_DeclarationOrderPreserved(t *testing.T) {
	group := NewGroup[*invoice]("fanout")
	delays := []time.Duration{30 * time.Millisecond, 0, 15 * time.Millisecond}
	for i, delay := range delays {
		delay := delay
		group.Add(NewAction(fmt.Sprintf("child-%d", i), func(ec *execution.Context[*invoice]) error {
			time.Sleep(delay)
			return nil
		}))
	}
	result := group.Execute(newTestContext(t, &invoice{}))
	if assert.Len(t, result.Children, 3) {
		for i, child := range result.Children {
			assert.Equal(t, fmt.Sprintf("child-%d", i), child.Name, "completion order must not leak into results")
		}
	}
}

func TestGroup_WorkerCap(t *testing.T) {
	var running, peak int32
	group := NewGroup[*invoice]("fanout")
	group.SetWorkers(2)
	for i := 0; i < 6; i++ {
		group.Add(NewAction(fmt.Sprintf("child-%d", i), func(ec *execution.Context[*invoice]) error {
			now := atomic.AddInt32(&running, 1)
			for {
				current := atomic.LoadInt32(&peak)
				if now <= current || atomic.CompareAndSwapInt32(&peak, current, now) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt32(&running, -1)
			return nil
		}))
	}
	result := group.Execute(newTestContext(t, &invoice{}))
	assert.Equal(t, execution.StatusSucceeded, result.Status)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
}

func TestGroup_SharedStateAcrossChildren(t *testing.T) {
	group := NewGroup[*invoice]("fanout")
	for i := 0; i < 4; i++ {
		key := fmt.Sprintf("shard.%d", i)
		group.Add(NewAction(fmt.Sprintf("child-%d", i), func(ec *execution.Context[*invoice]) error {
			ec.State().Set(key, true)
			return nil
		}))
	}
	ec := newTestContext(t, &invoice{})
	group.Execute(ec)
	for i := 0; i < 4; i++ {
		value, ok := ec.State().Lookup(fmt.Sprintf("shard.%d", i))
		assert.True(t, ok)
		assert.Equal(t, true, value)
	}
}

func TestGroup_ResetRecursesChildren(t *testing.T) {
	child := NewAction("a", func(ec *execution.Context[*invoice]) error { return nil })
	group := NewGroup[*invoice]("fanout")
	group.Add(child)

	group.Execute(newTestContext(t, &invoice{}))
	assert.Equal(t, execution.StatusSucceeded, child.Status())

	group.Reset()
	assert.Equal(t, execution.StatusNotRun, group.Status())
	assert.Equal(t, execution.StatusNotRun, child.Status())
}
