package flow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/nodly/extension"
	"github.com/viant/nodly/runtime/execution"
	"github.com/viant/nodly/runtime/node"
	"github.com/viant/nodly/service/dao/definition"
)

type order struct {
	ID      string
	Total   float64
	Charged bool
	Emailed bool
}

func newTestService(t *testing.T) *Service[*order] {
	t.Helper()
	nodes := extension.NewNodes[*order]()
	nodes.Register("billing", "", func() node.Node[*order] {
		return node.NewAction("billing", func(ec *execution.Context[*order]) error {
			ec.Subject().Charged = true
			return nil
		})
	})
	nodes.Register("courier", "email", func() node.Node[*order] {
		return node.NewAction("email", func(ec *execution.Context[*order]) error {
			ec.Subject().Emailed = true
			return nil
		})
	})

	predicates := extension.NewPredicates[*order]()
	predicates.Register("hasTotal", func(ec *execution.Context[*order]) bool {
		return ec.Subject().Total > 0
	})

	return New(
		WithNodes[*order](nodes),
		WithPredicates[*order](predicates),
		WithDefinitions[*order](definition.New()),
	)
}

func mustRegister(t *testing.T, service *Service[*order], encoded string) {
	t.Helper()
	_, err := service.Definitions().DecodeYAML([]byte(encoded))
	assert.Nil(t, err)
}

func TestService_Build(t *testing.T) {
	service := newTestService(t)
	mustRegister(t, service, `
name: checkout
root:
  name: main
  type: pipeline
  nodes:
    - name: charge
      type: billing
    - name: email
      type: courier
`)

	built, err := service.Build(context.Background(), "checkout")
	assert.Nil(t, err)
	assert.Equal(t, "main", built.Name())

	subject := &order{ID: "1", Total: 10}
	result := built.Execute(execution.NewContext(context.Background(), subject))
	assert.Equal(t, execution.StatusSucceeded, result.Status)
	assert.True(t, subject.Charged)
	assert.True(t, subject.Emailed)
	if assert.Len(t, result.Children, 2) {
		assert.Equal(t, "charge", result.Children[0].Name, "component names override constructor names")
		assert.Equal(t, "email", result.Children[1].Name)
	}
}

func TestService_Build_FreshInstancesPerBuild(t *testing.T) {
	service := newTestService(t)
	mustRegister(t, service, `
name: checkout
root:
  name: main
  type: pipeline
  nodes:
    - name: charge
      type: billing
`)
	first, err := service.Build(context.Background(), "checkout")
	assert.Nil(t, err)
	second, err := service.Build(context.Background(), "checkout")
	assert.Nil(t, err)
	assert.NotSame(t, first, second)

	first.Execute(execution.NewContext(context.Background(), &order{}))
	assert.Equal(t, execution.StatusSucceeded, first.Status())
	assert.Equal(t, execution.StatusNotRun, second.Status(), "built trees never share execution status")
}

func TestService_Build_FlowReference(t *testing.T) {
	service := newTestService(t)
	mustRegister(t, service, `
name: notify
root:
  name: email
  type: courier
`)
	mustRegister(t, service, `
name: checkout
root:
  name: main
  type: pipeline
  nodes:
    - name: charge
      type: billing
    - flow: notify
`)

	built, err := service.Build(context.Background(), "checkout")
	assert.Nil(t, err)

	subject := &order{}
	built.Execute(execution.NewContext(context.Background(), subject))
	assert.True(t, subject.Emailed, "the referenced flow tree is spliced in place")
}

func TestService_Build_PredicateInheritance(t *testing.T) {
	service := newTestService(t)
	mustRegister(t, service, `
name: checkout
root:
  name: main
  type: pipeline
  when: hasTotal
  nodes:
    - name: charge
      type: billing
`)
	built, err := service.Build(context.Background(), "checkout")
	assert.Nil(t, err)

	subject := &order{Total: 0}
	result := built.Execute(execution.NewContext(context.Background(), subject))
	assert.Equal(t, execution.StatusNotRun, result.Status)
	assert.False(t, subject.Charged)

	built.Reset()
	subject = &order{Total: 10}
	result = built.Execute(execution.NewContext(context.Background(), subject))
	assert.Equal(t, execution.StatusSucceeded, result.Status)
	assert.True(t, subject.Charged)
}

func TestService_Build_GroupConfiguration(t *testing.T) {
	service := newTestService(t)
	mustRegister(t, service, `
name: fanout
root:
  name: main
  type: group
  workers: 2
  allowPartial: false
  nodes:
    - name: charge
      type: billing
    - name: email
      type: courier
`)
	built, err := service.Build(context.Background(), "fanout")
	assert.Nil(t, err)
	group, ok := built.(*node.Group[*order])
	if assert.True(t, ok) {
		assert.False(t, group.Completion().AllowPartial)
		assert.Len(t, group.Children(), 2)
	}
}

func TestService_Build_Errors(t *testing.T) {
	service := newTestService(t)
	mustRegister(t, service, `
name: loop-a
root:
  name: main
  type: pipeline
  nodes:
    - flow: loop-b
`)
	mustRegister(t, service, `
name: loop-b
root:
  name: main
  type: pipeline
  nodes:
    - flow: loop-a
`)
	mustRegister(t, service, `
name: unknown-kind
root:
  name: main
  type: pipeline
  nodes:
    - name: teleport
      type: transporter
`)
	mustRegister(t, service, `
name: unknown-predicate
root:
  name: main
  type: pipeline
  nodes:
    - name: charge
      type: billing
      when: neverRegistered
`)
	mustRegister(t, service, `
name: leaf-with-children
root:
  name: main
  type: billing
  nodes:
    - name: charge
      type: billing
`)

	testCases := []struct {
		description string
		flow        string
		expect      error
	}{
		{description: "missing flow", flow: "absent", expect: ErrFlowNotFound},
		{description: "cyclic flow reference", flow: "loop-a", expect: ErrCyclicFlow},
		{description: "missing node kind", flow: "unknown-kind", expect: ErrNodeNotFound},
		{description: "missing predicate", flow: "unknown-predicate", expect: ErrPredicateNotFound},
		{description: "children under a leaf", flow: "leaf-with-children", expect: ErrNotComposable},
	}
	for _, testCase := range testCases {
		_, err := service.Build(context.Background(), testCase.flow)
		assert.True(t, errors.Is(err, testCase.expect), "%v: %v", testCase.description, err)
	}
}
