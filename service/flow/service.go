// Package flow resolves declarative flow definitions into executable node
// trees using the node and predicate registries.
package flow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/viant/nodly/extension"
	"github.com/viant/nodly/model"
	"github.com/viant/nodly/model/graph"
	"github.com/viant/nodly/runtime/node"
	"github.com/viant/nodly/service/dao"
	"github.com/viant/nodly/service/dao/definition"
)

// Builtin composite kinds every definition may use without registration.
const (
	KindGroup    = "group"
	KindPipeline = "pipeline"
)

// Service builds executable trees from registered definitions. Every Build
// resolves constructors afresh so that no two built trees share node
// instances or execution status.
type Service[T any] struct {
	definitions    *definition.Service
	nodes          *extension.Nodes[T]
	predicates     *extension.Predicates[T]
	defaultWorkers int
}

// Option customises the flow service.
type Option[T any] func(s *Service[T])

// WithDefinitions sets the definition store.
func WithDefinitions[T any](definitions *definition.Service) Option[T] {
	return func(s *Service[T]) { s.definitions = definitions }
}

// WithNodes sets the node constructor registry.
func WithNodes[T any](nodes *extension.Nodes[T]) Option[T] {
	return func(s *Service[T]) { s.nodes = nodes }
}

// WithPredicates sets the named predicate registry.
func WithPredicates[T any](predicates *extension.Predicates[T]) Option[T] {
	return func(s *Service[T]) { s.predicates = predicates }
}

// WithDefaultWorkers caps group concurrency for components that do not set
// their own workers attribute; zero keeps groups unbounded.
func WithDefaultWorkers[T any](workers int) Option[T] {
	return func(s *Service[T]) { s.defaultWorkers = workers }
}

// New creates a flow service.
func New[T any](options ...Option[T]) *Service[T] {
	ret := &Service[T]{}
	for _, option := range options {
		option(ret)
	}
	if ret.definitions == nil {
		ret.definitions = definition.New()
	}
	if ret.nodes == nil {
		ret.nodes = extension.NewNodes[T]()
	}
	if ret.predicates == nil {
		ret.predicates = extension.NewPredicates[T]()
	}
	return ret
}

// Definitions returns the definition store.
func (s *Service[T]) Definitions() *definition.Service { return s.definitions }

// Nodes returns the node constructor registry.
func (s *Service[T]) Nodes() *extension.Nodes[T] { return s.nodes }

// Predicates returns the named predicate registry.
func (s *Service[T]) Predicates() *extension.Predicates[T] { return s.predicates }

// Build resolves the named flow definition into a fresh executable tree.
func (s *Service[T]) Build(ctx context.Context, name string) (node.Node[T], error) {
	return s.buildFlow(ctx, name, nil, nil)
}

// BuildDefinition resolves an unregistered definition into an executable
// tree; flow references inside it still resolve against the store.
func (s *Service[T]) BuildDefinition(ctx context.Context, flow *model.Flow) (node.Node[T], error) {
	if flow == nil {
		return nil, dao.ErrNilEntity
	}
	if issues := flow.Validate(); len(issues) > 0 {
		return nil, issues[0]
	}
	return s.buildComponent(ctx, flow.Root, nil, []string{flow.Name})
}

func (s *Service[T]) buildFlow(ctx context.Context, name string, inherited *extension.PredicateEntry[T], stack []string) (node.Node[T], error) {
	for _, frame := range stack {
		if frame == name {
			return nil, fmt.Errorf("%w: %v", ErrCyclicFlow, strings.Join(append(stack, name), " -> "))
		}
	}
	flow, err := s.definitions.Lookup(name)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrFlowNotFound, name)
		}
		return nil, err
	}
	return s.buildComponent(ctx, flow.Root, inherited, append(stack, name))
}

// buildComponent resolves one component. The effective predicate cascades: a
// component's own "when" wins, otherwise the parent's effective predicate is
// installed, so a subtree guarded at its root stays guarded when spliced into
// another flow.
func (s *Service[T]) buildComponent(ctx context.Context, c *graph.Component, inherited *extension.PredicateEntry[T], stack []string) (node.Node[T], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	effective := inherited
	if c.When != "" {
		entry, ok := s.predicates.Lookup(c.When)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrPredicateNotFound, c.When)
		}
		effective = &entry
	}

	if c.IsFlow() {
		return s.buildFlow(ctx, c.Flow, effective, stack)
	}

	built, err := s.instantiate(c, stack)
	if err != nil {
		return nil, err
	}
	if c.Name != "" {
		if renamer, ok := built.(interface{ SetName(string) }); ok {
			renamer.SetName(c.Name)
		}
	}
	if effective != nil && !built.HasPredicate() {
		effective.Apply(built)
	}
	if len(c.Nodes) > 0 {
		composer, ok := built.(node.Composer[T])
		if !ok {
			return nil, fmt.Errorf("%w: %v (%v)", ErrNotComposable, c.Name, c.Type)
		}
		for _, childComponent := range c.Nodes {
			child, err := s.buildComponent(ctx, childComponent, effective, stack)
			if err != nil {
				return nil, err
			}
			composer.Add(child)
		}
	}
	s.configure(c, built)
	return built, nil
}

// instantiate resolves the component kind: the builtin composites, then the
// registry under the exact (type, name) pair, then the kind's unnamed
// registration.
func (s *Service[T]) instantiate(c *graph.Component, stack []string) (node.Node[T], error) {
	switch strings.ToLower(c.Type) {
	case KindGroup:
		return node.NewGroup[T](c.Name), nil
	case KindPipeline:
		return node.NewPipeline[T](c.Name), nil
	}
	if ctor, ok := s.nodes.Lookup(c.Type, c.Name); ok {
		return ctor(), nil
	}
	if ctor, ok := s.nodes.Lookup(c.Type, ""); ok {
		return ctor(), nil
	}
	return nil, fmt.Errorf("%w: %v/%v in %v", ErrNodeNotFound, c.Type, c.Name, strings.Join(stack, " -> "))
}

func (s *Service[T]) configure(c *graph.Component, built node.Node[T]) {
	if c.AllowPartial != nil {
		if target, ok := built.(interface{ SetCompletion(node.Completion) }); ok {
			target.SetCompletion(node.Completion{AllowPartial: *c.AllowPartial})
		}
	}
	workers := c.Workers
	if workers <= 0 {
		workers = s.defaultWorkers
	}
	if workers > 0 {
		if target, ok := built.(interface{ SetWorkers(int) }); ok {
			target.SetWorkers(workers)
		}
	}
}
