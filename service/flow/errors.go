package flow

import "errors"

// Resolution errors reported while turning a declarative definition into an
// executable node tree. All of them surface before execution starts; a build
// either yields a complete tree or one of these.
var (
	// ErrFlowNotFound is returned when a definition references a flow name
	// that is not registered.
	ErrFlowNotFound = errors.New("flow: not found")

	// ErrNodeNotFound is returned when a component references a node kind
	// with no registered constructor.
	ErrNodeNotFound = errors.New("flow: node not found")

	// ErrPredicateNotFound is returned when a component references an
	// unregistered predicate name.
	ErrPredicateNotFound = errors.New("flow: predicate not found")

	// ErrCyclicFlow is returned when flow references form a cycle.
	ErrCyclicFlow = errors.New("flow: cyclic reference")

	// ErrNotComposable is returned when a component declares children but
	// resolves to a node that cannot own any.
	ErrNotComposable = errors.New("flow: node is not composable")
)
