package extension

import (
	"reflect"
	"sync"

	"github.com/viant/nodly/runtime/node"
	"github.com/viant/x"
)

// Constructor produces a fresh node instance for every flow build so that no
// two built trees share execution status.
type Constructor[T any] func() node.Node[T]

type nodeKey struct {
	kind string
	name string
}

// Nodes is the registry the flow service resolves components against. Nodes
// register under a kind plus an optional name; a component matches only its
// exact (kind, name) pair, a named registration is never a fallback for an
// unnamed lookup or vice versa.
type Nodes[T any] struct {
	types *Types
	mux   sync.RWMutex
	ctors map[nodeKey]Constructor[T]
}

// Types returns the associated Go type registry.
func (n *Nodes[T]) Types() *Types {
	return n.types
}

// Register adds a node constructor under (kind, name). The constructor's
// concrete Go type is also recorded in the type registry for introspection.
func (n *Nodes[T]) Register(kind, name string, ctor Constructor[T]) {
	n.mux.Lock()
	defer n.mux.Unlock()
	n.ctors[nodeKey{kind: kind, name: name}] = ctor
	if instance := ctor(); instance != nil {
		typeName := kind
		if name != "" {
			typeName = kind + ":" + name
		}
		n.types.Register(x.NewType(reflect.TypeOf(instance), x.WithName(typeName)))
	}
}

// Lookup returns the constructor registered under the exact (kind, name)
// pair.
func (n *Nodes[T]) Lookup(kind, name string) (Constructor[T], bool) {
	n.mux.RLock()
	defer n.mux.RUnlock()
	ctor, ok := n.ctors[nodeKey{kind: kind, name: name}]
	return ctor, ok
}

// Kinds returns every registered kind once.
func (n *Nodes[T]) Kinds() []string {
	n.mux.RLock()
	defer n.mux.RUnlock()
	seen := map[string]bool{}
	var kinds []string
	for key := range n.ctors {
		if !seen[key.kind] {
			seen[key.kind] = true
			kinds = append(kinds, key.kind)
		}
	}
	return kinds
}

// NewNodes creates a node registry, optionally pre-seeding the type registry.
func NewNodes[T any](goTypes ...*x.Type) *Nodes[T] {
	ret := &Nodes[T]{
		types: NewTypes(),
		ctors: make(map[nodeKey]Constructor[T]),
	}
	for _, t := range goTypes {
		if t != nil {
			ret.types.Register(t)
		}
	}
	return ret
}
