package graph

// Component is one declarative entry of a flow tree. Exactly one of the
// following shapes applies:
//
//   - Flow set: the component is resolved by loading the named flow
//     definition and splicing its tree in place.
//   - Nodes set: the component is a composite (group or pipeline per Type)
//     owning the listed children.
//   - otherwise: the component names a registered leaf node (Type, Name).
type Component struct {
	// Name identifies the node within its flow; registry lookups use it
	// together with Type.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Type selects the node kind: the builtin "group" and "pipeline"
	// composites, or a registered custom kind.
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	// Flow references another flow definition by name.
	Flow string `json:"flow,omitempty" yaml:"flow,omitempty"`

	// When references a registered predicate by name; a component without one
	// inherits the effective predicate of its parent.
	When string `json:"when,omitempty" yaml:"when,omitempty"`

	// AllowPartial overrides the composite completion policy.
	AllowPartial *bool `json:"allowPartial,omitempty" yaml:"allowPartial,omitempty"`

	// Workers caps concurrent children of a group.
	Workers int `json:"workers,omitempty" yaml:"workers,omitempty"`

	Nodes []*Component `json:"nodes,omitempty" yaml:"nodes,omitempty"`
}

// IsFlow reports whether the component is a reference to another flow.
func (c *Component) IsFlow() bool {
	return c != nil && c.Flow != ""
}

// IsComposite reports whether the component declares children of its own.
func (c *Component) IsComposite() bool {
	return c != nil && len(c.Nodes) > 0
}
