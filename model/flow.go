package model

import (
	"fmt"

	"github.com/viant/nodly/model/graph"
)

// Source provides information about the origin of a flow definition.
type Source struct {
	URL string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Flow is a named, declarative node tree definition. It carries no behaviour
// of its own; the flow service resolves it against the node and predicate
// registries into an executable tree.
type Flow struct {
	// Source provides information about the origin of the flow
	Source *Source `json:"source,omitempty" yaml:"source,omitempty"`

	// Name is the unique identifier for the flow
	Name string `json:"name" yaml:"name"`

	// Description provides a human-readable description of the flow
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Version specifies the flow version
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	// Root defines the execution tree of the flow
	Root *graph.Component `json:"root,omitempty" yaml:"root,omitempty"`
}

// Validate performs a best-effort structural validation of the flow. The
// returned slice is empty when the flow is sound. It only verifies static
// properties; registry and flow references are checked at build time.
func (f *Flow) Validate() []error {
	var issues []error
	if f.Name == "" {
		issues = append(issues, fmt.Errorf("flow name is empty"))
	}
	if f.Root == nil {
		issues = append(issues, fmt.Errorf("root is nil"))
		return issues
	}
	var walk func(c *graph.Component, path string)
	walk = func(c *graph.Component, path string) {
		if c == nil {
			issues = append(issues, fmt.Errorf("%v: nil component", path))
			return
		}
		name := c.Name
		if name == "" {
			name = c.Flow
		}
		if path != "" {
			name = path + "/" + name
		}
		if c.IsFlow() && len(c.Nodes) > 0 {
			issues = append(issues, fmt.Errorf("%v: a flow reference cannot declare nodes of its own", name))
		}
		if !c.IsFlow() && c.Name == "" {
			issues = append(issues, fmt.Errorf("%v: component name is empty", path))
		}
		seen := map[string]bool{}
		for _, child := range c.Nodes {
			if child != nil && child.Name != "" {
				if seen[child.Name] {
					issues = append(issues, fmt.Errorf("%v: duplicate child name %v", name, child.Name))
				}
				seen[child.Name] = true
			}
			walk(child, name)
		}
	}
	walk(f.Root, "")
	return issues
}
