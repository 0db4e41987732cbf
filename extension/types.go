package extension

import (
	"github.com/viant/x"
)

// Types registers the Go types behind custom node kinds so that tooling can
// introspect and marshal them by name.
type Types struct {
	x.Registry
}

// Register adds a data type to the registry.
func (t *Types) Register(dataType *x.Type) {
	if dataType == nil {
		return
	}
	t.Registry.Register(dataType)
}

// Lookup returns a data type from the registry, or nil when absent.
func (t *Types) Lookup(name string) *x.Type {
	return t.Registry.Lookup(name)
}

// NewTypes creates a new type registry.
func NewTypes(options ...x.RegistryOption) *Types {
	return &Types{Registry: *x.NewRegistry(options...)}
}
