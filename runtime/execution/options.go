package execution

// Options is the shared, read-only options bag attached to a root context. It
// is set once at construction, never written afterwards, and the same instance
// is shared across every type boundary of a single run - transitions hand it
// to the destination context untouched.
type Options struct {
	values map[string]any
}

// NewOptions copies the supplied values into an immutable bag.
func NewOptions(values map[string]any) *Options {
	copied := make(map[string]any, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return &Options{values: copied}
}

// Value returns the option registered under key, or nil when absent.
func (o *Options) Value(key string) any {
	if o == nil {
		return nil
	}
	return o.values[key]
}

// Has reports whether key is present.
func (o *Options) Has(key string) bool {
	if o == nil {
		return false
	}
	_, ok := o.values[key]
	return ok
}
