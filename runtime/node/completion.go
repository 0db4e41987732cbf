package node

// Completion controls how a multi-node combines child outcomes.
type Completion struct {
	// AllowPartial accepts a mix of succeeded and failed children as
	// GroupSucceededWithErrors; when false the same mix yields GroupFailed.
	AllowPartial bool
}

// DefaultCompletion returns the partial-success-tolerant default.
func DefaultCompletion() Completion {
	return Completion{AllowPartial: true}
}
