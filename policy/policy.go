// Package policy provides a simple, optional execution gate that can be
// attached to a flow run via context. It is deliberately decoupled from the
// rest of the engine so that using it is entirely opt-in - runs that do not
// embed a Policy in their context keep the default "run everything" behaviour.

package policy

import (
	"context"
	"strings"
)

// Execution modes recognised by the engine.
const (
	ModeRun  = "run"  // execute every node (default)
	ModeDeny = "deny" // block every node
)

// Policy controls which nodes a run is allowed to execute.
//
//   - Mode controls the high-level behaviour (run / deny).
//   - AllowList and BlockList filter by node name regardless of Mode.
//
// A nil *Policy means "execute everything" and is therefore the zero-cost
// default. A node blocked by policy keeps its NotRun status, exactly as a
// node whose predicate evaluated to false.
type Policy struct {
	Mode      string
	AllowList []string // whitelist (empty => all)
	BlockList []string // blacklist
}

// Config is the declarative, serialisable representation of a Policy.
type Config struct {
	Mode      string   `json:"mode,omitempty" yaml:"mode,omitempty"`
	AllowList []string `json:"allow,omitempty" yaml:"allow,omitempty"`
	BlockList []string `json:"block,omitempty" yaml:"block,omitempty"`
}

// ToConfig converts a runtime Policy into a persistable Config.
func ToConfig(p *Policy) *Config {
	if p == nil {
		return nil
	}
	return &Config{
		Mode:      p.Mode,
		AllowList: append([]string(nil), p.AllowList...),
		BlockList: append([]string(nil), p.BlockList...),
	}
}

// FromConfig converts a stored Config back to a runtime Policy.
func FromConfig(c *Config) *Policy {
	if c == nil {
		return nil
	}
	return &Policy{
		Mode:      c.Mode,
		AllowList: append([]string(nil), c.AllowList...),
		BlockList: append([]string(nil), c.BlockList...),
	}
}

// IsAllowed evaluates Mode and AllowList / BlockList for the supplied node
// name. Both lists match by exact, case-insensitive comparison. BlockList has
// priority; an empty AllowList admits every node.
func (p *Policy) IsAllowed(node string) bool {
	if p == nil {
		return true
	}
	if p.Mode == ModeDeny {
		return false
	}
	normalized := strings.ToLower(node)
	for _, b := range p.BlockList {
		if normalized == strings.ToLower(b) {
			return false
		}
	}
	if len(p.AllowList) == 0 {
		return true
	}
	for _, a := range p.AllowList {
		if normalized == strings.ToLower(a) {
			return true
		}
	}
	return false
}

type ctxKeyT struct{}

var ctxKey ctxKeyT

// WithPolicy embeds policy in ctx.
func WithPolicy(ctx context.Context, p *Policy) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKey, p)
}

// FromContext extracts the policy attached to ctx, or nil.
func FromContext(ctx context.Context) *Policy {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(ctxKey).(*Policy); ok {
		return v
	}
	return nil
}
