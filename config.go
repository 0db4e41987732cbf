package nodly

import "fmt"

// Config is a serialisable representation of the engine configuration. It can
// be populated from JSON, YAML, environment variables, etc. The zero-value is
// useful; all nested fields inherit their package defaults.
type Config struct {
	Group  GroupConfig `json:"group" yaml:"group"`
	Events EventConfig `json:"events" yaml:"events"`
}

// GroupConfig controls concurrent composite execution.
type GroupConfig struct {
	// MaxWorkers caps group concurrency for components that do not set their
	// own workers attribute; zero keeps groups unbounded.
	MaxWorkers int `json:"maxWorkers" yaml:"maxWorkers"`
}

// EventConfig controls the default in-memory event queue.
type EventConfig struct {
	QueueBuffer int `json:"queueBuffer" yaml:"queueBuffer"`
}

// DefaultConfig returns a Config populated with the package defaults. Callers
// may modify the returned struct before passing it to New via WithConfig.
func DefaultConfig() *Config {
	return &Config{
		Events: EventConfig{QueueBuffer: 100},
	}
}

// Validate returns an error describing invalid settings, or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Group.MaxWorkers < 0 {
		return fmt.Errorf("group.maxWorkers must be >= 0")
	}
	if c.Events.QueueBuffer < 0 {
		return fmt.Errorf("events.queueBuffer must be >= 0")
	}
	return nil
}
