package event

import "time"

// Kind identifies the lifecycle stage an event describes.
type Kind string

const (
	KindFlowStarted  Kind = "flow.started"
	KindFlowFinished Kind = "flow.finished"
	KindNodeStarted  Kind = "node.started"
	KindNodeFinished Kind = "node.finished"
)

// Event describes a single node or flow lifecycle change within a run.
type Event struct {
	ID        string    `json:"id"`
	RunID     string    `json:"runID"`
	Flow      string    `json:"flow,omitempty"`
	Node      string    `json:"node,omitempty"`
	Kind      Kind      `json:"kind"`
	Status    string    `json:"status,omitempty"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
