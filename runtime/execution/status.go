package execution

// Status represents the execution state of a node.
type Status string

const (
	// StatusNotRun is the initial status; it is also the terminal outcome of a
	// node whose predicate evaluated to false or that was blocked by policy.
	StatusNotRun Status = "notRun"

	StatusSucceeded        Status = "succeeded"
	StatusFailed           Status = "failed"
	StatusSingleNodeFailed Status = "singleNodeFailed"

	StatusGroupSucceededWithErrors Status = "groupSucceededWithErrors"
	StatusGroupFailed              Status = "groupFailed"
	StatusGroupFailedAllChildNodes Status = "groupFailedAllChildNodes"
)

// Success reports whether the status counts as a successful outcome.
func (s Status) Success() bool {
	return s == StatusSucceeded || s == StatusGroupSucceededWithErrors
}

// Failure reports whether the status counts as a failed outcome.
func (s Status) Failure() bool {
	switch s {
	case StatusFailed, StatusSingleNodeFailed, StatusGroupFailed, StatusGroupFailedAllChildNodes:
		return true
	}
	return false
}

func (s Status) String() string {
	if s == "" {
		return string(StatusNotRun)
	}
	return string(s)
}
