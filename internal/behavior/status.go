package behavior

import (
	"fmt"
)

// Status is the result of a single Update.
type Status int

const (
	// Running means the node has not finished; call Update again next tick.
	Running Status = iota + 1
	// Success is a terminal status.
	Success
	// Failure is a terminal status. It is ordinary control-flow data, not an error.
	Failure
)

// Terminal reports whether s is Success or Failure.
func (s Status) Terminal() bool {
	return s == Success || s == Failure
}

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// State is the lifecycle state of a node.
type State int

const (
	// NotStarted nodes have never been updated.
	NotStarted State = iota
	// Started nodes have been updated at least once and have not stopped.
	Started
	// Stopped nodes returned a terminal status or were cancelled.
	Stopped
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case Started:
		return "started"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}
