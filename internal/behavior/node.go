package behavior

// Node is a resumable unit of tree-structured work, polled once per tick.
//
// Implementations are not safe for concurrent use.
type Node interface {
	// Update runs one tick. The first call initializes the node.
	// Calling Update on a stopped node panics with a *StateError.
	Update() Status

	// Cancel aborts a node that has not stopped, cancelling any live child
	// first. Calling Cancel on a stopped node panics with a *StateError.
	Cancel()

	// Stopped reports whether the node returned a terminal status or was
	// cancelled.
	Stopped() bool

	// State returns the lifecycle state.
	State() State

	// Status returns the status of the most recent Update, or zero if Update
	// has never been called.
	Status() Status
}

// Behavior supplies the per-type logic wrapped by New.
type Behavior interface {
	// Init runs once, at the start of the first Update.
	Init()
	// OnUpdate runs once per Update and returns the tick's status.
	OnUpdate() Status
	// OnCancel cleans up when the node is cancelled before stopping.
	OnCancel()
}

// Factory builds a fresh node, ready for its first Update.
type Factory func() Node

// Clock returns the current time in caller-defined units (seconds are
// conventional). It must be monotonic non-decreasing.
type Clock func() float64

// New wraps b in the standard node lifecycle.
func New(b Behavior) Node {
	mustNotBeNil(b != nil, "New", "behavior")
	return &node{behavior: b}
}

type node struct {
	behavior  Behavior
	state     State
	status    Status
	cancelled bool
}

func (n *node) Update() Status {
	switch n.state {
	case Stopped:
		panic(n.stateError("update"))
	case NotStarted:
		n.state = Started
		n.behavior.Init()
	}
	n.status = n.behavior.OnUpdate()
	if n.status.Terminal() {
		n.state = Stopped
	}
	return n.status
}

func (n *node) Cancel() {
	if n.state == Stopped {
		panic(n.stateError("cancel"))
	}
	// marked before OnCancel so a re-entrant Cancel fails fast
	n.state = Stopped
	n.cancelled = true
	n.behavior.OnCancel()
}

func (n *node) Stopped() bool { return n.state == Stopped }

func (n *node) State() State { return n.state }

func (n *node) Status() Status { return n.status }

func (n *node) stateError(op string) *StateError {
	return &StateError{Op: op, Status: n.status, Cancelled: n.cancelled}
}

// cancelIfRunning cancels n unless it is nil or already stopped.
func cancelIfRunning(n Node) {
	if n != nil && !n.Stopped() {
		n.Cancel()
	}
}
