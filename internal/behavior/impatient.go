package behavior

// ImpatientOption configures ImpatientRepeater.
type ImpatientOption func(*impatientRepeater)

// FinishOnSuccess makes the repeater return Success as soon as a child
// succeeds, instead of restarting it.
func FinishOnSuccess() ImpatientOption {
	return func(r *impatientRepeater) { r.finishOnSuccess = true }
}

// CancelOnRestart cancels a child that is still running when maxRestart
// expires. Without it, the timed-out child is dropped without a Cancel call,
// so its OnCancel cleanup never runs.
func CancelOnRestart() ImpatientOption {
	return func(r *impatientRepeater) { r.cancelOnRestart = true }
}

// ImpatientRepeater returns a decorator that restarts task whenever the child
// finishes, or when more than maxRestart has elapsed since the child was last
// (re)started. It returns Running unless FinishOnSuccess is set and a child
// succeeds.
//
// The first child is built, and the restart timer started, on the first tick.
func ImpatientRepeater(task Factory, clock Clock, maxRestart float64, opts ...ImpatientOption) Node {
	mustNotBeNil(task != nil, "ImpatientRepeater", "task")
	mustNotBeNil(clock != nil, "ImpatientRepeater", "clock")
	r := &impatientRepeater{task: task, clock: clock, maxRestart: maxRestart}
	for _, opt := range opts {
		opt(r)
	}
	return New(r)
}

type impatientRepeater struct {
	task            Factory
	clock           Clock
	maxRestart      float64
	finishOnSuccess bool
	cancelOnRestart bool
	current         Node
	lastStart       float64
}

func (r *impatientRepeater) Init() {
	r.restart()
}

func (r *impatientRepeater) OnUpdate() Status {
	status := r.current.Update()
	if r.finishOnSuccess && status == Success {
		return Success
	}
	if status != Running || r.clock()-r.lastStart > r.maxRestart {
		if r.cancelOnRestart {
			cancelIfRunning(r.current)
		}
		r.restart()
	}
	return Running
}

func (r *impatientRepeater) OnCancel() {
	cancelIfRunning(r.current)
}

func (r *impatientRepeater) restart() {
	r.current = r.task()
	r.lastStart = r.clock()
}
