package behavior

// TimeLimit returns a decorator that passes its child's status through until
// more than limit has elapsed since the first tick. From then on it cancels
// the child, if still live, and fails, whatever the child would have returned.
func TimeLimit(task Factory, clock Clock, limit float64) Node {
	mustNotBeNil(task != nil, "TimeLimit", "task")
	mustNotBeNil(clock != nil, "TimeLimit", "clock")
	return New(&timeLimit{task: task, clock: clock, limit: limit})
}

type timeLimit struct {
	task  Factory
	clock Clock
	limit float64
	child Node
	start float64
}

func (t *timeLimit) Init() {
	t.child = t.task()
	t.start = t.clock()
}

func (t *timeLimit) OnUpdate() Status {
	if t.clock()-t.start > t.limit {
		cancelIfRunning(t.child)
		return Failure
	}
	return t.child.Update()
}

func (t *timeLimit) OnCancel() {
	cancelIfRunning(t.child)
}
