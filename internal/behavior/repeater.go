package behavior

// Repeater returns a decorator that runs task forever. Each time a child
// finishes, whether it succeeds or fails, a fresh child is built on the next
// tick. The repeater itself always returns Running and stops only when
// cancelled.
func Repeater(task Factory) Node {
	mustNotBeNil(task != nil, "Repeater", "task")
	return New(&repeater{task: task})
}

type repeater struct {
	task    Factory
	current Node
}

// Init is a no-op: the first child is built by the first OnUpdate.
func (*repeater) Init() {}

func (r *repeater) OnUpdate() Status {
	if r.current == nil {
		r.current = r.task()
	}
	if r.current.Update() != Running {
		r.current = nil
	}
	return Running
}

func (r *repeater) OnCancel() {
	cancelIfRunning(r.current)
}
