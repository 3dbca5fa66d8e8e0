package behavior

// NewSequencer returns a composite that runs each task in order, building each
// child only once its turn comes.
//
// A child's Success advances the sequence: the next child is built on that
// same tick but not updated until the next one, so the sequencer reports
// Running. The sequencer succeeds when the last child succeeds, and fails as
// soon as any child fails, without building the remaining children.
//
// At least one task is required, and none may be nil.
func NewSequencer(tasks ...Factory) (Node, error) {
	if len(tasks) == 0 {
		return nil, invalidArgument("sequencer requires at least one task")
	}
	for i, task := range tasks {
		if task == nil {
			return nil, invalidArgument("sequencer task %d is nil", i)
		}
	}
	return New(&sequencer{tasks: append([]Factory(nil), tasks...)}), nil
}

// MustSequencer is like NewSequencer but panics on error. It suits factories
// with fixed task lists.
func MustSequencer(tasks ...Factory) Node {
	n, err := NewSequencer(tasks...)
	if err != nil {
		panic(err)
	}
	return n
}

type sequencer struct {
	tasks   []Factory
	index   int
	current Node
}

func (s *sequencer) Init() {
	s.index = 0
	s.current = s.tasks[0]()
}

func (s *sequencer) OnUpdate() Status {
	switch s.current.Update() {
	case Success:
		s.index++
		if s.index >= len(s.tasks) {
			return Success
		}
		s.current = s.tasks[s.index]()
		return Running
	case Failure:
		return Failure
	default:
		return Running
	}
}

func (s *sequencer) OnCancel() {
	cancelIfRunning(s.current)
}
