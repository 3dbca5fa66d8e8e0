package behavior

// Wait returns a leaf that runs until more than duration has elapsed since its
// first tick, then succeeds.
//
// The comparison is strict: the node stays Running while now-start <= duration.
// A zero duration therefore still takes at least one more tick, with the clock
// advanced, before it succeeds. A negative or NaN duration panics with an
// ErrInvalidArgument error.
func Wait(clock Clock, duration float64) Node {
	mustNotBeNil(clock != nil, "Wait", "clock")
	if !(duration >= 0) {
		panic(invalidArgument("Wait: duration must not be negative, got %v", duration))
	}
	return New(&wait{clock: clock, duration: duration})
}

type wait struct {
	clock    Clock
	duration float64
	start    float64
}

func (w *wait) Init() {
	w.start = w.clock()
}

func (w *wait) OnUpdate() Status {
	if w.clock()-w.start > w.duration {
		return Success
	}
	return Running
}

func (*wait) OnCancel() {}
