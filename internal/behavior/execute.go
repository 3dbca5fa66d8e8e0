package behavior

// Execute returns a leaf that calls action once, on its first tick, and
// succeeds. It never returns Running, and cancelling it does nothing.
func Execute(action func()) Node {
	mustNotBeNil(action != nil, "Execute", "action")
	return New(&execute{action: action})
}

type execute struct {
	action func()
}

func (*execute) Init() {}

func (x *execute) OnUpdate() Status {
	x.action()
	return Success
}

func (*execute) OnCancel() {}
