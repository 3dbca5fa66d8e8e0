package behavior

// Conditional returns a two-way branch. The predicate picks left when true and
// right when false, and is evaluated again on every tick, including the first.
//
// When the predicate changes, the live child is cancelled and a new child is
// built from the other factory. Switching branches always starts over; it
// never resumes an earlier child. The active child's status is returned as is.
func Conditional(condition func() bool, left, right Factory) Node {
	mustNotBeNil(condition != nil, "Conditional", "condition")
	mustNotBeNil(left != nil, "Conditional", "left")
	mustNotBeNil(right != nil, "Conditional", "right")
	return New(&conditional{condition: condition, left: left, right: right})
}

type conditional struct {
	condition   func() bool
	left, right Factory
	current     Node
	met         bool
}

func (c *conditional) Init() {
	c.met = c.condition()
	c.current = c.branch(c.met)
}

func (c *conditional) OnUpdate() Status {
	met := c.condition()
	if met != c.met {
		cancelIfRunning(c.current)
		c.current = c.branch(met)
	}
	c.met = met
	return c.current.Update()
}

func (c *conditional) OnCancel() {
	cancelIfRunning(c.current)
}

func (c *conditional) branch(met bool) Node {
	if met {
		return c.left()
	}
	return c.right()
}
