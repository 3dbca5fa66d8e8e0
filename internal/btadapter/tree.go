package btadapter

import (
	"fmt"
	"sync"

	"github.com/joeycumines/behaviorkit/internal/behavior"
	bt "github.com/joeycumines/go-behaviortree"
)

// Tree adapts a behavior subtree to go-behaviortree.
//
// A go-behaviortree Ticker ticks from its own goroutine, so Tree serializes
// Tick and Cancel. It does not make the subtree itself safe to share.
type Tree struct {
	task behavior.Factory

	mu        sync.Mutex
	current   behavior.Node
	instances int
}

// NewTree returns a Tree building instances from task.
func NewTree(task behavior.Factory) *Tree {
	if task == nil {
		panic(fmt.Errorf("%w: btadapter.NewTree: task must not be nil", behavior.ErrInvalidArgument))
	}
	return &Tree{task: task}
}

// Node returns the go-behaviortree node. It has no children of its own; the
// subtree lives behind the tick.
func (t *Tree) Node() bt.Node {
	return bt.New(t.Tick)
}

// Tick implements bt.Tick. It updates the live instance once, first building
// a new one if there is none or the previous one stopped.
func (t *Tree) Tick([]bt.Node) (bt.Status, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current == nil || t.current.Stopped() {
		t.current = t.task()
		t.instances++
	}
	return ToBT(t.current.Update())
}

// Cancel cancels the live instance, if any. The next Tick starts a new one.
func (t *Tree) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current != nil && !t.current.Stopped() {
		t.current.Cancel()
	}
}

// Instances returns how many instances have been built.
func (t *Tree) Instances() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.instances
}
