package btadapter

import (
	"fmt"

	"github.com/joeycumines/behaviorkit/internal/behavior"
	bt "github.com/joeycumines/go-behaviortree"
)

// LeafNode is a behavior.Node backed by a go-behaviortree node.
type LeafNode struct {
	behavior.Node
	leaf *leaf
}

// Leaf wraps node as a behavior leaf. Each Update ticks node once. Cancelling
// the leaf only stops it; go-behaviortree nodes have no cancel hook, so any
// cleanup belongs in the wrapped tick.
func Leaf(node bt.Node) *LeafNode {
	if node == nil {
		panic(fmt.Errorf("%w: btadapter.Leaf: node must not be nil", behavior.ErrInvalidArgument))
	}
	l := &leaf{node: node}
	return &LeafNode{Node: behavior.New(l), leaf: l}
}

// Err returns the error from the tick that failed the leaf, if any.
func (n *LeafNode) Err() error {
	return n.leaf.err
}

// Ticks returns how many times the wrapped node was ticked.
func (n *LeafNode) Ticks() int {
	return n.leaf.ticks
}

type leaf struct {
	node  bt.Node
	err   error
	ticks int
}

func (*leaf) Init() {}

func (l *leaf) OnUpdate() behavior.Status {
	l.ticks++
	status, err := l.node.Tick()
	if err != nil {
		l.err = err
		return behavior.Failure
	}
	s, err := FromBT(status)
	if err != nil {
		l.err = err
	}
	return s
}

func (*leaf) OnCancel() {}
