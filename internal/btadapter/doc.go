/*
Package btadapter connects behavior trees to github.com/joeycumines/go-behaviortree.

The two engines model a node differently. A behavior.Node is a stateful,
single-use state machine that must not be updated after it stops. A
go-behaviortree Node is a stateless pair of Tick and children that may be
ticked forever. This package bridges both directions:

  - Leaf runs a go-behaviortree node as a behavior leaf. It ticks the wrapped
    node once per Update and maps its status; a tick error becomes Failure
    and is kept for inspection via LeafNode.Err.
  - Tree exposes a behavior subtree as a go-behaviortree node. Whenever the
    current instance has stopped, the next tick builds a new one from the
    factory, which matches go-behaviortree's habit of re-ticking from the root.

Statuses map one to one. A go-behaviortree status outside Running, Success and
Failure is rejected with ErrUnknownStatus.
*/
package btadapter
