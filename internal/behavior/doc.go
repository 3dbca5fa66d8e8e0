/*
Package behavior implements a polling behavior tree: composable, interruptible
units of work that are evaluated once per external tick.

# Lifecycle

Every node is a small state machine with three lifecycle states:

  - NotStarted: constructed, never updated.
  - Started: received at least one Update and has not yet stopped.
  - Stopped: returned Success or Failure, or was cancelled.

The first call to Node.Update runs the node's one-time Init step and then its
per-tick OnUpdate step, within the same call. Later calls run only OnUpdate.
Update and Cancel must never be called on a stopped node; doing so panics with
a *StateError. Composite nodes guard every Cancel with a Stopped check.

# Extension

Concrete node types implement Behavior (Init, OnUpdate, OnCancel) and are
wrapped with New. That is the only extension point; every combinator in this
package is built the same way.

# Children and factories

Composites never hold pre-built children. They hold Factory values and build a
fresh child whenever they need one, so a restarted or re-entered branch never
resumes stale state. A composite owns at most one live child and cancels it
before releasing or replacing it. ImpatientRepeater is the one exception: on
timeout it abandons its running child unless CancelOnRestart is given.

# Time

Time-sensitive nodes (Wait, ImpatientRepeater, TimeLimit) read an injected
Clock. Nothing in this package reads wall-clock time, which keeps trees
deterministic under test.

# Threading

A tree is single-threaded. Exactly one caller drives the root, and every
descendant Update happens synchronously inside that call.
*/
package behavior
