package behavior_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/joeycumines/behaviorkit/internal/behavior"
	"github.com/stretchr/testify/require"
)

// eventLog records lifecycle calls across every scripted node in a test, in order.
type eventLog struct {
	events []string
}

func (l *eventLog) add(format string, args ...any) {
	l.events = append(l.events, fmt.Sprintf(format, args...))
}

// scripted is a Behavior driven by a status list. Each OnUpdate returns the
// next status in script; the last one repeats. An empty script always
// returns Running.
type scripted struct {
	name    string
	log     *eventLog
	script  []behavior.Status
	updates int
}

func (p *scripted) Init() { p.log.add("%s:init", p.name) }

func (p *scripted) OnUpdate() behavior.Status {
	status := behavior.Running
	if len(p.script) != 0 {
		status = p.script[min(p.updates, len(p.script)-1)]
	}
	p.updates++
	p.log.add("%s:update=%s", p.name, status)
	return status
}

func (p *scripted) OnCancel() { p.log.add("%s:cancel", p.name) }

// scriptedFactory builds numbered nodes ("name#1", "name#2", ...) and keeps
// every node it built, in order.
type scriptedFactory struct {
	name   string
	log    *eventLog
	script []behavior.Status
	built  []behavior.Node
}

func newScriptedFactory(log *eventLog, name string, script ...behavior.Status) *scriptedFactory {
	if len(script) == 0 {
		script = []behavior.Status{behavior.Running}
	}
	return &scriptedFactory{name: name, log: log, script: script}
}

func (f *scriptedFactory) Build() behavior.Node {
	id := fmt.Sprintf("%s#%d", f.name, len(f.built)+1)
	f.log.add("%s:new", id)
	n := behavior.New(&scripted{name: id, log: f.log, script: f.script})
	f.built = append(f.built, n)
	return n
}

func (f *scriptedFactory) last() behavior.Node {
	if len(f.built) == 0 {
		return nil
	}
	return f.built[len(f.built)-1]
}

// requireStateError asserts fn panics with a *StateError for op.
func requireStateError(t *testing.T, op string, fn func()) *behavior.StateError {
	t.Helper()
	var recovered any
	func() {
		defer func() { recovered = recover() }()
		fn()
	}()
	require.NotNil(t, recovered, "expected panic")
	err, ok := recovered.(error)
	require.True(t, ok, "panic value %T is not an error", recovered)
	require.True(t, errors.Is(err, behavior.ErrStopped))
	var stateErr *behavior.StateError
	require.True(t, errors.As(err, &stateErr))
	require.Equal(t, op, stateErr.Op)
	return stateErr
}

// tickAll updates n once per clock step, advancing the clock by step before
// every tick after the first, and returns the statuses in order. It stops
// early when n stops.
func tickAll(n behavior.Node, advance func(), ticks int) []behavior.Status {
	var out []behavior.Status
	for i := 0; i < ticks && !n.Stopped(); i++ {
		if i > 0 && advance != nil {
			advance()
		}
		out = append(out, n.Update())
	}
	return out
}
