package command

import (
	"log/slog"

	"github.com/joeycumines/behaviorkit/internal/behavior"
	"github.com/joeycumines/behaviorkit/internal/blackboard"
	"github.com/joeycumines/behaviorkit/internal/btadapter"
	bt "github.com/joeycumines/go-behaviortree"
)

// Blackboard keys written by the patrol tree.
const (
	keyIntruder = "intruder"
	keyWaypoint = "waypoint"
	keyScans    = "scans"
	keyAttempts = "attempts"
	keyCaught   = "caught"
	keyEscaped  = "escaped"
)

// patrolSettings are the knobs of the demo tree, in tree-time seconds.
type patrolSettings struct {
	Waypoints []string
	// Dwell is how long the guard waits at each waypoint.
	Dwell float64
	// ScanTime is how long a single scan takes; a scan that has not finished
	// within ScanPatience is restarted.
	ScanTime     float64
	ScanPatience float64
	// IntruderEvery makes every Nth scan spot an intruder.
	IntruderEvery int
	// ChaseTime is how long catching an intruder takes, and ChaseLimit how
	// long a single chase may last. After ChaseAttempts failed chases the
	// intruder escapes.
	ChaseTime     float64
	ChaseLimit    float64
	ChaseAttempts int
}

func defaultPatrolSettings() patrolSettings {
	return patrolSettings{
		Waypoints:     []string{"gate", "yard", "tower", "stores"},
		Dwell:         0.5,
		ScanTime:      0.2,
		ScanPatience:  1,
		IntruderEvery: 3,
		ChaseTime:     1,
		ChaseLimit:    3,
		ChaseAttempts: 2,
	}
}

// patrolTree builds the demo guard: it walks its waypoints, scanning at each
// one, and switches to chasing whenever a scan spots an intruder. The tree
// never finishes on its own.
func patrolTree(bb *blackboard.Blackboard, clock behavior.Clock, settings patrolSettings, logger *slog.Logger) behavior.Node {
	next := 0
	walk := func() {
		wp := settings.Waypoints[next%len(settings.Waypoints)]
		next++
		bb.Set(keyWaypoint, wp)
		logger.Debug("walking", "waypoint", wp)
	}
	// scanning is a plain go-behaviortree sequence, driven as a leaf
	sweep := func([]bt.Node) (bt.Status, error) {
		bb.Incr(keyScans)
		return bt.Success, nil
	}
	spot := func([]bt.Node) (bt.Status, error) {
		n := bb.Int(keyScans)
		if settings.IntruderEvery > 0 && n%settings.IntruderEvery == 0 {
			bb.Set(keyIntruder, true)
			logger.Info("intruder spotted", "waypoint", bb.Get(keyWaypoint), "scan", n)
		}
		return bt.Success, nil
	}
	scan := func() behavior.Node {
		return btadapter.Leaf(bt.New(bt.Sequence, bt.New(sweep), bt.New(spot)))
	}
	pursue := func() {
		if bb.Incr(keyAttempts) > settings.ChaseAttempts {
			bb.Set(keyAttempts, 0)
			bb.Set(keyIntruder, false)
			logger.Warn("intruder escaped", "total", bb.Incr(keyEscaped))
		}
	}
	catch := func() {
		bb.Set(keyAttempts, 0)
		bb.Set(keyIntruder, false)
		logger.Info("intruder caught", "total", bb.Incr(keyCaught))
	}

	patrol := func() behavior.Node {
		return behavior.MustSequencer(
			func() behavior.Node { return behavior.Execute(walk) },
			func() behavior.Node { return behavior.Wait(clock, settings.Dwell) },
			func() behavior.Node {
				return behavior.ImpatientRepeater(func() behavior.Node {
					return behavior.MustSequencer(
						func() behavior.Node { return behavior.Wait(clock, settings.ScanTime) },
						scan,
					)
				}, clock, settings.ScanPatience, behavior.FinishOnSuccess())
			},
		)
	}

	chase := func() behavior.Node {
		return behavior.TimeLimit(func() behavior.Node {
			return behavior.MustSequencer(
				func() behavior.Node { return behavior.Wait(clock, settings.ChaseTime) },
				func() behavior.Node { return behavior.Execute(catch) },
			)
		}, clock, settings.ChaseLimit)
	}

	return behavior.Repeater(func() behavior.Node {
		return behavior.Conditional(bb.Flag(keyIntruder),
			func() behavior.Node {
				// an escape clears the flag, which switches back to patrol
				return behavior.MustSequencer(
					func() behavior.Node { return behavior.Execute(pursue) },
					chase,
				)
			},
			patrol,
		)
	})
}
