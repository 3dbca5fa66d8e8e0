package behavior_test

import (
	"math"
	"testing"

	"github.com/joeycumines/behaviorkit/internal/behavior"
	"github.com/joeycumines/behaviorkit/internal/clock"
	"github.com/stretchr/testify/require"
)

func TestExecute_RunsActionOnceAndSucceeds(t *testing.T) {
	t.Parallel()

	calls := 0
	n := behavior.Execute(func() { calls++ })
	require.Zero(t, calls)

	require.Equal(t, behavior.Success, n.Update())
	require.Equal(t, 1, calls)
	require.True(t, n.Stopped())
}

func TestExecute_CancelBeforeStartSkipsAction(t *testing.T) {
	t.Parallel()

	calls := 0
	n := behavior.Execute(func() { calls++ })
	n.Cancel()
	require.Zero(t, calls)
	require.True(t, n.Stopped())
}

func TestWait(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name     string
		duration float64
		step     float64
		want     []behavior.Status
	}{
		{
			name:     "two seconds at one per tick",
			duration: 2,
			step:     1,
			// elapsed 0, 1, 2, 3
			want: []behavior.Status{behavior.Running, behavior.Running, behavior.Running, behavior.Success},
		},
		{
			name:     "zero duration needs a second tick",
			duration: 0,
			step:     0.5,
			want:     []behavior.Status{behavior.Running, behavior.Success},
		},
		{
			name:     "fractional steps",
			duration: 1,
			step:     0.25,
			// elapsed 0, .25, .5, .75, 1, 1.25
			want: []behavior.Status{
				behavior.Running, behavior.Running, behavior.Running,
				behavior.Running, behavior.Running, behavior.Success,
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := clock.NewManual(10)
			n := behavior.Wait(c.Now, tc.duration)
			got := tickAll(n, func() { _, _ = c.Advance(tc.step) }, 100)
			require.Equal(t, tc.want, got)
			require.True(t, n.Stopped())
		})
	}
}

func TestWait_StartsAtFirstUpdateNotConstruction(t *testing.T) {
	t.Parallel()

	c := clock.NewManual(0)
	n := behavior.Wait(c.Now, 1)
	require.NoError(t, c.Set(50))

	require.Equal(t, behavior.Running, n.Update())
	require.NoError(t, c.Set(51))
	require.Equal(t, behavior.Running, n.Update())
	require.NoError(t, c.Set(51.01))
	require.Equal(t, behavior.Success, n.Update())
}

func TestWait_FrozenClockNeverFinishes(t *testing.T) {
	t.Parallel()

	c := clock.NewManual(0)
	n := behavior.Wait(c.Now, 0)
	for i := 0; i < 10; i++ {
		require.Equal(t, behavior.Running, n.Update())
	}
	n.Cancel()
	require.True(t, n.Stopped())
}

func TestWait_RejectsNegativeDuration(t *testing.T) {
	t.Parallel()

	c := clock.NewManual(0)
	for _, d := range []float64{-1, -0.001, math.NaN()} {
		func() {
			defer func() {
				err, ok := recover().(error)
				require.True(t, ok, "duration %v", d)
				require.ErrorIs(t, err, behavior.ErrInvalidArgument)
			}()
			behavior.Wait(c.Now, d)
		}()
	}
}
