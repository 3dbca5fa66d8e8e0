package testutil

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPoll_Succeeds(t *testing.T) {
	t.Parallel()

	var n atomic.Int32
	err := Poll(context.Background(), func() bool {
		return n.Add(1) >= 3
	}, time.Second, time.Millisecond)
	require.NoError(t, err)
	require.GreaterOrEqual(t, n.Load(), int32(3))
}

func TestPoll_Timeout(t *testing.T) {
	t.Parallel()

	err := Poll(context.Background(), func() bool { return false }, 20*time.Millisecond, time.Millisecond)
	require.ErrorContains(t, err, "timeout")
}

func TestPoll_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Poll(ctx, func() bool { return false }, time.Second, time.Millisecond)
	require.ErrorIs(t, err, context.Canceled)
}

func TestWaitForState_ReturnsAcceptedValue(t *testing.T) {
	t.Parallel()

	var n atomic.Int64
	got, err := WaitForState(context.Background(), func() int64 { return n.Add(1) },
		func(v int64) bool { return v >= 5 }, time.Second, time.Millisecond)
	require.NoError(t, err)
	require.Equal(t, int64(5), got)
}
