package testutil

import "time"

// TickInterval is the interval used when a test runs a tree on a real
// Ticker. Short enough that a few dozen ticks finish well inside RunTimeout.
const TickInterval = time.Millisecond

// PollInterval is the default interval for Poll and WaitForState.
const PollInterval = 2 * time.Millisecond

// RunTimeout bounds any test that waits on a ticking tree. It is generous
// because CI machines under load can delay ticker goroutines by tens of
// milliseconds.
const RunTimeout = 5 * time.Second
