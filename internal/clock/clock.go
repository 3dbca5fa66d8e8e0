// Package clock provides time sources for behavior trees.
//
// Every source here is a plain func() float64 (or has a Now method with that
// signature), so it can be passed wherever a behavior.Clock is expected.
package clock

import (
	"fmt"
	"sync"
	"time"
)

// Manual is a clock that only moves when told to. It is safe for concurrent
// use, which lets a test advance time while a driver goroutine reads it.
type Manual struct {
	mu  sync.Mutex
	now float64
}

// NewManual returns a Manual clock reading start.
func NewManual(start float64) *Manual {
	return &Manual{now: start}
}

// Now returns the current reading.
func (m *Manual) Now() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward by d and returns the new reading.
// A negative or NaN d is rejected and leaves the clock unchanged.
func (m *Manual) Advance(d float64) (float64, error) {
	if !(d >= 0) {
		return m.Now(), fmt.Errorf("clock: cannot advance by negative duration %v", d)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now += d
	return m.now, nil
}

// Set moves the clock to t, which must not be earlier than the current
// reading, nor NaN.
func (m *Manual) Set(t float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !(t >= m.now) {
		return fmt.Errorf("clock: cannot move backwards from %v to %v", m.now, t)
	}
	m.now = t
	return nil
}

// Wall returns a clock reading seconds elapsed since Wall was called. It uses
// the monotonic clock reading, so wall-clock adjustments do not affect it.
func Wall() func() float64 {
	return Since(time.Now())
}

// Since returns a clock reading seconds elapsed since start.
func Since(start time.Time) func() float64 {
	return func() float64 {
		return time.Since(start).Seconds()
	}
}

// Scaled returns a clock that runs factor times faster than c, measured from
// the first reading of c. A factor of 1 returns c unchanged.
func Scaled(c func() float64, factor float64) func() float64 {
	if factor == 1 {
		return c
	}
	origin := c()
	return func() float64 {
		return origin + (c()-origin)*factor
	}
}
