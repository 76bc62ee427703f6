package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock is the time source consumed by the simulation
type Clock interface {
	Now() time.Time
}

// WallClock reads the system clock
type WallClock struct{}

func (WallClock) Now() time.Time { return time.Now() }

// ManualClock only moves when told to; tests and headless runs step it per frame
type ManualClock struct {
	base   time.Time
	offset atomic.Int64 // nanoseconds past base
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{base: start}
}

func (c *ManualClock) Now() time.Time {
	return c.base.Add(time.Duration(c.offset.Load()))
}

// Set jumps to t
func (c *ManualClock) Set(t time.Time) {
	c.offset.Store(int64(t.Sub(c.base)))
}

// Advance moves forward by d and returns the new time
func (c *ManualClock) Advance(d time.Duration) time.Time {
	return c.base.Add(time.Duration(c.offset.Add(int64(d))))
}

// PausableClock is game time: a wall clock minus every pause taken so far
// Wind lifetimes, construction windows and spawn cadence all read it
type PausableClock struct {
	mu       sync.Mutex
	wall     Clock
	lag      time.Duration // completed pauses
	frozenAt time.Time     // wall time the current pause began; zero while running
}

// NewPausableClock wraps wall; nil uses the system clock
func NewPausableClock(wall Clock) *PausableClock {
	if wall == nil {
		wall = WallClock{}
	}
	return &PausableClock{wall: wall}
}

func (pc *PausableClock) Now() time.Time {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.frozenAt.IsZero() {
		return pc.frozenAt.Add(-pc.lag)
	}
	return pc.wall.Now().Add(-pc.lag)
}

// Wall returns the underlying wall time
func (pc *PausableClock) Wall() time.Time {
	return pc.wall.Now()
}

// SetPaused freezes or resumes game time; false when already in that state
func (pc *PausableClock) SetPaused(paused bool) bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if paused == !pc.frozenAt.IsZero() {
		return false
	}
	now := pc.wall.Now()
	if paused {
		pc.frozenAt = now
	} else {
		pc.lag += now.Sub(pc.frozenAt)
		pc.frozenAt = time.Time{}
	}
	return true
}

// Toggle flips the pause state and returns it
func (pc *PausableClock) Toggle() bool {
	pc.mu.Lock()
	paused := pc.frozenAt.IsZero()
	pc.mu.Unlock()
	pc.SetPaused(paused)
	return paused
}

func (pc *PausableClock) Paused() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return !pc.frozenAt.IsZero()
}

// Lag is the total time spent paused, including a pause in progress
func (pc *PausableClock) Lag() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.frozenAt.IsZero() {
		return pc.lag
	}
	return pc.lag + pc.wall.Now().Sub(pc.frozenAt)
}
