package engine

import "time"

// TimeProvider is the clock used by frame drivers to measure dt
type TimeProvider interface {
	Now() time.Time
}

// SystemTimeProvider reads the monotonic system clock
type SystemTimeProvider struct{}

// NewTimeProvider creates a system clock provider
func NewTimeProvider() *SystemTimeProvider {
	return &SystemTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *SystemTimeProvider) Now() time.Time {
	return time.Now()
}

// DeltaClock converts successive tick times into elapsed seconds
type DeltaClock struct {
	tp   TimeProvider
	last time.Time
}

// NewDeltaClock starts measuring from tp.Now()
func NewDeltaClock(tp TimeProvider) *DeltaClock {
	return &DeltaClock{tp: tp, last: tp.Now()}
}

// Tick returns seconds since the previous Tick (or construction), capped at maxDt
// A non-positive maxDt disables the cap
func (c *DeltaClock) Tick(maxDt float64) float64 {
	now := c.tp.Now()
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		return 0
	}
	if maxDt > 0 && dt > maxDt {
		return maxDt
	}
	return dt
}
