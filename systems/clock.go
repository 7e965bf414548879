package systems

import "time"

// Clock measures the wall time between frames and clamps it so a hitch
// cannot produce a huge physics step.
type Clock struct {
	now     func() time.Time
	last    time.Time
	started bool

	nominal float64
	maxStep float64
}

// NewClock creates a clock. The first tick reports one nominal frame at
// tps. A nil now uses time.Now.
func NewClock(tps int, maxStep float64, now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	nominal := maxStep
	if tps > 0 {
		nominal = 1 / float64(tps)
	}
	return &Clock{now: now, nominal: nominal, maxStep: maxStep}
}

// Tick returns the seconds elapsed since the previous tick.
func (c *Clock) Tick() float64 {
	t := c.now()
	if !c.started {
		c.started = true
		c.last = t
		return ClampStep(c.nominal, c.maxStep)
	}
	dt := t.Sub(c.last).Seconds()
	c.last = t
	return ClampStep(dt, c.maxStep)
}

// Reset makes the next tick report a nominal frame, used after a pause so
// the paused time is not replayed.
func (c *Clock) Reset() {
	c.started = false
}

// ClampStep bounds dt to [0, maxStep].
func ClampStep(dt, maxStep float64) float64 {
	if dt < 0 {
		return 0
	}
	if dt > maxStep {
		return maxStep
	}
	return dt
}
