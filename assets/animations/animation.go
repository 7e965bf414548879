package animations

import (
	"math"

	"github.com/automoto/dashblade/config"
)

// EventKind identifies an animation event.
type EventKind int

const (
	// FrameReached fires when the visible frame index changes.
	FrameReached EventKind = iota
	// CycleCompleted fires when the counter reaches the frame count.
	CycleCompleted
)

func (k EventKind) String() string {
	if k == CycleCompleted {
		return "cycleCompleted"
	}
	return "frameReached"
}

// Event is emitted synchronously by Clock.Advance.
type Event struct {
	Kind      EventKind
	Animation config.AnimationID
	Frame     int
}

// Handler receives animation events.
type Handler func(Event)

// Emitter dispatches events to its subscribers in subscription order.
type Emitter struct {
	handlers []Handler
}

// Subscribe registers h for every subsequent event.
func (e *Emitter) Subscribe(h Handler) {
	if h == nil {
		return
	}
	e.handlers = append(e.handlers, h)
}

// Emit sends evt to all subscribers.
func (e *Emitter) Emit(evt Event) {
	if e == nil {
		return
	}
	for _, h := range e.handlers {
		h(evt)
	}
}

// Clock is a per-entity animation accumulator. The counter is measured in
// frames and advances by FrameRate*dt per step.
type Clock struct {
	Events Emitter

	defs    map[config.AnimationID]config.AnimationDef
	current config.AnimationID
	def     config.AnimationDef
	counter float64
	frame   int
	dirty   bool
}

// NewClock creates a clock over the given animation table.
func NewClock(defs map[config.AnimationID]config.AnimationDef) *Clock {
	return &Clock{defs: defs}
}

// Play switches to id. Switching resets the counter and frame and marks the
// frame dirty so the renderer shows frame 0 on this tick. Playing the
// current animation again is a no-op.
func (c *Clock) Play(id config.AnimationID) {
	if c.current == id && c.def.FrameCount > 0 {
		return
	}
	c.current = id
	c.def = c.defs[id]
	c.Restart()
}

// Restart rewinds the current animation to frame 0.
func (c *Clock) Restart() {
	c.counter = 0
	c.frame = 0
	c.dirty = true
}

// Advance moves the clock forward by dt seconds and emits FrameReached for
// each frame entered and CycleCompleted when a full cycle ends. A stalled
// clock (zero frame rate) emits nothing.
func (c *Clock) Advance(dt float64) {
	count := c.def.FrameCount
	if count <= 0 || c.def.FrameRate <= 0 || dt <= 0 {
		return
	}

	id := c.current
	prev := int(math.Floor(c.counter))
	c.counter += c.def.FrameRate * dt
	next := int(math.Floor(c.counter))

	for f := prev + 1; f <= next && f < count; f++ {
		c.frame = f
		c.dirty = true
		c.Events.Emit(Event{Kind: FrameReached, Animation: id, Frame: f})
		if c.current != id {
			// a handler switched animations; the rest of this step belongs to it
			return
		}
	}

	if c.counter >= float64(count) {
		c.counter = 0
		c.frame = 0
		c.dirty = true
		c.Events.Emit(Event{Kind: CycleCompleted, Animation: id, Frame: count - 1})
	}
}

// Current returns the playing animation id.
func (c *Clock) Current() config.AnimationID {
	return c.current
}

// Def returns the playing animation's descriptor.
func (c *Clock) Def() config.AnimationDef {
	return c.def
}

// Frame returns the visible frame index.
func (c *Clock) Frame() int {
	return c.frame
}

// Counter returns the fractional frame counter.
func (c *Clock) Counter() float64 {
	return c.counter
}

// TakeDirty reports whether the visible frame changed since the last call.
func (c *Clock) TakeDirty() bool {
	d := c.dirty
	c.dirty = false
	return d
}
