package carousel

import (
	"math"
	"time"
)

// wheelResetTime is how long fractional wheel steps accumulate under item
// navigation.
const wheelResetTime = 200 * time.Millisecond

// WheelMode is the unit of a wheel delta.
type WheelMode int

const (
	WheelPixel WheelMode = iota
	WheelLine
)

// WheelEvent is one wheel notch or trackpad delta. Positive values scroll
// towards the end.
type WheelEvent struct {
	DeltaX float64
	DeltaY float64
	Mode   WheelMode
}

type wheelState struct {
	last  time.Time
	delta float64
}

// WheelCoordinator is shared by every carousel on one screen. It remembers
// when the wheel last landed outside all of them, so a frame that scrolls
// under a moving wheel does not grab the gesture.
type WheelCoordinator struct {
	lastOutside time.Time
}

// NewWheelCoordinator returns an empty coordinator.
func NewWheelCoordinator() *WheelCoordinator {
	return &WheelCoordinator{}
}

// WheelOutside records a wheel event that no carousel handled.
func (w *WheelCoordinator) WheelOutside(now time.Time) {
	if w != nil {
		w.lastOutside = now
	}
}

// declines reports whether a frame must let a wheel event pass. A declined
// event extends the window.
func (w *WheelCoordinator) declines(now time.Time, hijack time.Duration) bool {
	if w == nil || w.lastOutside.IsZero() {
		return false
	}
	if now.Sub(w.lastOutside) < hijack {
		w.lastOutside = now
		return true
	}
	return false
}

// normalizeWheel turns an event into cells (free navigation) or whole item
// steps. Item steps accumulate until they add up to at least one.
func (c *Carousel) normalizeWheel(ev WheelEvent, now time.Time) float64 {
	cur := ev.DeltaY
	if cur == 0 {
		cur = ev.DeltaX
	}
	if ev.Mode == WheelLine {
		cur /= 3
	} else {
		cur /= 100
	}
	if !navigators[c.nav].itemNav {
		return cur
	}

	s := &c.scrolling
	if now.Sub(s.last) > wheelResetTime {
		s.delta = 0
	}
	s.last = now
	s.delta += cur
	if math.Abs(s.delta) < 1 {
		return 0
	}
	steps := round(s.delta)
	s.delta = math.Mod(s.delta, 1)
	return steps
}

// Wheel handles a wheel event over the frame. It reports whether the event
// was consumed; unconsumed events should scroll whatever is underneath.
func (c *Carousel) Wheel(ev WheelEvent) bool {
	if !c.initialized {
		return false
	}
	now := c.sched.Now()
	if c.wheel.declines(now, c.opts.ScrollHijack) {
		return false
	}
	if c.opts.ScrollBy == 0 || c.pos.Start == c.pos.End {
		return false
	}

	delta := c.normalizeWheel(ev, now)
	if c.opts.ScrollTrap || delta > 0 && c.pos.Dest < c.pos.End || delta < 0 && c.pos.Dest > c.pos.Start {
		c.SlideBy(float64(c.opts.ScrollBy)*delta, false)
		return true
	}
	return false
}
