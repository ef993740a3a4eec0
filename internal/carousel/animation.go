package carousel

import (
	"math"
	"time"
)

// tweeseEpsilon is the remaining distance under which tweesing snaps onto
// its target.
const tweeseEpsilon = 0.1

// Animation describes the transition currently in flight. A new one
// replaces it whenever a destination is set.
type Animation struct {
	Start     time.Time
	Time      time.Duration
	From      float64
	To        float64
	Delta     float64
	Tweesing  bool
	Immediate bool
}

// easeInOutCubic maps a time fraction in [0,1] onto a progress fraction.
func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// tweenAt is the tweened position after elapsed of duration.
func tweenAt(a Animation, elapsed, duration time.Duration) float64 {
	if duration <= 0 {
		return a.To
	}
	t := within(float64(elapsed)/float64(duration), 0, 1)
	if t >= 1 {
		return a.To
	}
	return a.From + a.Delta*easeInOutCubic(t)
}

// tweeseStep moves cur a fraction of the way toward to.
func tweeseStep(cur, to, fraction float64) float64 {
	d := to - cur
	if math.Abs(d) < tweeseEpsilon {
		return to
	}
	return cur + d*fraction
}

// step advances Cur by one frame of the active mode.
func (c *Carousel) step(now time.Time) {
	a := &c.anim
	switch {
	case a.Immediate:
		c.pos.Cur = a.To
	case a.Tweesing:
		fraction := c.opts.SyncSpeed
		if c.dragging.Released {
			fraction = c.opts.SwingSpeed
		}
		c.pos.Cur = tweeseStep(c.pos.Cur, a.To, fraction)
	default:
		elapsed := now.Sub(a.Start)
		if elapsed > c.opts.Speed {
			elapsed = c.opts.Speed
		}
		a.Time = elapsed
		c.pos.Cur = tweenAt(*a, elapsed, c.opts.Speed)
	}
}

// render is the frame loop. The first call of a cycle only books the next
// frame; later calls advance Cur and stop once it sits on the target.
func (c *Carousel) render(now time.Time) {
	if !c.initialized {
		return
	}
	if c.renderCancel == nil {
		c.renderCancel = c.sched.RequestFrame(c.render)
		if c.dragging.Released {
			c.emit(Event{Name: EventMoveStart})
		}
		return
	}

	c.step(now)

	if c.anim.To == c.pos.Cur {
		c.dragging.Tweese = false
		c.renderCancel = nil
	} else {
		c.renderCancel = c.sched.RequestFrame(c.render)
	}

	c.emit(Event{Name: EventMove})
	c.syncTransform()

	if c.renderCancel == nil && c.dragging.Released {
		c.emit(Event{Name: EventMoveEnd})
	}
	c.syncScrollbar()
}
