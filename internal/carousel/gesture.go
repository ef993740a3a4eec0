package carousel

import (
	"math"
	"time"
)

// historyInterval is the sampling period of the drag history used for the
// release swing.
const historyInterval = 10 * time.Millisecond

// Click lock distances: a slidee drag longer than this swallows the click
// that ends it.
const (
	mouseLockPath = 10
	touchLockPath = 30
)

// DraggingState is the gesture state machine. Released is the rest state;
// Init is set once a press has been committed to a drag.
type DraggingState struct {
	Init     bool
	Released bool
	Source   DragSource
	Slidee   bool
	Touch    bool

	InitX, InitY float64
	InitPos      float64
	Start        time.Time
	Target       int

	PathX, PathY float64
	Path         float64
	Delta        float64
	History      [4]float64
	PathToLock   float64
	Locked       bool

	Swing  float64
	Tweese bool
}

// PointerEvent is a press, motion or release in frame coordinates. Target
// is the item under the pointer, or -1.
type PointerEvent struct {
	X, Y        float64
	Primary     bool
	Touch       bool
	Target      int
	Interactive bool
}

// continuousInit marks a gesture as started by source.
func (c *Carousel) continuousInit(source DragSource) {
	c.dragging.Released = false
	c.dragging.Source = source
	c.dragging.Slidee = source == SourceSlidee
}

// PointerDown starts tracking a press on the slidee or the scrollbar
// handle. It reports whether the press was taken; a taken press is not yet
// a drag.
func (c *Carousel) PointerDown(source DragSource, ev PointerEvent) bool {
	if !c.initialized || !c.dragging.Released || c.dragging.Init {
		return false
	}
	if !ev.Touch && ev.Interactive {
		return false
	}
	switch source {
	case SourceHandle:
		if !c.opts.DragHandle || c.hgeom.end == 0 {
			return false
		}
	case SourceSlidee:
		if ev.Touch && !c.opts.TouchDragging || !ev.Touch && !(c.opts.MouseDragging && ev.Primary) {
			return false
		}
	default:
		return false
	}

	c.continuousInit(source)
	d := &c.dragging
	d.Init = false
	d.Touch = ev.Touch
	d.InitX, d.InitY = ev.X, ev.Y
	d.Target = ev.Target
	if d.Slidee {
		d.InitPos = c.pos.Cur
	} else {
		d.InitPos = c.hPos
	}
	d.Start = c.sched.Now()
	d.PathX, d.PathY, d.Path, d.Delta = 0, 0, 0, 0
	d.Swing = 0
	d.Locked = false
	d.History = [4]float64{}
	d.PathToLock = 0
	if d.Slidee {
		d.PathToLock = mouseLockPath
		if ev.Touch {
			d.PathToLock = touchLockPath
		}
	}

	c.Pause(1)
	c.view.SetDragged(source, true)
	c.emit(Event{Name: EventMoveStart})

	if d.Slidee {
		cancel(&c.historyCancel)
		c.historyCancel = c.sched.Every(historyInterval, c.historyTick)
	}
	return true
}

// PointerMove feeds pointer motion into a tracked press.
func (c *Carousel) PointerMove(ev PointerEvent) {
	c.dragHandler(ev, false)
}

// PointerUp ends a tracked press.
func (c *Carousel) PointerUp(ev PointerEvent) {
	c.dragHandler(ev, true)
}

func (c *Carousel) dragHandler(ev PointerEvent, released bool) {
	d := &c.dragging
	if d.Released || (d.Source != SourceSlidee && d.Source != SourceHandle) {
		return
	}
	d.Released = released
	d.PathX = ev.X - d.InitX
	d.PathY = ev.Y - d.InitY
	d.Path = math.Hypot(d.PathX, d.PathY)
	d.Delta = d.PathX

	if !released && d.Path < 1 {
		return
	}

	// Undecided: short presses are clicks, mostly vertical ones aren't ours.
	if !d.Init {
		if d.Path < c.opts.DragThreshold {
			if released {
				c.dragEnd()
			}
			return
		}
		if math.Abs(d.PathX) <= math.Abs(d.PathY) {
			c.dragEnd()
			return
		}
		d.Init = true
	}

	if !d.Locked && d.Path > d.PathToLock && d.Slidee {
		d.Locked = true
		c.clickLocked = true
		c.lockTarget = d.Target
		cancel(&c.unlockCancel)
	}

	if released {
		c.dragEnd()
		if c.opts.ReleaseSwing && d.Slidee {
			d.Swing = (d.Delta - d.History[0]) / 40 * 300
			d.Delta += d.Swing
			d.Tweese = math.Abs(d.Swing) > 10
		}
	}

	if d.Slidee {
		c.slideTo(round(d.InitPos-d.Delta), false, false)
	} else {
		c.slideTo(c.handleToSlidee(d.InitPos+d.Delta), false, false)
	}
}

// dragEnd stops a pointer gesture and cleans up after it.
func (c *Carousel) dragEnd() {
	d := &c.dragging
	cancel(&c.historyCancel)
	d.Released = true
	c.view.SetDragged(d.Source, false)

	// The lock only has to outlive the click that belongs to this release.
	if c.clickLocked {
		cancel(&c.unlockCancel)
		c.unlockCancel = c.sched.AfterFunc(0, func() {
			c.clickLocked = false
			c.unlockCancel = nil
		})
	}

	// render announces moveEnd, unless there is nothing left to render.
	if c.pos.Cur == c.pos.Dest && d.Init {
		c.emit(Event{Name: EventMoveEnd})
	}

	c.Resume(1)
	d.Init = false
}

func (c *Carousel) historyTick() {
	h := &c.dragging.History
	h[0], h[1], h[2], h[3] = h[1], h[2], h[3], c.dragging.Delta
}

// handleToSlidee maps a handle offset onto a slidee offset.
func (c *Carousel) handleToSlidee(h float64) float64 {
	if c.hgeom.end <= 0 {
		return c.pos.Start
	}
	return round(within(h, 0, c.hgeom.end)/c.hgeom.end*(c.pos.End-c.pos.Start)) + c.pos.Start
}

// Click reports whether a click on target should go through. A drag that
// travelled past the lock distance swallows exactly one click on the item
// it started on.
func (c *Carousel) Click(target int) bool {
	if c.clickLocked && c.lockTarget == target {
		c.clickLocked = false
		cancel(&c.unlockCancel)
		return false
	}
	return true
}

// ClickItem handles a click on item i. It reports whether the click
// activated the item.
func (c *Carousel) ClickItem(i int, interactive bool) bool {
	if !c.Click(i) || interactive {
		return false
	}
	if c.opts.ActivateOn != "click" || !navigators[c.nav].itemNav || c.index(i) < 0 {
		return false
	}
	c.Activate(i, false)
	return true
}

// ClickPage handles a click on page indicator i.
func (c *Carousel) ClickPage(i int) bool {
	if c.opts.ActivatePageOn != "click" || i < 0 || i >= len(c.layout.Pages) {
		return false
	}
	c.ActivatePage(i, false)
	return true
}
