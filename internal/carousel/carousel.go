// Package carousel is a single-axis position reconciler for sliding
// content. A Carousel owns one scroll offset, accepts targets from API
// calls, pointer drags, the wheel, the keyboard and its buttons, animates
// toward them on scheduler frames, and pushes the derived state (transform,
// scrollbar handle, active page and item, button state) to a View.
//
// Everything runs on one goroutine: the caller's event loop invokes the
// input methods, and the Scheduler invokes frame and timer callbacks on the
// same loop. Nothing is locked.
package carousel

import (
	"time"
)

// Handle identifies the frame a carousel is bound to.
type Handle string

// Config is everything a carousel needs at construction.
type Config struct {
	Measurer Measurer
	Elements []Element
	Options  Options
	View     View
	// Handlers are registered on Init, keyed by space-separated event names.
	Handlers map[string]Handler
}

// Carousel is one instance bound to a frame.
type Carousel struct {
	handle   Handle
	factory  *Factory
	sched    Scheduler
	wheel    *WheelCoordinator
	measurer Measurer
	view     View
	handlers map[string]Handler

	opts     Options
	nav      Navigation
	elements []Element

	initialized bool
	layout      Layout
	pos         Position
	rel         Relatives
	hgeom       handleGeometry
	hPos        float64
	anim        Animation
	dragging    DraggingState
	move        moveState
	scrolling   wheelState
	last        syncCache
	listeners   listeners
	paused      int
	buttonHeld  bool

	clickLocked bool
	lockTarget  int

	renderCancel     CancelFunc
	continuousCancel CancelFunc
	historyCancel    CancelFunc
	cycleCancel      CancelFunc
	unlockCancel     CancelFunc
}

type moveState struct {
	speed    float64
	lastTime time.Time
	startPos float64
}

func newCarousel(f *Factory, h Handle, cfg Config) *Carousel {
	view := cfg.View
	if view == nil {
		view = NopView{}
	}
	measurer := cfg.Measurer
	if measurer == nil {
		measurer = MeasurerFunc(func() FrameMetrics { return FrameMetrics{} })
	}
	return &Carousel{
		handle:   h,
		factory:  f,
		sched:    f.sched,
		wheel:    f.wheel,
		measurer: measurer,
		view:     view,
		handlers: cfg.Handlers,
		opts:     cfg.Options,
		nav:      cfg.Options.Navigation(),
		elements: append([]Element(nil), cfg.Elements...),
		rel:      Relatives{ActiveItem: -1},
		dragging: DraggingState{Released: true},
		last:     newSyncCache(),
	}
}

// Init registers the carousel with its factory, binds the configured
// handlers, loads geometry and starts cycling. It fails with
// ErrAlreadyInitialized when another live instance owns the same handle.
func (c *Carousel) Init() error {
	if c.initialized {
		return nil
	}
	if err := c.factory.register(c); err != nil {
		return err
	}
	for names, fn := range c.handlers {
		c.On(names, fn)
	}
	c.initialized = true
	c.load(true)
	if c.opts.CycleBy != "" {
		if c.opts.StartPaused {
			c.Pause(0)
		} else {
			c.Resume(0)
		}
	}
	carouselLog.Debug("initialized", logAttrs(c))
	return nil
}

// load recomputes geometry from fresh metrics, re-derives relatives,
// scrollbar and pages, then settles the position inside the new bounds.
func (c *Carousel) load(isInit bool) {
	lastPages := c.last.pageCount
	metrics := c.measurer.Metrics()

	c.layout = computeLayout(metrics, c.elements, c.nav, c.opts.VisibleItems)
	c.pos.Start, c.pos.End, c.pos.Center = c.layout.Start, c.layout.End, c.layout.Center
	c.updateRelatives()

	c.hgeom = computeHandle(metrics.ScrollbarSize, c.opts.DynamicHandle, c.opts.MinHandleSize, c.layout)
	if c.hgeom.trackSize > 0 && c.renderCancel == nil {
		c.syncScrollbar()
	}

	if n := len(c.layout.Pages); n != lastPages {
		c.last.pageCount = n
		c.view.SetPageCount(n)
		if n > 0 {
			c.view.SetActivePage(c.rel.ActivePage)
		}
	}

	nv := navigators[c.nav]
	if nv.itemNav {
		if isInit && c.opts.StartAt != nil {
			start := int(*c.opts.StartAt)
			c.activate(start, false)
			if nv.centered {
				c.ToCenterItem(start, true)
			} else {
				c.ToStartItem(start, true)
			}
		}
		if active := c.rel.ActiveItem; nv.centered && active >= 0 && active < len(c.layout.Items) {
			c.slideTo(c.layout.Items[active].Center, isInit, false)
		} else {
			c.slideTo(within(c.pos.Dest, c.pos.Start, c.pos.End), isInit, false)
		}
	} else if isInit {
		if c.opts.StartAt != nil {
			c.slideTo(*c.opts.StartAt, true, false)
		} else {
			c.slideTo(within(c.pos.Dest, c.pos.Start, c.pos.End), true, false)
		}
	} else {
		c.slideTo(within(c.pos.Dest, c.pos.Start, c.pos.End), false, false)
	}

	c.emit(Event{Name: EventLoad})
}

// Reload re-measures the frame and recomputes everything derived from it.
func (c *Carousel) Reload() {
	if !c.initialized {
		return
	}
	c.load(false)
}

// slideTo is the single entry for new destinations.
func (c *Carousel) slideTo(target float64, immediate, skipAlign bool) {
	target = c.resolve(target, skipAlign)

	now := c.sched.Now()
	tweesing := c.dragging.Tweese || c.dragging.Init && !c.dragging.Slidee
	c.anim = Animation{
		Start:    now,
		From:     c.pos.Cur,
		To:       target,
		Delta:    target - c.pos.Cur,
		Tweesing: tweesing,
		Immediate: !tweesing &&
			(immediate || c.dragging.Init && c.dragging.Slidee || c.opts.Speed <= 0),
	}
	c.dragging.Tweese = false

	if target != c.pos.Dest {
		c.pos.Dest = target
		c.emit(Event{Name: EventChange})
		if c.renderCancel == nil {
			c.render(now)
		}
	}

	c.resetCycle()
	c.updateRelatives()
	c.updateButtonsState()
	c.syncPagesbar()
}

// SlideTo animates to an offset, snapping to items when the navigation
// mode calls for it.
func (c *Carousel) SlideTo(pos float64, immediate bool) {
	c.slideTo(pos, immediate, false)
}

// SlideToRaw animates to an offset without item alignment.
func (c *Carousel) SlideToRaw(pos float64, immediate bool) {
	c.slideTo(pos, immediate, true)
}

// SlideBy moves by delta cells, or by delta items under item navigation.
func (c *Carousel) SlideBy(delta float64, immediate bool) {
	if delta == 0 {
		return
	}
	nv := navigators[c.nav]
	if !nv.itemNav {
		c.slideTo(c.pos.Dest+delta, immediate, false)
		return
	}
	if len(c.layout.Items) == 0 {
		return
	}
	base := c.rel.FirstItem
	if nv.centered {
		base = c.rel.CenterItem
	}
	target := int(within(round(float64(base)+delta), 0, float64(len(c.layout.Items)-1)))
	if nv.centered {
		c.ToCenterItem(target, immediate)
	} else {
		c.ToStartItem(target, immediate)
	}
}

// location picks one of an item's (or the slidee's) alignment offsets.
type location int

const (
	locStart location = iota
	locCenter
	locEnd
)

func (c *Carousel) to(loc location, index int, whole, immediate bool) {
	if whole {
		var p float64
		switch loc {
		case locStart:
			p = c.pos.Start
		case locCenter:
			p = c.pos.Center
		case locEnd:
			p = c.pos.End
		}
		c.slideTo(p, immediate, false)
		return
	}
	centered := navigators[c.nav].centered
	// Items can't be aligned to the frame sides under centered navigation.
	if centered && loc != locCenter {
		return
	}
	it, ok := c.GetPos(index)
	if !ok {
		return
	}
	var p float64
	switch loc {
	case locStart:
		p = it.Start
	case locCenter:
		p = it.Center
	case locEnd:
		p = it.End
	}
	c.slideTo(p, immediate, !centered)
}

// ToStart animates the slidee to its start.
func (c *Carousel) ToStart(immediate bool) { c.to(locStart, 0, true, immediate) }

// ToEnd animates the slidee to its end.
func (c *Carousel) ToEnd(immediate bool) { c.to(locEnd, 0, true, immediate) }

// ToCenter animates the slidee to its center.
func (c *Carousel) ToCenter(immediate bool) { c.to(locCenter, 0, true, immediate) }

// ToStartItem aligns item i to the frame's leading edge.
func (c *Carousel) ToStartItem(i int, immediate bool) { c.to(locStart, i, false, immediate) }

// ToEndItem aligns item i to the frame's trailing edge.
func (c *Carousel) ToEndItem(i int, immediate bool) { c.to(locEnd, i, false, immediate) }

// ToCenterItem centers item i in the frame.
func (c *Carousel) ToCenterItem(i int, immediate bool) { c.to(locCenter, i, false, immediate) }

// GetPos returns the offsets of item i.
func (c *Carousel) GetPos(i int) (Item, bool) {
	idx := c.index(i)
	if idx < 0 || idx >= len(c.layout.Items) {
		return Item{}, false
	}
	return c.layout.Items[idx], true
}

// index validates an item index, returning -1 when it is out of range.
func (c *Carousel) index(i int) int {
	if i >= 0 && i < len(c.elements) {
		return i
	}
	return -1
}

// relativeIndex is index with negative values counted from the end.
func (c *Carousel) relativeIndex(i int) int {
	if i < 0 {
		i += len(c.elements)
	}
	return c.index(i)
}

// activate marks item i active without moving. It returns the index, or -1.
func (c *Carousel) activate(i int, force bool) int {
	idx := c.index(i)
	if !navigators[c.nav].itemNav || idx < 0 {
		return -1
	}
	if c.last.active != idx || force {
		if c.rel.ActiveItem >= 0 {
			c.view.SetItemActive(c.rel.ActiveItem, false)
		}
		c.view.SetItemActive(idx, true)
		c.last.active = idx
		c.rel.ActiveItem = idx
		c.updateButtonsState()
		c.emit(Event{Name: EventActive, Index: idx})
	}
	return idx
}

// Activate makes item i active and, with Smart set, moves it into a
// helpful place: centered under centered navigation, otherwise to the side
// of the frame the user is heading towards.
func (c *Carousel) Activate(i int, immediate bool) {
	idx := c.activate(i, false)
	if idx < 0 {
		return
	}
	switch {
	case !c.opts.Smart:
		c.resetCycle()
	case navigators[c.nav].centered:
		c.ToCenterItem(idx, immediate)
	case idx >= c.rel.LastItem:
		c.ToStartItem(idx, immediate)
	case idx <= c.rel.FirstItem:
		c.ToEndItem(idx, immediate)
	default:
		c.resetCycle()
	}
}

// ActivatePage slides to page i, clamped to the existing pages.
func (c *Carousel) ActivatePage(i int, immediate bool) {
	if len(c.layout.Pages) == 0 {
		return
	}
	i = int(within(float64(i), 0, float64(len(c.layout.Pages)-1)))
	c.slideTo(c.layout.Pages[i], immediate, false)
}

// Prev activates the previous item.
func (c *Carousel) Prev() {
	if c.rel.ActiveItem < 0 {
		c.Activate(0, false)
		return
	}
	c.Activate(c.rel.ActiveItem-1, false)
}

// Next activates the next item.
func (c *Carousel) Next() {
	if c.rel.ActiveItem < 0 {
		c.Activate(0, false)
		return
	}
	c.Activate(c.rel.ActiveItem+1, false)
}

// PrevPage activates the previous page.
func (c *Carousel) PrevPage() { c.shiftPage(-1) }

// NextPage activates the next page.
func (c *Carousel) NextPage() { c.shiftPage(1) }

func (c *Carousel) shiftPage(by int) {
	old := c.rel.ActivePage
	next := old + by
	c.ActivatePage(next, false)
	c.emit(Event{Name: EventChangePage, Index: next, Previous: old})
}

// MoveBy starts continuous movement at speed cells per second until Stop
// or a bound is reached.
func (c *Carousel) MoveBy(speed float64) {
	c.move.speed = speed
	bound := c.pos.Start
	if speed > 0 {
		bound = c.pos.End
	}
	if c.dragging.Init || speed == 0 || c.pos.Cur == bound {
		return
	}
	now := c.sched.Now()
	c.move.lastTime = now
	c.move.startPos = c.pos.Cur
	c.continuousInit(SourceButton)
	c.dragging.Init = true
	c.emit(Event{Name: EventMoveStart})
	cancel(&c.continuousCancel)
	c.moveLoop(now)
}

func (c *Carousel) moveLoop(now time.Time) {
	bound := c.pos.Start
	if c.move.speed > 0 {
		bound = c.pos.End
	}
	if c.move.speed == 0 || c.pos.Cur == bound {
		c.Stop()
	}
	if c.dragging.Init {
		c.continuousCancel = c.sched.RequestFrame(c.moveLoop)
	} else {
		c.continuousCancel = nil
	}

	next := c.pos.Cur + now.Sub(c.move.lastTime).Seconds()*c.move.speed
	if !c.dragging.Init {
		next = round(next)
	}
	c.slideTo(next, false, false)

	// render only announces moveEnd when it had something to do.
	if !c.dragging.Init && c.pos.Cur == c.pos.Dest {
		c.emit(Event{Name: EventMoveEnd})
	}
	c.move.lastTime = now
}

// Stop ends continuous movement started by MoveBy.
func (c *Carousel) Stop() {
	if c.dragging.Source == SourceButton {
		c.dragging.Init = false
		c.dragging.Released = true
	}
}

// Set updates one option by name. Unknown names are ignored. The
// navigation mode is fixed at construction.
func (c *Carousel) Set(name string, value any) {
	c.opts.Set(name, value)
}

// Destroy unregisters the carousel, cancels every pending frame and timer,
// drops all handlers and clears what it pushed to the view.
func (c *Carousel) Destroy() {
	c.factory.unregister(c)

	cancel(&c.renderCancel)
	cancel(&c.continuousCancel)
	cancel(&c.historyCancel)
	cancel(&c.cycleCancel)
	cancel(&c.unlockCancel)

	if !c.dragging.Released && c.dragging.Source != SourceButton {
		c.view.SetDragged(c.dragging.Source, false)
	}
	for b := Button(0); b < buttonCount; b++ {
		c.view.SetButton(b, false, false)
	}
	if c.rel.ActiveItem >= 0 {
		c.view.SetItemActive(c.rel.ActiveItem, false)
	}
	c.view.SetPageCount(0)

	c.listeners = listeners{}
	c.layout = Layout{}
	c.last = newSyncCache()
	c.dragging = DraggingState{Released: true}
	c.clickLocked = false
	c.buttonHeld = false
	c.initialized = false
	carouselLog.Debug("destroyed", "handle", string(c.handle))
}

// Handle returns the frame handle.
func (c *Carousel) Handle() Handle { return c.handle }

// Initialized reports whether Init succeeded and Destroy has not run.
func (c *Carousel) Initialized() bool { return c.initialized }

// Pos returns the position state.
func (c *Carousel) Pos() Position { return c.pos }

// Rel returns the relative indexes at the destination.
func (c *Carousel) Rel() Relatives { return c.rel }

// Layout returns the current geometry.
func (c *Carousel) Layout() Layout { return c.layout }

// Items returns the item offsets.
func (c *Carousel) Items() []Item { return c.layout.Items }

// Pages returns the page offsets.
func (c *Carousel) Pages() []float64 { return c.layout.Pages }

// Elements returns the content in slidee order.
func (c *Carousel) Elements() []Element { return c.elements }

// Dragging returns the gesture state.
func (c *Carousel) Dragging() DraggingState { return c.dragging }

// Animation returns the transition in flight.
func (c *Carousel) Animation() Animation { return c.anim }

// Options returns the effective options.
func (c *Carousel) Options() Options { return c.opts }

// Navigation returns the navigation mode.
func (c *Carousel) Navigation() Navigation { return c.nav }

// Scrollbar returns the handle offset and size within the track.
func (c *Carousel) Scrollbar() (offset, size float64) { return c.hPos, c.hgeom.size }

// Animating reports whether the frame loop is running.
func (c *Carousel) Animating() bool { return c.renderCancel != nil }

// ButtonDisabled reports whether presses on b are currently ignored.
func (c *Carousel) ButtonDisabled(b Button) bool {
	if b < 0 || b >= buttonCount {
		return true
	}
	return c.last.disabled[b]
}
