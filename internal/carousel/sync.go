package carousel

// Button names the navigation controls a view may render.
type Button int

const (
	ButtonBackward Button = iota
	ButtonForward
	ButtonPrev
	ButtonNext
	ButtonPrevPage
	ButtonNextPage
	buttonCount
)

func (b Button) String() string {
	switch b {
	case ButtonBackward:
		return "backward"
	case ButtonForward:
		return "forward"
	case ButtonPrev:
		return "prev"
	case ButtonNext:
		return "next"
	case ButtonPrevPage:
		return "prevPage"
	case ButtonNextPage:
		return "nextPage"
	default:
		return "unknown"
	}
}

// DragSource is what a gesture is moving.
type DragSource int

const (
	SourceNone DragSource = iota
	SourceSlidee
	SourceHandle
	SourceButton
)

// View receives the derived state of a carousel. Calls only happen when a
// value actually changed.
type View interface {
	// SetTransform places the slidee so offset is at the frame's leading edge.
	SetTransform(offset float64)
	// SetHandle places the scrollbar handle.
	SetHandle(offset, size float64)
	SetPageCount(n int)
	SetActivePage(i int)
	SetItemActive(i int, active bool)
	// SetButton reports a control's state: marked is the disabled look,
	// disabled whether it stops accepting presses.
	SetButton(b Button, marked, disabled bool)
	SetDragged(source DragSource, dragged bool)
}

// NopView discards every update.
type NopView struct{}

func (NopView) SetTransform(float64)         {}
func (NopView) SetHandle(float64, float64)   {}
func (NopView) SetPageCount(int)             {}
func (NopView) SetActivePage(int)            {}
func (NopView) SetItemActive(int, bool)      {}
func (NopView) SetButton(Button, bool, bool) {}
func (NopView) SetDragged(DragSource, bool)  {}

// syncCache remembers the last value pushed to the view for each
// synchronizer.
type syncCache struct {
	transform    float64
	hasTransform bool
	handle       float64
	handleSize   float64
	hasHandle    bool
	page         int
	pageCount    int
	active       int

	// bound state bitsets: 1 at start, 2 at end.
	slideePosState   int
	fwdbwdState      int
	itemsButtonState int

	disabled [buttonCount]bool
}

func newSyncCache() syncCache {
	return syncCache{
		page:             -1,
		pageCount:        -1,
		active:           -1,
		slideePosState:   -1,
		fwdbwdState:      -1,
		itemsButtonState: -1,
	}
}

func (c *Carousel) syncTransform() {
	if c.last.hasTransform && c.last.transform == c.pos.Cur {
		return
	}
	c.last.transform, c.last.hasTransform = c.pos.Cur, true
	c.view.SetTransform(c.pos.Cur)
}

// syncScrollbar maps the position into handle-track space. While the
// handle itself (or a button) drives, the destination is shown instead of
// the lagging current position.
func (c *Carousel) syncScrollbar() {
	if c.hgeom.trackSize <= 0 {
		return
	}
	cur := 0.0
	if c.pos.Start != c.pos.End {
		p := c.pos.Cur
		if c.dragging.Init && !c.dragging.Slidee {
			p = c.pos.Dest
		}
		cur = (p - c.pos.Start) / (c.pos.End - c.pos.Start) * c.hgeom.end
	}
	c.hPos = within(round(cur), 0, c.hgeom.end)

	if c.last.hasHandle && c.last.handle == c.hPos && c.last.handleSize == c.hgeom.size {
		return
	}
	c.last.handle, c.last.handleSize, c.last.hasHandle = c.hPos, c.hgeom.size, true
	c.view.SetHandle(c.hPos, c.hgeom.size)
}

func (c *Carousel) syncPagesbar() {
	if len(c.layout.Pages) == 0 || c.last.page == c.rel.ActivePage {
		return
	}
	c.last.page = c.rel.ActivePage
	c.view.SetActivePage(c.rel.ActivePage)
	c.emit(Event{Name: EventActivePage, Index: c.rel.ActivePage})
}

func (c *Carousel) setButton(b Button, marked, disabled bool) {
	c.last.disabled[b] = disabled
	c.view.SetButton(b, marked, disabled)
}

// updateButtonsState disables controls at the bounds. Forward and backward
// keep their own cache: they only become really disabled once no gesture
// is running, since a held button has to keep receiving its release.
func (c *Carousel) updateButtonsState() {
	isStart := c.pos.Dest <= c.pos.Start
	isEnd := c.pos.Dest >= c.pos.End
	state := boundState(isStart, isEnd)

	if c.last.slideePosState != state {
		c.last.slideePosState = state
		c.setButton(ButtonPrevPage, isStart, isStart)
		c.setButton(ButtonNextPage, isEnd, isEnd)
		c.view.SetButton(ButtonBackward, isStart, c.last.disabled[ButtonBackward])
		c.view.SetButton(ButtonForward, isEnd, c.last.disabled[ButtonForward])
	}

	if c.last.fwdbwdState != state && c.dragging.Released {
		c.last.fwdbwdState = state
		c.setButton(ButtonBackward, isStart, isStart)
		c.setButton(ButtonForward, isEnd, isEnd)
	}

	if navigators[c.nav].itemNav && c.rel.ActiveItem >= 0 {
		isFirst := c.rel.ActiveItem == 0
		isLast := c.rel.ActiveItem >= len(c.layout.Items)-1
		itemsState := boundState(isFirst, isLast)
		if c.last.itemsButtonState != itemsState {
			c.last.itemsButtonState = itemsState
			c.setButton(ButtonPrev, isFirst, isFirst)
			c.setButton(ButtonNext, isLast, isLast)
		}
	}
}

func boundState(atStart, atEnd bool) int {
	s := 0
	if atStart {
		s |= 1
	}
	if atEnd {
		s |= 2
	}
	return s
}
