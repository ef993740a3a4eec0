package carousel

// Key is a navigation key.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
)

// Key handles a keypress and reports whether it was used.
func (c *Carousel) Key(k Key) bool {
	if !c.initialized || c.opts.KeyboardNavBy == "" {
		return false
	}
	pages := c.opts.KeyboardNavBy == ByPages
	switch k {
	case KeyLeft:
		if pages {
			c.PrevPage()
		} else {
			c.Prev()
		}
	case KeyRight:
		if pages {
			c.NextPage()
		} else {
			c.Next()
		}
	default:
		return false
	}
	return true
}

// PressButton handles a press on one of the navigation controls. Forward
// and backward keep moving until ReleaseButtons.
func (c *Carousel) PressButton(b Button) bool {
	if !c.initialized || b < 0 || b >= buttonCount || c.last.disabled[b] {
		return false
	}
	switch b {
	case ButtonForward:
		c.buttonHeld = true
		c.MoveBy(c.opts.MoveBy)
	case ButtonBackward:
		c.buttonHeld = true
		c.MoveBy(-c.opts.MoveBy)
	case ButtonPrev:
		c.Prev()
	case ButtonNext:
		c.Next()
	case ButtonPrevPage:
		c.PrevPage()
	case ButtonNextPage:
		c.NextPage()
	}
	return true
}

// ReleaseButtons ends a held forward or backward press.
func (c *Carousel) ReleaseButtons() {
	if !c.buttonHeld {
		return
	}
	c.buttonHeld = false
	c.Stop()
}

// ClickScrollbar moves the content so the handle centers on x, measured
// from the start of the track. Clicks on the handle itself are not bar
// clicks and belong to PointerDown.
func (c *Carousel) ClickScrollbar(x float64) bool {
	if !c.initialized || !c.opts.ClickBar || c.hgeom.trackSize <= 0 {
		return false
	}
	c.slideTo(c.handleToSlidee(x-c.hgeom.size/2), false, false)
	return true
}

// OnHandle reports whether track offset x falls on the scrollbar handle.
func (c *Carousel) OnHandle(x float64) bool {
	return c.hgeom.trackSize > 0 && x >= c.hPos && x < c.hPos+c.hgeom.size
}

// Hover reports the pointer entering or leaving the frame.
func (c *Carousel) Hover(inside bool) {
	if !c.opts.PauseOnHover {
		return
	}
	if inside {
		c.Pause(2)
	} else {
		c.Resume(2)
	}
}
