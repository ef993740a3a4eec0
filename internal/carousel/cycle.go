package carousel

// defaultPausePriority is what Pause(0) pauses with. Drags pause with 1 and
// hover with 2, so neither can lift a pause requested through the API.
const defaultPausePriority = 100

// Resume (re)starts the cycling timer. A non-zero priority only lifts
// pauses of the same or lower priority; zero lifts any.
func (c *Carousel) Resume(priority int) {
	if !c.initialized || c.opts.CycleBy == "" || c.opts.CycleInterval <= 0 {
		return
	}
	if c.opts.CycleBy == ByItems && (len(c.layout.Items) == 0 || c.rel.ActiveItem < 0) {
		return
	}
	if priority != 0 && priority < c.paused {
		return
	}

	c.paused = 0
	if c.cycleCancel != nil {
		cancel(&c.cycleCancel)
	} else {
		c.emit(Event{Name: EventResume})
	}
	c.cycleCancel = c.sched.AfterFunc(c.opts.CycleInterval, c.cycle)
}

// cycle advances by one unit. The fired timer stays recorded so the next
// reset does not announce a resume.
func (c *Carousel) cycle() {
	c.emit(Event{Name: EventCycle})
	switch c.opts.CycleBy {
	case ByItems:
		next := c.rel.ActiveItem + 1
		if c.rel.ActiveItem >= len(c.layout.Items)-1 {
			next = 0
		}
		c.Activate(next, false)
	case ByPages:
		next := c.rel.ActivePage + 1
		if c.rel.ActivePage >= len(c.layout.Pages)-1 {
			next = 0
		}
		c.ActivatePage(next, false)
	}
}

// Pause stops cycling. Pauses of lower priority than the current one are
// ignored; zero means the default priority.
func (c *Carousel) Pause(priority int) {
	if priority != 0 && priority < c.paused {
		return
	}
	if priority == 0 {
		priority = defaultPausePriority
	}
	c.paused = priority
	if c.cycleCancel != nil {
		cancel(&c.cycleCancel)
		c.emit(Event{Name: EventPause})
	}
}

// Toggle pauses a running cycle or resumes a stopped one.
func (c *Carousel) Toggle() {
	if c.cycleCancel != nil {
		c.Pause(0)
	} else {
		c.Resume(0)
	}
}

// Paused returns the current pause priority, 0 when not paused.
func (c *Carousel) Paused() int { return c.paused }

// Cycling reports whether the cycle timer is armed.
func (c *Carousel) Cycling() bool { return c.cycleCancel != nil }

func (c *Carousel) resetCycle() {
	if c.dragging.Released && c.paused == 0 {
		c.Resume(0)
	}
}
