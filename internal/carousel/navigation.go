package carousel

// Position holds the scroll offsets. Dest is authoritative; Cur converges
// to it frame by frame.
type Position struct {
	Start  float64
	End    float64
	Center float64
	Cur    float64
	Dest   float64
}

// Relatives describe which items and page are visible or active at a
// position. ActiveItem is -1 while nothing is active.
type Relatives struct {
	FirstItem  int
	LastItem   int
	CenterItem int
	ActiveItem int
	ActivePage int
}

// navigator is the per-mode behaviour of the target resolver.
type navigator struct {
	itemNav  bool
	centered bool
	// pageOffset is how far past a page start a position still counts as
	// being on that page.
	pageOffset func(frame float64) float64
	// align returns the resting offset for a target inside the bounds.
	align func(items []Item, rel Relatives) float64
}

var navigators = map[Navigation]navigator{
	NavFree: {
		pageOffset: halfFrame,
	},
	NavBasic: {
		itemNav:    true,
		pageOffset: halfFrame,
		align:      alignFirstStart,
	},
	NavCentered: {
		itemNav:    true,
		centered:   true,
		pageOffset: halfFrame,
		align:      alignCenterItem,
	},
	NavForceCentered: {
		itemNav:    true,
		centered:   true,
		pageOffset: func(float64) float64 { return 0 },
		align:      alignCenterItem,
	},
}

func halfFrame(frame float64) float64 { return frame / 2 }

func alignFirstStart(items []Item, rel Relatives) float64 {
	return items[rel.FirstItem].Start
}

func alignCenterItem(items []Item, rel Relatives) float64 {
	return items[rel.CenterItem].Center
}

// relativesAt scans pages and items for the given position. ActiveItem is
// left at -1; callers keep their own.
func relativesAt(l Layout, nav Navigation, pos float64) Relatives {
	pos = within(pos, l.Start, l.End)
	nv := navigators[nav]
	rel := Relatives{ActiveItem: -1}

	offset := nv.pageOffset(l.FrameSize)
	for p := range l.Pages {
		if pos >= l.End || p == len(l.Pages)-1 {
			rel.ActivePage = len(l.Pages) - 1
			break
		}
		if pos <= l.Pages[p]+offset {
			rel.ActivePage = p
			break
		}
	}

	if !nv.itemNav {
		return rel
	}

	first, center, last := -1, -1, -1
	for i, it := range l.Items {
		if first < 0 && pos <= it.Start+it.Half {
			first = i
		}
		if center < 0 && pos <= it.Center+it.Half {
			center = i
		}
		if i == len(l.Items)-1 || pos <= it.End+it.Half {
			last = i
			break
		}
	}
	if first < 0 {
		first = 0
	}
	if center < 0 {
		center = first
	}
	if last < 0 {
		last = center
	}
	rel.FirstItem, rel.CenterItem, rel.LastItem = first, center, last
	return rel
}

// bound clamps target into [start, end]. With elastic set, overflow is
// compressed to a sixth instead.
func bound(target, start, end float64, elastic bool) float64 {
	if !elastic {
		return within(target, start, end)
	}
	switch {
	case target > end:
		return end + (target-end)/6
	case target < start:
		return start + (target-start)/6
	}
	return target
}

// resolve turns a requested offset into a destination: item alignment away
// from the extremes, then bounds.
func (c *Carousel) resolve(target float64, skipAlign bool) float64 {
	nv := navigators[c.nav]
	if nv.itemNav && c.dragging.Released && !skipAlign && len(c.layout.Items) > 0 {
		rel := relativesAt(c.layout, c.nav, target)
		if target > c.pos.Start && target < c.pos.End {
			target = nv.align(c.layout.Items, rel)
		}
		if c.nav == NavForceCentered && c.opts.ActivateMiddle {
			c.activate(rel.CenterItem, false)
		}
	}
	elastic := c.dragging.Init && c.dragging.Slidee && c.opts.ElasticBounds
	return bound(target, c.pos.Start, c.pos.End, elastic)
}

// updateRelatives refreshes the visible-item indexes for the destination,
// keeping the active item.
func (c *Carousel) updateRelatives() {
	active := c.rel.ActiveItem
	c.rel = relativesAt(c.layout, c.nav, c.pos.Dest)
	c.rel.ActiveItem = active
}
