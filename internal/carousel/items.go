package carousel

// Add inserts el before index, or appends it when index is out of range.
// Elements are compared by identity, so they should be pointers.
func (c *Carousel) Add(el Element, index int) {
	if index < 0 || index >= len(c.elements) {
		index = len(c.elements)
	}
	c.elements = append(c.elements, nil)
	copy(c.elements[index+1:], c.elements[index:])
	c.elements[index] = el

	if navigators[c.nav].itemNav && c.rel.ActiveItem >= 0 && index <= c.rel.ActiveItem {
		c.rel.ActiveItem++
		c.last.active = c.rel.ActiveItem
	}
	c.load(false)
}

// Remove removes el. It reports whether el was found.
func (c *Carousel) Remove(el Element) bool {
	idx := c.IndexOf(el)
	if idx < 0 {
		return false
	}
	return c.RemoveAt(idx)
}

// RemoveAt removes the item at i; negative values count from the end.
// Removing the active item activates whichever item takes its place.
func (c *Carousel) RemoveAt(i int) bool {
	idx := c.relativeIndex(i)
	if idx < 0 {
		return false
	}
	c.elements = append(c.elements[:idx], c.elements[idx+1:]...)

	if !navigators[c.nav].itemNav {
		c.load(false)
		return true
	}

	reactivate := idx == c.rel.ActiveItem
	if c.rel.ActiveItem >= 0 && idx < c.rel.ActiveItem {
		c.rel.ActiveItem--
		c.last.active = c.rel.ActiveItem
	}
	if c.rel.ActiveItem >= len(c.elements) {
		c.rel.ActiveItem = len(c.elements) - 1
	}

	c.load(false)

	if reactivate {
		c.last.active = -1
		c.activate(c.rel.ActiveItem, true)
	}
	return true
}

// IndexOf returns the index of el, or -1.
func (c *Carousel) IndexOf(el Element) int {
	for i, e := range c.elements {
		if e == el {
			return i
		}
	}
	return -1
}

// MoveBefore moves item so it sits right before anchor. Both accept
// negative indexes counted from the end.
func (c *Carousel) MoveBefore(item, anchor int) bool {
	return c.moveItem(item, anchor, false)
}

// MoveAfter moves item so it sits right after anchor.
func (c *Carousel) MoveAfter(item, anchor int) bool {
	return c.moveItem(item, anchor, true)
}

func (c *Carousel) moveItem(item, anchor int, after bool) bool {
	item = c.relativeIndex(item)
	anchor = c.relativeIndex(anchor)
	if item < 0 || anchor < 0 || item == anchor {
		return false
	}
	// Already in place.
	if after && anchor == item-1 || !after && anchor == item+1 {
		return false
	}

	up := item > anchor
	var dest, shiftStart, shiftEnd int
	switch {
	case after && up:
		dest = anchor + 1
	case after:
		dest = anchor
	case up:
		dest = anchor
	default:
		dest = anchor - 1
	}
	if up {
		shiftEnd = item
		shiftStart = anchor - 1
		if after {
			shiftStart = anchor
		}
	} else {
		shiftStart = item
		shiftEnd = anchor
		if after {
			shiftEnd = anchor + 1
		}
	}

	el := c.elements[item]
	c.elements = append(c.elements[:item], c.elements[item+1:]...)
	c.elements = append(c.elements, nil)
	copy(c.elements[dest+1:], c.elements[dest:])
	c.elements[dest] = el

	if navigators[c.nav].itemNav && c.rel.ActiveItem >= 0 {
		switch a := c.rel.ActiveItem; {
		case a == item:
			c.rel.ActiveItem = dest
			c.last.active = dest
		case a > shiftStart && a < shiftEnd:
			if up {
				c.rel.ActiveItem++
			} else {
				c.rel.ActiveItem--
			}
			c.last.active = c.rel.ActiveItem
		}
	}

	c.load(false)
	return true
}
