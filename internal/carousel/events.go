package carousel

import "strings"

// Event names.
const (
	EventLoad       = "load"
	EventChange     = "change"
	EventMove       = "move"
	EventMoveStart  = "moveStart"
	EventMoveEnd    = "moveEnd"
	EventActive     = "active"
	EventActivePage = "activePage"
	EventChangePage = "changePage"
	EventCycle      = "cycle"
	EventPause      = "pause"
	EventResume     = "resume"
)

// Event is passed to handlers. Index carries the active item or page;
// for changePage it is the new page and Previous the old one.
type Event struct {
	Name     string
	Index    int
	Previous int
}

// Handler receives carousel events.
type Handler func(c *Carousel, e Event)

// ListenerID identifies one registration of a handler under one name.
type ListenerID uint64

type listener struct {
	id ListenerID
	fn Handler
}

type listeners struct {
	next   ListenerID
	byName map[string][]listener
}

// add registers fn under every space-separated name.
func (l *listeners) add(names string, fn Handler) []ListenerID {
	if fn == nil {
		return nil
	}
	if l.byName == nil {
		l.byName = map[string][]listener{}
	}
	var ids []ListenerID
	for _, name := range strings.Fields(names) {
		l.next++
		l.byName[name] = append(l.byName[name], listener{id: l.next, fn: fn})
		ids = append(ids, l.next)
	}
	return ids
}

// remove drops the given registrations under names, or all of them when no
// ids are given.
func (l *listeners) remove(names string, ids ...ListenerID) {
	for _, name := range strings.Fields(names) {
		if len(ids) == 0 {
			delete(l.byName, name)
			continue
		}
		l.byName[name] = without(l.byName[name], ids)
	}
}

// removeIDs drops registrations under any name.
func (l *listeners) removeIDs(ids []ListenerID) {
	for name, ls := range l.byName {
		l.byName[name] = without(ls, ids)
	}
}

func without(ls []listener, ids []ListenerID) []listener {
	out := ls[:0:0]
	for _, ln := range ls {
		drop := false
		for _, id := range ids {
			if ln.id == id {
				drop = true
				break
			}
		}
		if !drop {
			out = append(out, ln)
		}
	}
	return out
}

// snapshot copies the handlers for name so dispatch survives handlers that
// unsubscribe themselves.
func (l *listeners) snapshot(name string) []listener {
	return append([]listener(nil), l.byName[name]...)
}

// On registers fn for each space-separated event name.
func (c *Carousel) On(names string, fn Handler) []ListenerID {
	return c.listeners.add(names, fn)
}

// Once registers fn to run on the first of names to fire, then unregisters
// it from all of them.
func (c *Carousel) Once(names string, fn Handler) []ListenerID {
	var ids []ListenerID
	ids = c.listeners.add(names, func(c *Carousel, e Event) {
		c.listeners.removeIDs(ids)
		fn(c, e)
	})
	return ids
}

// Off removes the listed registrations, or every handler of names when ids
// is empty.
func (c *Carousel) Off(names string, ids ...ListenerID) {
	c.listeners.remove(names, ids...)
}

func (c *Carousel) emit(e Event) {
	for _, ln := range c.listeners.snapshot(e.Name) {
		ln.fn(c, e)
	}
}
