package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/cli-carousel/internal/carousel"
	"github.com/treykane/cli-carousel/internal/deck"
)

// handleKey dispatches a key press through the keybinding table.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.actionForKey(msg.String())
	if m.showHelp && action != actionHelp && action != actionQuit {
		if msg.String() == "esc" {
			m.showHelp = false
		}
		return m, nil
	}

	switch action {
	case actionQuit:
		return m.quit()
	case actionHelp:
		m.showHelp = !m.showHelp
		return m, nil
	case actionReload:
		m.handleReload()
		return m, nil
	}

	if m.car == nil {
		return m, nil
	}
	switch action {
	case actionBack:
		m.step(carousel.KeyLeft)
	case actionForward:
		m.step(carousel.KeyRight)
	case actionPrevPage:
		m.car.PrevPage()
	case actionNextPage:
		m.car.NextPage()
	case actionFirst:
		m.jumpTo(0)
	case actionLast:
		m.jumpTo(len(m.car.Items()) - 1)
	case actionCenter:
		if a := m.car.Rel().ActiveItem; a >= 0 {
			m.car.ToCenterItem(a, false)
		} else {
			m.car.ToCenter(false)
		}
	case actionCycle:
		m.toggleCycle()
	case actionMoveLeft:
		m.moveActiveCard(-1)
	case actionMoveRight:
		m.moveActiveCard(1)
	case actionHide:
		m.hideActiveCard()
	}
	return m, nil
}

// step handles the back and forward keys. Free navigation has no items to
// step through, so item steps become page steps there.
func (m *Model) step(k carousel.Key) {
	opts := m.car.Options()
	if m.car.Navigation() == carousel.NavFree && opts.KeyboardNavBy == carousel.ByItems {
		if k == carousel.KeyLeft {
			m.car.PrevPage()
		} else {
			m.car.NextPage()
		}
		return
	}
	if !m.car.Key(k) {
		m.status = "Keyboard navigation is off (carousel.keyboardNavBy)"
	}
}

// jumpTo activates card i under item navigation and slides to the matching
// end of the strip otherwise.
func (m *Model) jumpTo(i int) {
	if m.car.Navigation() != carousel.NavFree {
		m.car.Activate(i, false)
		return
	}
	if i <= 0 {
		m.car.ToStart(false)
	} else {
		m.car.ToEnd(false)
	}
}

func (m *Model) toggleCycle() {
	if m.car.Options().CycleBy == "" {
		m.status = "Cycling is off (carousel.cycleBy)"
		return
	}
	m.car.Toggle()
}

// moveActiveCard swaps the active card with its neighbour in direction dir.
func (m *Model) moveActiveCard(dir int) {
	a := m.car.Rel().ActiveItem
	if a < 0 {
		m.status = "No active card"
		return
	}
	var moved bool
	if dir < 0 {
		moved = a > 0 && m.car.MoveBefore(a, a-1)
	} else {
		moved = a < len(m.car.Items())-1 && m.car.MoveAfter(a, a+1)
	}
	if !moved {
		m.status = "Card is already at the edge"
		return
	}
	m.car.Activate(m.car.Rel().ActiveItem, false)
}

// hideActiveCard takes the active card out of the strip. Reloading the deck
// brings it back.
func (m *Model) hideActiveCard() {
	a := m.car.Rel().ActiveItem
	els := m.car.Elements()
	if a < 0 || a >= len(els) {
		m.status = "No active card"
		return
	}
	hidden := els[a]
	if !m.car.Remove(hidden) {
		return
	}
	title := ""
	if card, ok := hidden.(*deck.Card); ok {
		title = card.Title
	}
	m.statusf("Hid %q (%s to restore)", title, m.primaryActionKey(actionReload, "r"))
}

// handleReload re-reads the deck and rebuilds the strip from it, bringing
// back hidden cards and undoing moves.
func (m *Model) handleReload() {
	if _, err := m.deck.Refresh(); err != nil {
		m.setStatusError("Deck reload failed", err, "dir", m.deck.Dir)
		return
	}
	if snap, err := deck.Scan(m.deck.Dir); err == nil {
		m.snapshot = snap
	}
	if m.width > 0 {
		start := m.currentStart()
		if m.car != nil {
			m.car.Destroy()
		}
		m.buildCarousel(cardElements(m.deck.Cards), start)
	}
	m.statusf("Reloaded %d cards", len(m.deck.Cards))
}

// quit saves the resume point, tears the carousel down and exits.
func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.saveResumePoint()
	if m.car != nil {
		m.car.Destroy()
	}
	return m, tea.Quit
}
