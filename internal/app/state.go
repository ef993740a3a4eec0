// state.go remembers where each deck was left.
//
// The resume point (the active card under item navigation, the scroll
// offset otherwise) is saved on quit and read back when the deck is opened
// again. A saved point is only used while the deck still has the same
// number of cards; otherwise the carousel starts from the beginning.
package app

import (
	"github.com/treykane/cli-carousel/internal/carousel"
	"github.com/treykane/cli-carousel/internal/store"
)

// loadResumePoint reads the saved state of the current deck, if any.
func (m *Model) loadResumePoint() {
	if m.store == nil {
		return
	}
	st, ok, err := m.store.Load(m.deck.Dir)
	if err != nil {
		appLog.Warn("load resume point", "deck", m.deck.Dir, "error", err)
		return
	}
	if !ok || st.Items != len(m.deck.Cards) {
		return
	}
	m.resume = &st
}

// resumeStart turns the saved state into a StartAt value.
func (m *Model) resumeStart() *float64 {
	if m.resume == nil {
		return nil
	}
	var v float64
	if m.cfg.Carousel.Navigation() == carousel.NavFree {
		v = m.resume.Position
	} else {
		if m.resume.ActiveItem < 0 {
			return nil
		}
		v = float64(m.resume.ActiveItem)
	}
	return &v
}

// saveResumePoint stores where the carousel is now.
func (m *Model) saveResumePoint() {
	if m.store == nil || m.car == nil {
		return
	}
	st := store.State{
		Deck:       m.deck.Dir,
		ActiveItem: m.car.Rel().ActiveItem,
		Position:   m.car.Pos().Dest,
		Items:      len(m.car.Elements()),
	}
	if err := m.store.Save(st); err != nil {
		m.setStatusError("Could not save position", err, "deck", m.deck.Dir)
	}
}
