// watcher.go polls the deck directory for slides added, removed or edited
// outside the app.
//
// Every watch interval (default 2 s) the directory is snapshotted (name,
// modification time and size of every slide). When the snapshot differs
// from the last one the deck is refreshed and the differences are applied
// to the running carousel: removed cards first, then new cards in deck
// order, then a reload so edited cards are re-measured. The strip's order
// may differ from the deck's once cards were hidden or moved, so a new card
// goes right after the nearest card that precedes it in the deck and is
// still on the strip. Cards keep their
// identity across a refresh, so the active card stays active.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/cli-carousel/internal/deck"
)

// deckWatchTickMsg is emitted by the periodic poll timer.
type deckWatchTickMsg struct{}

// deckWatchCmd queues the next poll.
func (m *Model) deckWatchCmd() tea.Cmd {
	return tea.Tick(m.watchInterval, func(time.Time) tea.Msg {
		return deckWatchTickMsg{}
	})
}

// handleDeckWatchTick compares a fresh snapshot with the last one and
// refreshes the deck when they differ. The next poll is always scheduled.
func (m *Model) handleDeckWatchTick() (tea.Model, tea.Cmd) {
	snapshot, err := deck.Scan(m.deck.Dir)
	if err != nil {
		appLog.Warn("scan deck", "dir", m.deck.Dir, "error", err)
		return m, m.deckWatchCmd()
	}
	if m.snapshot != nil && m.snapshot.Equal(snapshot) {
		return m, m.deckWatchCmd()
	}
	m.snapshot = snapshot
	m.reloadDeck("Auto-refreshed (deck changed on disk)")
	return m, m.deckWatchCmd()
}

// reloadDeck re-reads the deck and applies the changes to the carousel.
func (m *Model) reloadDeck(status string) {
	changes, err := m.deck.Refresh()
	if err != nil {
		m.setStatusError("Deck reload failed", err, "dir", m.deck.Dir)
		return
	}
	m.applyDeckChanges(changes)
	m.status = status
}

// applyDeckChanges mirrors a deck refresh in the carousel.
func (m *Model) applyDeckChanges(ch deck.Changes) {
	if m.car == nil || ch.Empty() {
		return
	}
	for _, c := range ch.Removed {
		m.car.Remove(c)
	}
	for _, ins := range ch.Inserted {
		m.car.Add(ins.Card, m.stripIndexFor(ins.Index))
	}
	m.car.Reload()
}

// stripIndexFor maps a position in the refreshed deck to the strip index a
// new card should take there: after the closest earlier deck card still on
// the strip, or first when there is none.
func (m *Model) stripIndexFor(deckIndex int) int {
	cards := m.deck.Cards
	for i := min(deckIndex, len(cards)) - 1; i >= 0; i-- {
		if idx := m.car.IndexOf(cards[i]); idx >= 0 {
			return idx + 1
		}
	}
	return 0
}
