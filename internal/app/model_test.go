package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/treykane/cli-carousel/internal/carousel"
	"github.com/treykane/cli-carousel/internal/config"
	"github.com/treykane/cli-carousel/internal/deck"
	"github.com/treykane/cli-carousel/internal/store"
)

func TestFirstResizeBuildsCarousel(t *testing.T) {
	m := newTestModel(t, writeDeck(t, 5), testConfig(), nil)

	if got := len(m.car.Items()); got != 5 {
		t.Fatalf("expected 5 items, got %d", got)
	}
	if pos := m.car.Pos(); pos.Start != 0 || pos.End != 58 {
		t.Fatalf("expected bounds [0, 58], got [%v, %v]", pos.Start, pos.End)
	}
	if m.strip.pageCount != 3 {
		t.Fatalf("expected 3 pages pushed to the view, got %d", m.strip.pageCount)
	}
	if m.strip.handleSize != 23 {
		t.Fatalf("expected a 23-cell handle, got %v", m.strip.handleSize)
	}
}

func TestKeyNavigationActivatesAndSlides(t *testing.T) {
	m := newTestModel(t, writeDeck(t, 5), testConfig(), nil)

	press(m, "right")
	if got := m.car.Rel().ActiveItem; got != 0 {
		t.Fatalf("expected the first press to activate card 0, got %d", got)
	}
	press(m, "l")
	if got := m.car.Rel().ActiveItem; got != 1 {
		t.Fatalf("expected card 1 active, got %d", got)
	}
	if m.car.Pos().Cur != 22 || m.strip.offset != 22 {
		t.Fatalf("expected the strip at 22, got cur %v view %v", m.car.Pos().Cur, m.strip.offset)
	}
	if m.strip.activeCard != m.car.Elements()[1] {
		t.Fatalf("expected the view to mark card 1 active")
	}

	press(m, "left")
	if got := m.car.Rel().ActiveItem; got != 0 {
		t.Fatalf("expected back to card 0, got %d", got)
	}
}

func TestJumpKeys(t *testing.T) {
	m := newTestModel(t, writeDeck(t, 5), testConfig(), nil)

	press(m, "G")
	if got := m.car.Rel().ActiveItem; got != 4 {
		t.Fatalf("expected the last card active, got %d", got)
	}
	if got := m.car.Pos().Dest; got != 58 {
		t.Fatalf("expected the end bound, got %v", got)
	}
	press(m, "home")
	if got := m.car.Rel().ActiveItem; got != 0 {
		t.Fatalf("expected the first card active, got %d", got)
	}
	if got := m.car.Pos().Dest; got != 0 {
		t.Fatalf("expected the start bound, got %v", got)
	}
}

func TestPageKeys(t *testing.T) {
	m := newTestModel(t, writeDeck(t, 5), testConfig(), nil)

	press(m, "]")
	if got := m.car.Pos().Dest; got != 44 {
		t.Fatalf("expected page 1 at 44, got %v", got)
	}
	press(m, "]")
	if got := m.car.Pos().Dest; got != 58 {
		t.Fatalf("expected page 2 at 58, got %v", got)
	}
	if m.strip.activePage != 2 {
		t.Fatalf("expected the view on page 2, got %d", m.strip.activePage)
	}
	press(m, "[")
	if got := m.car.Pos().Dest; got != 44 {
		t.Fatalf("expected back on page 1, got %v", got)
	}
}

func TestKeyboardNavigationOff(t *testing.T) {
	cfg := testConfig()
	cfg.Carousel.KeyboardNavBy = ""
	m := newTestModel(t, writeDeck(t, 5), cfg, nil)

	press(m, "right")
	if got := m.car.Rel().ActiveItem; got != -1 {
		t.Fatalf("expected no activation, got %d", got)
	}
	if !strings.Contains(m.status, "Keyboard navigation is off") {
		t.Fatalf("expected a status hint, got %q", m.status)
	}
}

func TestFreeNavigationStepsByPage(t *testing.T) {
	cfg := testConfig()
	cfg.Carousel.ItemNav = ""
	m := newTestModel(t, writeDeck(t, 5), cfg, nil)

	press(m, "right")
	if got := m.car.Pos().Dest; got != 50 {
		t.Fatalf("expected one frame forward, got %v", got)
	}
	press(m, "end")
	if got := m.car.Pos().Dest; got != 58 {
		t.Fatalf("expected the end, got %v", got)
	}
}

func TestMoveAndHideCards(t *testing.T) {
	m := newTestModel(t, writeDeck(t, 5), testConfig(), nil)
	first := m.car.Elements()[0]

	press(m, "right")
	press(m, ">")
	if m.car.Elements()[1] != first {
		t.Fatalf("expected the active card to move right")
	}
	if got := m.car.Rel().ActiveItem; got != 1 {
		t.Fatalf("expected the moved card to stay active, got %d", got)
	}
	if m.strip.activeCard != first {
		t.Fatalf("expected the view to follow the moved card")
	}

	press(m, "x")
	if got := len(m.car.Elements()); got != 4 {
		t.Fatalf("expected 4 cards after hiding, got %d", got)
	}
	if m.car.IndexOf(first) != -1 {
		t.Fatalf("expected the hidden card to be gone")
	}
	if !strings.Contains(m.status, `Hid "Slide 1"`) {
		t.Fatalf("expected a status about the hidden card, got %q", m.status)
	}

	press(m, "r")
	if got := len(m.car.Elements()); got != 5 {
		t.Fatalf("expected reload to bring the card back, got %d", got)
	}
	if m.car.Elements()[0] != first {
		t.Fatalf("expected reload to restore the deck order")
	}
	if got := m.factory.Handles(); len(got) != 1 {
		t.Fatalf("expected exactly one live carousel, got %v", got)
	}
}

func TestMoveCardAtEdge(t *testing.T) {
	m := newTestModel(t, writeDeck(t, 3), testConfig(), nil)
	press(m, "right")
	press(m, "<")
	if !strings.Contains(m.status, "edge") {
		t.Fatalf("expected an edge status, got %q", m.status)
	}
}

func TestCycleAndToggle(t *testing.T) {
	cfg := testConfig()
	cfg.Carousel.CycleBy = carousel.ByItems
	cfg.Carousel.CycleInterval = time.Second
	m := newTestModel(t, writeDeck(t, 5), cfg, nil)

	press(m, "right")
	if !m.car.Cycling() {
		t.Fatalf("expected cycling once a card is active")
	}
	fireTimers(m)
	if got := m.car.Rel().ActiveItem; got != 1 {
		t.Fatalf("expected the cycle to advance to card 1, got %d", got)
	}

	press(m, "space")
	if m.car.Cycling() {
		t.Fatalf("expected space to pause")
	}
	if m.status != "Paused" {
		t.Fatalf("expected a paused status, got %q", m.status)
	}
	press(m, "p")
	if !m.car.Cycling() || m.status != "Cycling" {
		t.Fatalf("expected p to resume, status %q", m.status)
	}
}

func TestCycleOff(t *testing.T) {
	m := newTestModel(t, writeDeck(t, 3), testConfig(), nil)
	press(m, "space")
	if !strings.Contains(m.status, "Cycling is off") {
		t.Fatalf("expected a status hint, got %q", m.status)
	}
}

func TestQuitSavesAndResumes(t *testing.T) {
	dir := writeDeck(t, 5)
	st := store.Open(t.TempDir())

	m := newTestModel(t, dir, testConfig(), st)
	press(m, "right")
	press(m, "right")
	press(m, "right")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected a quit command")
	}
	if m.car.Initialized() {
		t.Fatalf("expected quit to destroy the carousel")
	}

	saved, ok, err := st.Load(dir)
	if err != nil || !ok {
		t.Fatalf("expected a saved state, ok=%v err=%v", ok, err)
	}
	if saved.ActiveItem != 2 || saved.Items != 5 {
		t.Fatalf("unexpected saved state %+v", saved)
	}

	again := newTestModel(t, dir, testConfig(), st)
	if got := again.car.Rel().ActiveItem; got != 2 {
		t.Fatalf("expected to resume on card 2, got %d", got)
	}
	if got := again.car.Pos().Dest; got != 44 {
		t.Fatalf("expected to resume at 44, got %v", got)
	}
}

func TestResumeIgnoredWhenDeckChanged(t *testing.T) {
	dir := writeDeck(t, 5)
	st := store.Open(t.TempDir())
	if err := st.Save(store.State{Deck: dir, ActiveItem: 3, Items: 4}); err != nil {
		t.Fatalf("save: %v", err)
	}
	m := newTestModel(t, dir, testConfig(), st)
	if got := m.car.Rel().ActiveItem; got != -1 {
		t.Fatalf("expected a fresh start, got active %d", got)
	}
}

func TestBreakpointRebuildsCarousel(t *testing.T) {
	cfg := testConfig()
	cfg.Carousel.Responsive = []carousel.Breakpoint{
		{Breakpoint: 40, Settings: map[string]any{"visibleItems": 1}},
	}
	m := newTestModel(t, writeDeck(t, 5), cfg, nil)
	press(m, "right")
	press(m, "right")
	old := m.car

	m.Update(tea.WindowSizeMsg{Width: 45, Height: testHeight})
	pump(m)
	if m.car != old {
		t.Fatalf("expected a plain resize to keep the carousel")
	}

	m.Update(tea.WindowSizeMsg{Width: 30, Height: testHeight})
	pump(m)
	if m.car == old || old.Initialized() {
		t.Fatalf("expected crossing the breakpoint to rebuild the carousel")
	}
	if got := m.car.Layout().ItemSize; got != 30 {
		t.Fatalf("expected one card per frame, got item size %d", got)
	}
	if got := m.car.Rel().ActiveItem; got != 1 {
		t.Fatalf("expected the active card to survive, got %d", got)
	}
	if got := m.factory.Handles(); len(got) != 1 {
		t.Fatalf("expected exactly one live carousel, got %v", got)
	}
}

func TestDeckWatchAppliesChanges(t *testing.T) {
	dir := writeDeck(t, 3)
	m := newTestModel(t, dir, testConfig(), nil)
	press(m, "right")
	press(m, "right")
	active := m.car.Elements()[1]

	writeSlide(t, dir, "00.md", "# Intro\n")
	_, cmd := m.Update(deckWatchTickMsg{})
	if cmd == nil {
		t.Fatalf("expected the next poll to be scheduled")
	}
	pump(m)
	if got := len(m.car.Elements()); got != 4 {
		t.Fatalf("expected the new slide to be added, got %d cards", got)
	}
	if card := m.car.Elements()[0].(*deck.Card); card.Title != "Intro" {
		t.Fatalf("expected the new slide first, got %q", card.Title)
	}
	if m.car.Elements()[m.car.Rel().ActiveItem] != active {
		t.Fatalf("expected the same card to stay active")
	}

	if err := os.Remove(filepath.Join(dir, "03.md")); err != nil {
		t.Fatalf("remove: %v", err)
	}
	m.Update(deckWatchTickMsg{})
	pump(m)
	if got := len(m.car.Elements()); got != 3 {
		t.Fatalf("expected the removed slide to go, got %d cards", got)
	}

	before := m.car
	m.Update(deckWatchTickMsg{})
	if m.car != before || len(m.car.Elements()) != 3 {
		t.Fatalf("expected an unchanged deck to leave the carousel alone")
	}
}

func TestViewShowsStripAndControls(t *testing.T) {
	m := newTestModel(t, writeDeck(t, 5), testConfig(), nil)
	press(m, "right")

	view := ansi.Strip(m.View())
	lines := strings.Split(view, "\n")
	if len(lines) != testHeight {
		t.Fatalf("expected %d lines, got %d", testHeight, len(lines))
	}
	for i, line := range lines {
		if w := visibleWidth(line); w != testWidth {
			t.Fatalf("line %d: expected width %d, got %d (%q)", i, testWidth, w, line)
		}
	}
	for _, want := range []string{"card 1/5", "page 1/3", "Slide 1", "[next ›]", "●"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestViewEmptyDeck(t *testing.T) {
	m := newTestModel(t, t.TempDir(), testConfig(), nil)
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "No slides") {
		t.Fatalf("expected an empty deck message, got:\n%s", view)
	}
}

func TestHelpOverlay(t *testing.T) {
	m := newTestModel(t, writeDeck(t, 3), testConfig(), nil)
	press(m, "?")
	if !m.showHelp {
		t.Fatalf("expected help to open")
	}
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "next page") {
		t.Fatalf("expected the full key reference, got:\n%s", view)
	}
	press(m, "right")
	if m.car.Rel().ActiveItem != -1 {
		t.Fatalf("expected keys to be swallowed while help is open")
	}
	press(m, "esc")
	if m.showHelp {
		t.Fatalf("expected esc to close help")
	}
}

func TestUpdateIgnoresTerminalResponses(t *testing.T) {
	m := newTestModel(t, writeDeck(t, 3), testConfig(), nil)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("]11;rgb:1a1a/1b1b/2c2c\x1b\\")})
	if m.car.Pos().Dest != 0 || m.showHelp {
		t.Fatalf("expected the OSC response to be ignored")
	}
}

func TestModelWithoutCarouselIgnoresInput(t *testing.T) {
	d, err := deck.Load(writeDeck(t, 2), deck.Options{Width: testCardWidth, Style: "notty"})
	if err != nil {
		t.Fatalf("load deck: %v", err)
	}
	m := New(Options{Config: config.Config{}, Deck: d})
	if got := m.View(); got != "Loading..." {
		t.Fatalf("expected a loading view before the first size, got %q", got)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	mouse(m, tea.MouseActionPress, tea.MouseButtonLeft, 3, 3)
	if m.car != nil {
		t.Fatalf("expected no carousel before the first size")
	}
	if m.watchInterval != DeckWatchInterval || m.sched.interval != time.Second/DefaultFrameRate {
		t.Fatalf("expected defaults for a zero config")
	}
}
