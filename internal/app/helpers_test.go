package app

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/treykane/cli-carousel/internal/carousel"
	"github.com/treykane/cli-carousel/internal/config"
	"github.com/treykane/cli-carousel/internal/deck"
	"github.com/treykane/cli-carousel/internal/store"
)

// With 20-cell cards and a 2-cell gap, card i starts at 22*i. Five cards
// in a 50-cell frame give bounds [0, 58] and pages at 0, 44 and 58.
const (
	testWidth     = 50
	testHeight    = 20
	testCardWidth = 20
)

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func writeDeck(t *testing.T, n int) string {
	t.Helper()
	dir := t.TempDir()
	for i := 1; i <= n; i++ {
		writeSlide(t, dir, fmt.Sprintf("%02d.md", i), fmt.Sprintf("# Slide %d\n\nBody of slide %d.\n", i, i))
	}
	return dir
}

func writeSlide(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write slide: %v", err)
	}
}

func testCarouselOptions() carousel.Options {
	o := carousel.DefaultOptions()
	o.ItemNav = "basic"
	o.ActivateOn = "click"
	o.ActivatePageOn = "click"
	o.KeyboardNavBy = carousel.ByItems
	o.ScrollBy = 1
	o.MouseDragging = true
	o.DragHandle = true
	o.DynamicHandle = true
	o.ClickBar = true
	o.PauseOnHover = true
	o.Speed = 0
	return o
}

func testConfig() config.Config {
	return config.Config{
		FrameRate:     60,
		CardWidth:     testCardWidth,
		Style:         "notty",
		WatchInterval: time.Second,
		Carousel:      testCarouselOptions(),
	}
}

// newTestModel opens the deck in dir and sizes the window, which builds the
// carousel.
func newTestModel(t *testing.T, dir string, cfg config.Config, st *store.Store) *Model {
	t.Helper()
	d, err := deck.Load(dir, deck.Options{Width: cfg.CardWidth, Style: cfg.Style})
	if err != nil {
		t.Fatalf("load deck: %v", err)
	}
	m := New(Options{Config: cfg, Deck: d, Store: st, Now: func() time.Time { return testEpoch }})
	m.Update(tea.WindowSizeMsg{Width: testWidth, Height: testHeight})
	pump(m)
	if m.car == nil {
		t.Fatalf("expected the carousel to be built on the first resize")
	}
	return m
}

// pump runs queued animation frames until none are left.
func pump(m *Model) {
	for i := 0; i < 100 && len(m.sched.frames) > 0; i++ {
		m.Update(frameMsg{})
	}
}

// fireTimers fires every armed timer once.
func fireTimers(m *Model) {
	ids := make([]uint64, 0, len(m.sched.timers))
	for id := range m.sched.timers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		m.Update(timerMsg{id: id})
	}
	pump(m)
}

func press(m *Model, k string) {
	var msg tea.KeyMsg
	switch k {
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	case "home":
		msg = tea.KeyMsg{Type: tea.KeyHome}
	case "end":
		msg = tea.KeyMsg{Type: tea.KeyEnd}
	case "space":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	m.Update(msg)
	pump(m)
}

func mouse(m *Model, action tea.MouseAction, button tea.MouseButton, x, y int) {
	m.Update(tea.MouseMsg{X: x, Y: y, Action: action, Button: button})
}

func click(m *Model, x, y int) {
	mouse(m, tea.MouseActionPress, tea.MouseButtonLeft, x, y)
	mouse(m, tea.MouseActionRelease, tea.MouseButtonLeft, x, y)
	pump(m)
}

// waitZone renders the view and waits for the zone to be registered.
func waitZone(t *testing.T, m *Model, id string) *zone.ZoneInfo {
	t.Helper()
	m.View()
	for i := 0; i < 200; i++ {
		if z := zone.Get(id); !z.IsZero() {
			return z
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("zone %q never appeared", id)
	return nil
}
