package app

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/cli-carousel/internal/carousel"
	"github.com/treykane/cli-carousel/internal/config"
	"github.com/treykane/cli-carousel/internal/deck"
	"github.com/treykane/cli-carousel/internal/store"
)

// frameHandle is the handle of the one carousel on screen.
const frameHandle carousel.Handle = "frame"

// apiPausePriority is what a pause from the keyboard is recorded with;
// drags and hovering pause with less.
const apiPausePriority = 100

// Options is everything New needs.
type Options struct {
	Config config.Config
	Deck   *deck.Deck
	// Store keeps the resume point. It may be nil.
	Store *store.Store
	// Now replaces the wall clock in tests.
	Now func() time.Time
}

// Model holds the Bubble Tea state for the entire UI.
type Model struct {
	cfg   config.Config
	deck  *deck.Deck
	store *store.Store
	now   func() time.Time

	// Carousel state
	sched      *frameScheduler
	factory    *carousel.Factory
	car        *carousel.Carousel
	strip      *stripState
	breakpoint int
	resume     *store.State

	// Keybindings
	keyForAction map[string][]string
	keyToAction  map[string]string
	keys         keyMap
	help         help.Model

	// Layout sizing
	width  int
	height int

	status     string
	showHelp   bool
	debugInput bool

	pointer pointerState

	// Deck watching
	snapshot      deck.Snapshot
	watchInterval time.Duration
}

// New prepares the UI for a loaded deck. The carousel itself is built on
// the first window size, when the frame can be measured.
func New(opts Options) *Model {
	ensureZones()
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	sched := newFrameScheduler(opts.Config.FrameRate, now)

	m := &Model{
		cfg:           opts.Config,
		deck:          opts.Deck,
		store:         opts.Store,
		now:           now,
		sched:         sched,
		factory:       carousel.NewFactory(sched),
		help:          help.New(),
		status:        "Ready",
		debugInput:    os.Getenv("CLI_CAROUSEL_DEBUG_INPUT") != "",
		watchInterval: opts.Config.WatchInterval,
		pointer:       newPointerState(),
	}
	if m.watchInterval <= 0 {
		m.watchInterval = DeckWatchInterval
	}
	m.strip = newStripState(m.elements)
	m.loadKeybindings(opts.Config)
	m.loadResumePoint()
	if snap, err := deck.Scan(m.deck.Dir); err == nil {
		m.snapshot = snap
	}
	return m
}

// Init starts polling the deck directory.
func (m *Model) Init() tea.Cmd {
	return m.deckWatchCmd()
}

// Update is the Bubble Tea update loop. Whatever the carousel scheduled
// while handling msg is flushed as commands at the end.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.update(msg)
	return m, tea.Batch(cmd, m.sched.flush())
}

func (m *Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case frameMsg:
		m.sched.runFrame()
		return m, nil
	case timerMsg:
		m.sched.runTimer(msg)
		return m, nil
	case deckWatchTickMsg:
		return m.handleDeckWatchTick()
	case tea.KeyMsg:
		if m.shouldIgnoreInput(msg) {
			return m, nil
		}
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

// elements returns what the carousel currently shows.
func (m *Model) elements() []carousel.Element {
	if m.car == nil {
		return nil
	}
	return m.car.Elements()
}

// cardElements converts the deck's cards for the carousel.
func cardElements(cards []*deck.Card) []carousel.Element {
	out := make([]carousel.Element, 0, len(cards))
	for _, c := range cards {
		out = append(out, c)
	}
	return out
}

// handleWindowResize re-measures the frame. Crossing a responsive
// breakpoint rebuilds the carousel with the new options, keeping the
// active card and position; any other resize is a reload.
func (m *Model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width

	bp := m.breakpointFor(m.width)
	switch {
	case m.car == nil:
		m.breakpoint = bp
		m.buildCarousel(cardElements(m.deck.Cards), m.resumeStart())
		m.resume = nil
	case bp != m.breakpoint:
		m.breakpoint = bp
		elements := m.car.Elements()
		start := m.currentStart()
		m.car.Destroy()
		m.buildCarousel(elements, start)
		appLog.Debug("breakpoint changed", "width", m.width, "breakpoints", bp)
	default:
		m.car.Reload()
	}
	return m, nil
}

// breakpointFor counts the responsive breakpoints that apply at width.
// Two widths with the same count resolve to the same options.
func (m *Model) breakpointFor(width int) int {
	n := 0
	for _, bp := range m.cfg.Carousel.Responsive {
		if width < bp.Breakpoint {
			n++
		}
	}
	return n
}

// buildCarousel creates and initializes the carousel for the current
// width. startAt follows the carousel's meaning: an item index under item
// navigation, an offset otherwise.
func (m *Model) buildCarousel(elements []carousel.Element, startAt *float64) {
	opts := m.cfg.Carousel.ForViewport(m.width)
	opts.StartAt = startAt
	m.strip = newStripState(m.elements)

	m.car = m.factory.New(frameHandle, carousel.Config{
		Measurer: carousel.MeasurerFunc(m.frameMetrics),
		Elements: elements,
		Options:  opts,
		View:     m.strip,
		Handlers: map[string]carousel.Handler{
			carousel.EventActive: func(c *carousel.Carousel, e carousel.Event) {
				if els := c.Elements(); e.Index >= 0 && e.Index < len(els) {
					if card, ok := els[e.Index].(*deck.Card); ok {
						m.status = card.Title
					}
				}
			},
			carousel.EventPause + " " + carousel.EventResume: func(c *carousel.Carousel, e carousel.Event) {
				switch {
				case e.Name == carousel.EventResume:
					m.status = "Cycling"
				case c.Paused() >= apiPausePriority:
					m.status = "Paused"
				}
			},
		},
	})
	if err := m.car.Init(); err != nil {
		m.setStatusError("Carousel failed to start", err)
		m.car = nil
		return
	}
	appLog.Debug("carousel ready",
		"nav", m.car.Navigation().String(), "cards", len(elements), "width", m.width)
}

// currentStart captures where the carousel is so a rebuilt one starts there.
func (m *Model) currentStart() *float64 {
	if m.car == nil {
		return nil
	}
	if m.car.Navigation() != carousel.NavFree {
		if a := m.car.Rel().ActiveItem; a >= 0 {
			v := float64(a)
			return &v
		}
		return nil
	}
	v := m.car.Pos().Dest
	return &v
}

// statusf sets a formatted status line.
func (m *Model) statusf(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
}
