// scheduler.go adapts the carousel's Scheduler to Bubble Tea.
//
// The carousel asks for work to run on the next frame, after a delay, or
// periodically. None of it may run on another goroutine, so every request
// becomes a tea.Tick command whose message comes back through Update, where
// the callback finally runs.
//
// Frame requests share one tick: whatever was requested before the tick
// fires runs in that frame, in request order. Timers each get their own
// tick, tagged with an id; a cancelled id simply has nothing registered
// when its message arrives.
package app

import (
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/cli-carousel/internal/carousel"
)

// frameMsg runs the frame callbacks queued before it fired.
type frameMsg struct{}

// timerMsg fires the timer with the given id.
type timerMsg struct {
	id uint64
}

type frameRequest struct {
	fn   func(time.Time)
	dead bool
}

type timer struct {
	fn    func()
	every time.Duration
}

type frameScheduler struct {
	now      func() time.Time
	interval time.Duration

	nextID      uint64
	frames      map[uint64]*frameRequest
	frameQueued bool
	timers      map[uint64]*timer

	// cmds are the ticks requested since the last flush.
	cmds []tea.Cmd
}

var _ carousel.Scheduler = (*frameScheduler)(nil)

func newFrameScheduler(frameRate int, now func() time.Time) *frameScheduler {
	if frameRate <= 0 {
		frameRate = DefaultFrameRate
	}
	if now == nil {
		now = time.Now
	}
	return &frameScheduler{
		now:      now,
		interval: time.Second / time.Duration(frameRate),
		frames:   map[uint64]*frameRequest{},
		timers:   map[uint64]*timer{},
	}
}

func (s *frameScheduler) Now() time.Time { return s.now() }

func (s *frameScheduler) id() uint64 {
	s.nextID++
	return s.nextID
}

func (s *frameScheduler) RequestFrame(fn func(now time.Time)) carousel.CancelFunc {
	id := s.id()
	req := &frameRequest{fn: fn}
	s.frames[id] = req
	if !s.frameQueued {
		s.frameQueued = true
		s.cmds = append(s.cmds, tea.Tick(s.interval, func(time.Time) tea.Msg {
			return frameMsg{}
		}))
	}
	return func() {
		req.dead = true
		delete(s.frames, id)
	}
}

func (s *frameScheduler) AfterFunc(d time.Duration, fn func()) carousel.CancelFunc {
	return s.schedule(d, 0, fn)
}

func (s *frameScheduler) Every(d time.Duration, fn func()) carousel.CancelFunc {
	if d <= 0 {
		d = s.interval
	}
	return s.schedule(d, d, fn)
}

func (s *frameScheduler) schedule(d, every time.Duration, fn func()) carousel.CancelFunc {
	id := s.id()
	s.timers[id] = &timer{fn: fn, every: every}
	s.cmds = append(s.cmds, timerTick(id, d))
	return func() { delete(s.timers, id) }
}

func timerTick(id uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return timerMsg{id: id} })
}

// runFrame runs every frame callback queued before msg fired.
func (s *frameScheduler) runFrame() {
	s.frameQueued = false
	if len(s.frames) == 0 {
		return
	}
	ids := make([]uint64, 0, len(s.frames))
	for id := range s.frames {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	batch := make([]*frameRequest, 0, len(ids))
	for _, id := range ids {
		batch = append(batch, s.frames[id])
		delete(s.frames, id)
	}
	now := s.now()
	for _, req := range batch {
		if !req.dead {
			req.dead = true
			req.fn(now)
		}
	}
}

// runTimer fires timer id. Periodic timers are re-armed before they run so
// they can cancel themselves.
func (s *frameScheduler) runTimer(msg timerMsg) {
	t, ok := s.timers[msg.id]
	if !ok {
		return
	}
	if t.every > 0 {
		s.cmds = append(s.cmds, timerTick(msg.id, t.every))
	} else {
		delete(s.timers, msg.id)
	}
	t.fn()
}

// flush returns the ticks requested since the last flush.
func (s *frameScheduler) flush() tea.Cmd {
	if len(s.cmds) == 0 {
		return nil
	}
	cmds := s.cmds
	s.cmds = nil
	return tea.Batch(cmds...)
}

// busy reports whether any frame or timer is outstanding.
func (s *frameScheduler) busy() bool {
	return len(s.frames) > 0 || len(s.timers) > 0
}
