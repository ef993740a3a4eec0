// mouse.go routes mouse input to the carousel.
//
// The frame and the scrollbar are hit-tested with layout math because the
// carousel needs the column: a press in the frame starts a slidee drag on
// whichever card is under it, a press on the scrollbar either grabs the
// handle or is a bar click. Buttons and page dots are marked zones in the
// rendered view and are hit-tested through bubblezone.
package app

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/treykane/cli-carousel/internal/carousel"
)

var zoneOnce sync.Once

// ensureZones sets up the global zone manager the view marks into.
func ensureZones() {
	zoneOnce.Do(zone.NewGlobal)
}

// pointerState tracks one press from down to release.
type pointerState struct {
	down     bool
	source   carousel.DragSource
	target   int
	button   bool
	hovering bool
}

func newPointerState() pointerState {
	return pointerState{target: -1}
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.car == nil {
		return m, nil
	}
	layout := m.calculateLayout()
	m.updateHover(layout.inFrame(msg.Y))

	if tea.MouseEvent(msg).IsWheel() {
		m.handleWheel(msg, layout)
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.handlePress(msg, layout)
		}
	case tea.MouseActionMotion:
		if m.pointer.down && m.pointer.source != carousel.SourceNone {
			m.car.PointerMove(m.pointerEvent(msg, layout, m.pointer.target))
		}
	case tea.MouseActionRelease:
		m.handleRelease(msg, layout)
	}
	return m, nil
}

// updateHover reports the pointer entering or leaving the frame.
func (m *Model) updateHover(inside bool) {
	if inside == m.pointer.hovering {
		return
	}
	m.pointer.hovering = inside
	m.car.Hover(inside)
}

// handleWheel scrolls the carousel when the wheel is over the frame or the
// scrollbar. Anywhere else it is recorded as wheel activity outside the
// carousel so the frame does not grab a scroll that started elsewhere.
func (m *Model) handleWheel(msg tea.MouseMsg, layout LayoutDimensions) {
	if !layout.inFrame(msg.Y) && msg.Y != layout.ScrollbarRow {
		m.factory.Wheel().WheelOutside(m.now())
		return
	}
	var ev carousel.WheelEvent
	ev.Mode = carousel.WheelLine
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		ev.DeltaY = -wheelLinesPerNotch
	case tea.MouseButtonWheelDown:
		ev.DeltaY = wheelLinesPerNotch
	case tea.MouseButtonWheelLeft:
		ev.DeltaX = -wheelLinesPerNotch
	case tea.MouseButtonWheelRight:
		ev.DeltaX = wheelLinesPerNotch
	default:
		return
	}
	m.car.Wheel(ev)
}

func (m *Model) handlePress(msg tea.MouseMsg, layout LayoutDimensions) {
	m.pointer = pointerState{target: -1, hovering: m.pointer.hovering}

	switch {
	case layout.inFrame(msg.Y):
		target := m.itemAt(msg.X)
		m.pointer.down = true
		m.pointer.target = target
		if m.car.PointerDown(carousel.SourceSlidee, m.pointerEvent(msg, layout, target)) {
			m.pointer.source = carousel.SourceSlidee
		}
	case msg.Y == layout.ScrollbarRow:
		x := float64(msg.X)
		if m.car.OnHandle(x) {
			m.pointer.down = true
			if m.car.PointerDown(carousel.SourceHandle, m.pointerEvent(msg, layout, -1)) {
				m.pointer.source = carousel.SourceHandle
			}
			return
		}
		m.car.ClickScrollbar(x)
	case msg.Y == layout.ButtonsRow:
		for _, b := range buttonOrder {
			if zone.Get(buttonZoneID(b)).InBounds(msg) {
				m.pointer.button = m.car.PressButton(b)
				return
			}
		}
	case msg.Y == layout.PagesRow:
		for i := 0; i < m.strip.pageCount; i++ {
			if zone.Get(pageZoneID(i)).InBounds(msg) {
				m.car.ClickPage(i)
				return
			}
		}
	}
}

// handleRelease ends a press. A release over the card the press started
// on is a click on that card; the carousel swallows it when the press
// turned into a long enough drag.
func (m *Model) handleRelease(msg tea.MouseMsg, layout LayoutDimensions) {
	p := m.pointer
	m.pointer = pointerState{target: -1, hovering: p.hovering}

	if p.button {
		m.car.ReleaseButtons()
	}
	if !p.down {
		return
	}
	if p.source != carousel.SourceNone {
		m.car.PointerUp(m.pointerEvent(msg, layout, p.target))
	}
	if p.target >= 0 && layout.inFrame(msg.Y) && m.itemAt(msg.X) == p.target {
		m.car.ClickItem(p.target, false)
	}
}

// pointerEvent converts a mouse message into frame coordinates.
func (m *Model) pointerEvent(msg tea.MouseMsg, layout LayoutDimensions, target int) carousel.PointerEvent {
	return carousel.PointerEvent{
		X:       float64(msg.X),
		Y:       float64(msg.Y - layout.FrameTop),
		Primary: true,
		Target:  target,
	}
}
