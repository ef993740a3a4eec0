package app

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	zone "github.com/lrstanley/bubblezone"

	"github.com/treykane/cli-carousel/internal/carousel"
	"github.com/treykane/cli-carousel/internal/deck"
)

// buttonOrder is the left-to-right order of the button row.
var buttonOrder = []carousel.Button{
	carousel.ButtonPrevPage,
	carousel.ButtonPrev,
	carousel.ButtonBackward,
	carousel.ButtonForward,
	carousel.ButtonNext,
	carousel.ButtonNextPage,
}

var buttonLabels = map[carousel.Button]string{
	carousel.ButtonPrevPage: "[« page]",
	carousel.ButtonPrev:     "[‹ prev]",
	carousel.ButtonBackward: "[◂]",
	carousel.ButtonForward:  "[▸]",
	carousel.ButtonNext:     "[next ›]",
	carousel.ButtonNextPage: "[page »]",
}

func buttonZoneID(b carousel.Button) string { return "btn-" + b.String() }

func pageZoneID(i int) string { return fmt.Sprintf("page-%d", i) }

// View draws the header, the frame, the controls and the footer.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	layout := m.calculateLayout()
	rows := make([]string, 0, layout.FooterTop)
	rows = append(rows, m.renderHeader(layout.Width))
	if m.showHelp {
		rows = append(rows, m.renderHelp(layout.Width, layout.FrameHeight)...)
	} else {
		rows = append(rows, m.renderFrame(layout)...)
	}
	rows = append(rows,
		m.renderScrollbar(layout.Width),
		m.renderPages(layout.Width),
		m.renderButtons(layout.Width),
	)
	body := padBlock(strings.Join(rows, "\n"), m.width, layout.FooterTop)

	view := body + "\n" + m.renderStatus(m.width, layout.FooterRows)
	return zone.Scan(padBlock(view, m.width, m.height))
}

func (m *Model) renderHeader(width int) string {
	left := titleStyle.Render(filepath.Base(m.deck.Dir))
	var parts []string
	if m.car != nil {
		if n := len(m.car.Items()); n > 0 {
			if a := m.car.Rel().ActiveItem; a >= 0 {
				parts = append(parts, fmt.Sprintf("card %d/%d", a+1, n))
			} else {
				parts = append(parts, fmt.Sprintf("%d cards", n))
			}
		}
		if m.strip.pageCount > 0 {
			parts = append(parts, fmt.Sprintf("page %d/%d", m.strip.activePage+1, m.strip.pageCount))
		}
		switch {
		case m.car.Options().CycleBy == "":
		case m.car.Cycling():
			parts = append(parts, "▶ cycling")
		default:
			parts = append(parts, "⏸ paused")
		}
	}
	right := mutedStyle.Render(strings.Join(parts, " · "))
	if m.strip.slideeDrag || m.strip.handleDrag {
		right = draggingStyle.Render("dragging") + " " + right
	}
	return joinEnds(left, right, width)
}

// renderFrame draws the visible window of the card strip.
func (m *Model) renderFrame(layout LayoutDimensions) []string {
	height := layout.FrameHeight
	rows := make([]string, 0, height)
	if height <= 0 {
		return rows
	}
	if m.car == nil || len(m.deck.Cards) == 0 {
		rows = append(rows, mutedStyle.Render(fmt.Sprintf(" No slides in %s", m.deck.Dir)))
		return rows
	}

	cards := m.placedCards(height)
	offset := int(math.Round(m.strip.offset))
	for row := 0; row < height; row++ {
		rows = append(rows, composeRow(cards, row, offset, layout.Width))
	}
	return rows
}

// placedCards positions every card at its slidee offset.
func (m *Model) placedCards(height int) []placedCard {
	items := m.car.Items()
	elements := m.car.Elements()
	geometry := m.car.Layout()
	cards := make([]placedCard, 0, len(items))
	for i, it := range items {
		if i >= len(elements) {
			break
		}
		card, ok := elements[i].(*deck.Card)
		if !ok {
			continue
		}
		width := geometry.ItemWidth(card)
		cards = append(cards, placedCard{
			start:  int(it.Start),
			width:  width,
			lines:  card.Lines(width, height),
			active: elements[i] == m.strip.activeCard,
		})
	}
	return cards
}

// itemAt returns the item under frame column x, or -1.
func (m *Model) itemAt(x int) int {
	if m.car == nil {
		return -1
	}
	p := math.Round(m.strip.offset) + float64(x)
	for i, it := range m.car.Items() {
		if p >= it.Start && p < it.Start+it.Size {
			return i
		}
	}
	return -1
}

func (m *Model) renderScrollbar(width int) string {
	if width <= 0 {
		return ""
	}
	size := int(math.Round(m.strip.handleSize))
	at := int(math.Round(m.strip.handleAt))
	if m.car == nil || size <= 0 {
		return trackStyle.Render(strings.Repeat("─", width))
	}
	at = clamp(at, 0, max(0, width-size))
	size = min(size, width-at)
	style := handleStyle
	if m.strip.handleDrag {
		style = dragHandleStyle
	}
	return trackStyle.Render(strings.Repeat("─", at)) +
		style.Render(strings.Repeat("━", size)) +
		trackStyle.Render(strings.Repeat("─", width-at-size))
}

func (m *Model) renderPages(width int) string {
	n := m.strip.pageCount
	if n == 0 || width < 2 {
		return ""
	}
	// Every dot takes two cells; leave one for the leading space.
	n = min(n, (width-1)/2)
	var b strings.Builder
	b.WriteString(" ")
	for i := 0; i < n; i++ {
		dot := pageStyle.Render("○")
		if i == m.strip.activePage {
			dot = activePageStyle.Render("●")
		}
		b.WriteString(zone.Mark(pageZoneID(i), dot))
		if i < n-1 {
			b.WriteString(" ")
		}
	}
	return b.String()
}

func (m *Model) renderButtons(width int) string {
	if width <= 0 {
		return ""
	}
	parts := make([]string, 0, len(buttonOrder))
	for _, b := range buttonOrder {
		state := m.strip.buttons[b]
		style := buttonStyle
		switch {
		case state.disabled:
			style = disabledStyle
		case state.marked:
			style = markedStyle
		}
		parts = append(parts, zone.Mark(buttonZoneID(b), style.Render(buttonLabels[b])))
	}
	return " " + strings.Join(parts, " ")
}

func (m *Model) renderHelp(width, height int) []string {
	if height <= 0 {
		return nil
	}
	m.help.Width = width
	text := m.help.FullHelpView(m.keys.FullHelp())
	lines := strings.Split(text, "\n")
	out := make([]string, 0, height)
	out = append(out, titleStyle.Render(" Keys"))
	for _, line := range lines {
		if len(out) >= height {
			break
		}
		out = append(out, " "+line)
	}
	return out
}

// joinEnds puts left and right on one line of width cells, dropping right
// when both do not fit.
func joinEnds(left, right string, width int) string {
	lw, rw := visibleWidth(left), visibleWidth(right)
	if lw+rw+1 > width {
		return truncate(left, width)
	}
	return left + strings.Repeat(" ", width-lw-rw) + right
}

// ensure deck.Card keeps satisfying the element contract.
var _ carousel.Element = (*deck.Card)(nil)
