// layout.go centralizes the terminal layout of the carousel screen.
//
// From the top, the screen is a header line, the frame the cards slide
// through, a scrollbar, a row of page dots, a row of buttons and the footer.
// The frame and the scrollbar span the full terminal width so mouse columns
// map straight onto frame offsets. The footer reserves two or three rows
// depending on how much help and status text has to fit.
package app

import "github.com/treykane/cli-carousel/internal/carousel"

// LayoutDimensions holds all calculated layout dimensions for the UI.
type LayoutDimensions struct {
	Width        int // terminal width, also the frame and scrollbar width
	FrameTop     int // first row of the frame
	FrameHeight  int // rows available to cards
	ScrollbarRow int
	PagesRow     int
	ButtonsRow   int
	FooterTop    int
	FooterRows   int
}

// calculateLayout computes all UI dimensions from the terminal size.
func (m *Model) calculateLayout() LayoutDimensions {
	footer := m.footerHeightForWidth(m.width)
	frameHeight := max(0, m.height-HeaderRows-ControlRows-footer)
	top := HeaderRows
	return LayoutDimensions{
		Width:        m.width,
		FrameTop:     top,
		FrameHeight:  frameHeight,
		ScrollbarRow: top + frameHeight,
		PagesRow:     top + frameHeight + 1,
		ButtonsRow:   top + frameHeight + 2,
		FooterTop:    top + frameHeight + ControlRows,
		FooterRows:   footer,
	}
}

// inFrame reports whether a screen row belongs to the frame.
func (l LayoutDimensions) inFrame(y int) bool {
	return y >= l.FrameTop && y < l.FrameTop+l.FrameHeight
}

// footerHeightForWidth returns how many rows should be reserved for the footer.
// It prefers FooterMinRows and expands to FooterMaxRows when the footer
// segments cannot fit without dropping content.
func (m *Model) footerHeightForWidth(width int) int {
	_, fit := m.buildStatusRows(width, FooterMinRows)
	if fit {
		return FooterMinRows
	}
	return FooterMaxRows
}

// frameMetrics is the carousel's Measurer: it is asked on every load.
func (m *Model) frameMetrics() carousel.FrameMetrics {
	return carousel.FrameMetrics{
		FrameSize:     m.width,
		ScrollbarSize: m.width,
		ItemMarginEnd: CardGap,
	}
}
