package app

import "time"

// Layout constants define the rows around the frame.
const (
	// HeaderRows is the deck title line above the frame.
	HeaderRows = 1
	// ControlRows hold the scrollbar, the page dots and the buttons.
	ControlRows = 3
	// FooterMinRows is the default number of rows reserved for the bottom
	// status/help area.
	FooterMinRows = 2
	// FooterMaxRows is the expanded footer height used when content does not
	// fit within FooterMinRows.
	FooterMaxRows = 3
	// MinFrameHeight is the smallest frame worth drawing cards in.
	MinFrameHeight = 3
)

// Strip constants control how cards sit in the frame.
const (
	// CardGap is the blank space between two cards.
	CardGap = 2
)

// Timing constants.
const (
	// DefaultFrameRate is used when the config gives none.
	DefaultFrameRate = 60
	// DeckWatchInterval is the poll interval for changes to the deck directory.
	DeckWatchInterval = 2 * time.Second
)

// Wheel notches arrive as single events; three lines is one notch in the
// carousel's wheel units.
const wheelLinesPerNotch = 3
