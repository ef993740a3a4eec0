// compose.go cuts the moving strip of cards down to the frame.
//
// Cards are drawn as plain text, each line exactly as wide as the card. A
// frame row is built by walking the cards that overlap the visible window
// [offset, offset+width), slicing each one's line to the overlapping cells
// and colouring the slice. Cells between and around cards stay blank.
package app

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// placedCard is one card positioned on the slidee.
type placedCard struct {
	start  int
	width  int
	lines  []string
	active bool
}

// cellSlice returns cells [from, to) of a plain string, always exactly
// to-from cells wide. Wide runes cut by either edge become spaces.
func cellSlice(s string, from, to int) string {
	if to <= from {
		return ""
	}
	var b strings.Builder
	col, written := 0, 0
	for _, r := range s {
		if col >= to {
			break
		}
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		end := col + w
		switch {
		case end <= from:
		case col >= from && end <= to:
			b.WriteRune(r)
			written += w
		default:
			n := min(end, to) - max(col, from)
			b.WriteString(strings.Repeat(" ", n))
			written += n
		}
		col = end
	}
	if pad := (to - from) - written; pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	return b.String()
}

// composeRow renders one frame row. cards must be sorted by start and must
// not overlap.
func composeRow(cards []placedCard, row, offset, width int) string {
	if width <= 0 {
		return ""
	}
	var b strings.Builder
	cursor := 0
	for _, c := range cards {
		a := max(c.start, offset)
		z := min(c.start+c.width, offset+width)
		if z <= a {
			continue
		}
		line := ""
		if row >= 0 && row < len(c.lines) {
			line = c.lines[row]
		}
		if lead := a - offset - cursor; lead > 0 {
			b.WriteString(strings.Repeat(" ", lead))
		}
		segment := cellSlice(line, a-c.start, z-c.start)
		if c.active {
			segment = activeCardStyle.Render(segment)
		} else {
			segment = cardStyle.Render(segment)
		}
		b.WriteString(segment)
		cursor = z - offset
	}
	if cursor < width {
		b.WriteString(strings.Repeat(" ", width-cursor))
	}
	return b.String()
}
