package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/treykane/cli-carousel/internal/carousel"
)

func (m *Model) renderStatus(width, rows int) string {
	statusRows, _ := m.buildStatusRows(width, rows)
	for len(statusRows) < rows {
		statusRows = append(statusRows, "")
	}

	rendered := make([]string, 0, len(statusRows))
	for _, line := range statusRows {
		line = " " + truncate(line, max(0, width-1))
		rendered = append(rendered, statusStyle.Width(width).Render(line))
	}
	return strings.Join(rendered, "\n")
}

// buildStatusRows packs the key hints, the carousel context and the status
// message into at most rowLimit rows. fit is false when something had to be
// cut.
func (m *Model) buildStatusRows(width, rowLimit int) ([]string, bool) {
	if width <= 0 || rowLimit <= 0 {
		return nil, true
	}

	help := m.statusHelpSegments()
	context := m.statusContextSegments()
	status := strings.TrimSpace(m.status)

	segments := make([]string, 0, len(help)+len(context)+2)
	if len(help) > 0 {
		segments = append(segments, "Keys: "+help[0])
		segments = append(segments, help[1:]...)
	}
	if len(context) > 0 {
		segments = append(segments, "Context: "+context[0])
		segments = append(segments, context[1:]...)
	}
	if status != "" {
		segments = append(segments, "Status: "+status)
	}

	rows := make([]string, 1, rowLimit)
	rowIndex := 0
	fit := true
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		segment := seg
		if lipgloss.Width(segment) > width {
			segment = truncateWithEllipsis(segment, width)
		}

		candidate := segment
		if rows[rowIndex] != "" {
			candidate = rows[rowIndex] + " | " + segment
		}
		if lipgloss.Width(candidate) <= width {
			rows[rowIndex] = candidate
			continue
		}
		if rowIndex+1 < rowLimit {
			rowIndex++
			rows = append(rows, segment)
			continue
		}

		fit = false
		if rows[rowIndex] == "" {
			rows[rowIndex] = truncateWithEllipsis(segment, width)
		} else {
			rows[rowIndex] = truncateWithEllipsis(rows[rowIndex]+" | "+segment, width)
		}
		break
	}
	return rows, fit
}

func truncateWithEllipsis(value string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(value) <= width {
		return value
	}
	if width == 1 {
		return "…"
	}
	return ansi.Truncate(value, width-1, "") + "…"
}

func (m *Model) statusHelpSegments() []string {
	if m.showHelp {
		return []string{m.primaryActionKey(actionHelp, "?") + " close help"}
	}
	return []string{
		m.primaryActionKey(actionBack, "←") + "/" + m.primaryActionKey(actionForward, "→") + " step",
		m.primaryActionKey(actionPrevPage, "[") + "/" + m.primaryActionKey(actionNextPage, "]") + " page",
		m.primaryActionKey(actionCycle, "Space") + " pause",
		m.primaryActionKey(actionHelp, "?") + " help",
		m.primaryActionKey(actionQuit, "q") + " quit",
	}
}

// statusContextSegments describe the carousel: its navigation mode, its
// offset within the bounds and any gesture in progress.
func (m *Model) statusContextSegments() []string {
	if m.car == nil {
		return nil
	}
	pos := m.car.Pos()
	segments := []string{
		m.car.Navigation().String(),
		fmt.Sprintf("%.0f/%.0f", pos.Dest, pos.End),
	}
	if m.car.Dragging().Init {
		switch m.car.Dragging().Source {
		case carousel.SourceSlidee:
			segments = append(segments, "dragging")
		case carousel.SourceHandle:
			segments = append(segments, "dragging handle")
		case carousel.SourceButton:
			segments = append(segments, "moving")
		}
	}
	if p := m.car.Paused(); p > 0 && m.car.Options().CycleBy != "" {
		segments = append(segments, "paused")
	}
	return segments
}
