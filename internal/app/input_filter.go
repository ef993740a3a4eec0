package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Some terminals answer the background colour query with an OSC sequence
// that Bubble Tea delivers as runes. Those, and any other control runes,
// must not reach the keybinding table.

func isOSCBackgroundResponse(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes {
		return false
	}
	sequence := trimOSCSequenceSuffix(msg.String())
	if !strings.Contains(sequence, "rgb:") {
		return false
	}
	if !strings.Contains(sequence, "\x1b") && !strings.Contains(sequence, "1;rgb:") {
		return false
	}
	return hasRGBTriple(sequence)
}

func (m *Model) shouldIgnoreInput(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes {
		return false
	}
	if isOSCBackgroundResponse(msg) || containsControlRunes(msg.String()) {
		if m.debugInput {
			m.status = fmt.Sprintf("Ignored input: %q", msg.String())
		}
		return true
	}
	return false
}

func trimOSCSequenceSuffix(sequence string) string {
	for _, suffix := range []string{"\x1b\\", "\a", "\\", "\x1b"} {
		if strings.HasSuffix(sequence, suffix) {
			return strings.TrimSuffix(sequence, suffix)
		}
	}
	return sequence
}

func containsControlRunes(sequence string) bool {
	for _, r := range sequence {
		switch {
		case r == '\n' || r == '\t':
			continue
		case r < 32 || r == 127:
			return true
		}
	}
	return false
}

func isHex(value string) bool {
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return value != ""
}

// hasRGBTriple reports whether sequence carries rgb:RRRR/GGGG/BBBB.
func hasRGBTriple(sequence string) bool {
	index := strings.Index(sequence, "rgb:")
	if index == -1 {
		return false
	}
	parts := strings.SplitN(sequence[index+len("rgb:"):], "/", 3)
	if len(parts) != 3 {
		return false
	}
	for _, part := range parts {
		if len(part) < 4 || !isHex(part[:4]) {
			return false
		}
	}
	return true
}
