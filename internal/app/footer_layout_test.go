package app

import (
	"strings"
	"testing"
)

func TestFooterHeightExpandsWhenNarrow(t *testing.T) {
	m := newKeybindingModel(nil)

	if got := m.footerHeightForWidth(120); got != FooterMinRows {
		t.Fatalf("expected %d footer rows on a wide terminal, got %d", FooterMinRows, got)
	}
	if got := m.footerHeightForWidth(20); got != FooterMaxRows {
		t.Fatalf("expected %d footer rows on a narrow terminal, got %d", FooterMaxRows, got)
	}
}

func TestBuildStatusRowsTruncates(t *testing.T) {
	m := newKeybindingModel(nil)
	m.status = strings.Repeat("x", 80)

	rows, fit := m.buildStatusRows(40, 2)
	if fit {
		t.Fatalf("expected the long status not to fit")
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	for _, row := range rows {
		if visibleWidth(row) > 40 {
			t.Fatalf("expected rows within the width, got %q", row)
		}
	}
	if !strings.HasSuffix(rows[1], "…") {
		t.Fatalf("expected an ellipsis on the last row, got %q", rows[1])
	}
}

func TestStatusHelpWhileHelpOpen(t *testing.T) {
	m := newKeybindingModel(nil)
	m.showHelp = true

	rows, fit := m.buildStatusRows(80, 2)
	if !fit || rows[0] != "Keys: ? close help" {
		t.Fatalf("expected only the close hint, got %v", rows)
	}
}

func TestTruncateWithEllipsis(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"abcdef", 10, "abcdef"},
		{"abcdef", 4, "abc…"},
		{"abcdef", 1, "…"},
		{"abcdef", 0, ""},
	}
	for _, tt := range tests {
		if got := truncateWithEllipsis(tt.in, tt.width); got != tt.want {
			t.Fatalf("truncateWithEllipsis(%q, %d): expected %q, got %q", tt.in, tt.width, tt.want, got)
		}
	}
}
