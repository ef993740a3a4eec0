package carousel

import (
	"math"
	"testing"
)

func TestBound(t *testing.T) {
	const start, end = 0.0, 150.0
	for p := -300.0; p <= 450; p += 7.5 {
		got := bound(p, start, end, false)
		if got < start || got > end {
			t.Fatalf("bound(%v): %v outside %v..%v", p, got, start, end)
		}

		got = bound(p, start, end, true)
		switch {
		case p < start:
			if math.Abs(math.Abs(got-start)-math.Abs(p-start)/6) > 1e-9 {
				t.Fatalf("elastic bound(%v): got %v", p, got)
			}
		case p > end:
			if math.Abs(math.Abs(got-end)-math.Abs(p-end)/6) > 1e-9 {
				t.Fatalf("elastic bound(%v): got %v", p, got)
			}
		default:
			if got != p {
				t.Fatalf("elastic bound(%v) moved an in-range target to %v", p, got)
			}
		}
	}
}

func TestRelativesMonotonic(t *testing.T) {
	layouts := map[string]Layout{
		"basic":  computeLayout(FrameMetrics{FrameSize: 100}, blocks(10, 10, 10, 10, 10), NavBasic, 2),
		"mixed":  computeLayout(FrameMetrics{FrameSize: 100}, blocks(30, 80, 10, 45, 90, 5), NavCentered, 0),
		"forced": computeLayout(FrameMetrics{FrameSize: 100}, blocks(20, 20, 20, 20), NavForceCentered, 0),
	}
	navs := map[string]Navigation{"basic": NavBasic, "mixed": NavCentered, "forced": NavForceCentered}
	for name, l := range layouts {
		for p := l.Start - 50; p <= l.End+50; p++ {
			rel := relativesAt(l, navs[name], p)
			if rel.FirstItem > rel.CenterItem || rel.CenterItem > rel.LastItem {
				t.Fatalf("%s at %v: first %d, center %d, last %d", name, p, rel.FirstItem, rel.CenterItem, rel.LastItem)
			}
		}
	}
}

func TestRelativesHysteresis(t *testing.T) {
	l := computeLayout(FrameMetrics{FrameSize: 100}, blocks(10, 10, 10, 10, 10), NavBasic, 2)
	tests := []struct {
		pos   float64
		first int
		page  int
	}{
		{0, 0, 0},
		{25, 0, 0},
		{26, 1, 0},
		{75, 1, 1},
		{76, 2, 1},
		{150, 3, 2},
	}
	for _, tc := range tests {
		rel := relativesAt(l, NavBasic, tc.pos)
		if rel.FirstItem != tc.first {
			t.Fatalf("at %v: expected first %d, got %d", tc.pos, tc.first, rel.FirstItem)
		}
		if rel.ActivePage != tc.page {
			t.Fatalf("at %v: expected page %d, got %d", tc.pos, tc.page, rel.ActivePage)
		}
		if rel.ActiveItem != -1 {
			t.Fatalf("at %v: expected no active item, got %d", tc.pos, rel.ActiveItem)
		}
	}
}

func TestSlideToSnapsAwayFromExtremes(t *testing.T) {
	h := fiveByTwo(t, nil)
	tests := []struct {
		target, want float64
	}{
		{60, 50},
		{110, 100},
		{140, 150},
		{0, 0},
		{150, 150},
		{400, 150},
		{-20, 0},
	}
	for _, tc := range tests {
		h.c.SlideTo(tc.target, true)
		if got := h.c.Pos().Dest; got != tc.want {
			t.Fatalf("SlideTo(%v): expected %v, got %v", tc.target, tc.want, got)
		}
	}
	h.c.SlideToRaw(60, true)
	if got := h.c.Pos().Dest; got != 60 {
		t.Fatalf("SlideToRaw(60): expected 60, got %v", got)
	}
}

func TestForceCenteredActivatesMiddle(t *testing.T) {
	o := DefaultOptions()
	o.ItemNav = "forceCentered"
	o.ActivateMiddle = true
	h := newHarness(t, o, FrameMetrics{FrameSize: 100}, 20, 20, 20, 20)
	h.c.SlideTo(-13, true)
	if got := h.c.Pos().Dest; got != -20 {
		t.Fatalf("expected snap to -20, got %v", got)
	}
	if got := h.c.Rel().ActiveItem; got != 1 {
		t.Fatalf("expected item 1 active, got %d", got)
	}
}
