package carousel

import "testing"

func itemStrip(t *testing.T) *harness {
	t.Helper()
	return newHarness(t, basicOptions(), FrameMetrics{FrameSize: 100}, 40, 40, 40, 40, 40)
}

func order(h *harness, want ...Element) bool {
	els := h.c.Elements()
	if len(els) != len(want) {
		return false
	}
	for i := range els {
		if els[i] != want[i] {
			return false
		}
	}
	return true
}

func TestAddShiftsActiveItem(t *testing.T) {
	h := itemStrip(t)
	h.c.Activate(2, true)

	x := &block{w: 40}
	h.c.Add(x, 0)
	if h.c.Elements()[0] != x {
		t.Fatalf("expected x first")
	}
	if got := h.c.Rel().ActiveItem; got != 3 {
		t.Fatalf("expected active 3, got %d", got)
	}

	y := &block{w: 40}
	h.c.Add(y, -1)
	if got := h.c.IndexOf(y); got != 6 {
		t.Fatalf("expected y appended at 6, got %d", got)
	}
	if got := h.c.Rel().ActiveItem; got != 3 {
		t.Fatalf("expected appending to keep active 3, got %d", got)
	}

	h.c.Add(&block{w: 40}, 3)
	if got := h.c.Rel().ActiveItem; got != 4 {
		t.Fatalf("expected inserting at the active index to shift it, got %d", got)
	}
	if got := len(h.c.Items()); got != 8 {
		t.Fatalf("expected 8 items, got %d", got)
	}
	if h.count(EventLoad) != 4 {
		t.Fatalf("expected a load per add, got %d", h.count(EventLoad))
	}
}

func TestRemove(t *testing.T) {
	h := itemStrip(t)
	els := append([]Element(nil), h.c.Elements()...)
	h.c.Activate(2, true)

	if !h.c.RemoveAt(0) {
		t.Fatalf("expected item 0 removed")
	}
	if got := h.c.Rel().ActiveItem; got != 1 {
		t.Fatalf("expected active to follow to 1, got %d", got)
	}

	h.view.activations = nil
	if !h.c.Remove(els[2]) {
		t.Fatalf("expected the active element removed")
	}
	if got := h.c.Rel().ActiveItem; got != 1 {
		t.Fatalf("expected its successor active at 1, got %d", got)
	}
	if len(h.view.activations) != 1 || h.view.activations[0] != 1 {
		t.Fatalf("expected the view to reactivate 1, got %v", h.view.activations)
	}
	if !order(h, els[1], els[3], els[4]) {
		t.Fatalf("unexpected order %v", h.c.Elements())
	}

	h.c.Activate(2, true)
	if !h.c.RemoveAt(-1) {
		t.Fatalf("expected the last item removed")
	}
	if got := h.c.Rel().ActiveItem; got != 1 {
		t.Fatalf("expected the new last item active, got %d", got)
	}

	if h.c.RemoveAt(10) || h.c.Remove(&block{w: 1}) {
		t.Fatalf("expected unknown items to be ignored")
	}
}

func TestRemoveEverything(t *testing.T) {
	h := itemStrip(t)
	h.c.Activate(0, true)
	for h.c.RemoveAt(0) {
	}
	if got := h.c.Rel().ActiveItem; got != -1 {
		t.Fatalf("expected nothing active, got %d", got)
	}
	pos := h.c.Pos()
	if pos.Start != 0 || pos.End != 0 {
		t.Fatalf("expected degenerate limits, got %+v", pos)
	}
}

func TestMoveItems(t *testing.T) {
	tests := []struct {
		name       string
		active     int
		move       func(c *Carousel) bool
		order      []int
		wantActive int
	}{
		{"before, down", 0, func(c *Carousel) bool { return c.MoveBefore(0, 3) }, []int{1, 2, 0, 3, 4}, 2},
		{"after, down", 2, func(c *Carousel) bool { return c.MoveAfter(0, 3) }, []int{1, 2, 3, 0, 4}, 1},
		{"before, up", 1, func(c *Carousel) bool { return c.MoveBefore(4, 1) }, []int{0, 4, 1, 2, 3}, 2},
		{"after, up", 4, func(c *Carousel) bool { return c.MoveAfter(4, 0) }, []int{0, 4, 1, 2, 3}, 1},
		{"after, up keeps anchor", 1, func(c *Carousel) bool { return c.MoveAfter(4, 1) }, []int{0, 1, 4, 2, 3}, 1},
		{"negative indexes", 3, func(c *Carousel) bool { return c.MoveBefore(-1, 0) }, []int{4, 0, 1, 2, 3}, 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := itemStrip(t)
			els := append([]Element(nil), h.c.Elements()...)
			h.c.Activate(tc.active, true)
			if !tc.move(h.c) {
				t.Fatalf("expected a move")
			}
			want := make([]Element, len(tc.order))
			for i, idx := range tc.order {
				want[i] = els[idx]
			}
			if !order(h, want...) {
				t.Fatalf("unexpected order")
			}
			if got := h.c.Rel().ActiveItem; got != tc.wantActive {
				t.Fatalf("expected active %d, got %d", tc.wantActive, got)
			}
		})
	}
}

func TestMoveItemNoop(t *testing.T) {
	h := itemStrip(t)
	if h.c.MoveBefore(0, 1) || h.c.MoveAfter(1, 0) || h.c.MoveBefore(2, 2) || h.c.MoveAfter(9, 0) {
		t.Fatalf("expected no-op moves to be refused")
	}
}
