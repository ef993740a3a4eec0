package carousel

import (
	"testing"
	"time"
)

func press(x float64) PointerEvent {
	return PointerEvent{X: x, Primary: true, Target: 0}
}

func TestShortDragIsAClick(t *testing.T) {
	h := fiveByTwo(t, func(o *Options) { o.MouseDragging = true })
	before := h.c.Pos()
	h.reset()

	if !h.c.PointerDown(SourceSlidee, press(10)) {
		t.Fatalf("expected the press to be taken")
	}
	h.c.PointerMove(press(12))
	h.c.PointerUp(press(12))

	if got := h.c.Pos(); got != before {
		t.Fatalf("expected no movement, got %+v", got)
	}
	if h.count(EventChange) != 0 {
		t.Fatalf("expected no change event, got %v", h.events)
	}
	d := h.c.Dragging()
	if !d.Released || d.Init {
		t.Fatalf("expected the gesture to end undecided, got %+v", d)
	}
	if !h.c.Click(0) {
		t.Fatalf("expected the click to go through")
	}
	if h.sched.pending() != 0 {
		t.Fatalf("expected the history sampler to stop, got %d pending", h.sched.pending())
	}
}

func TestDragFollowsPointer(t *testing.T) {
	h := freeStrip(t, nil)
	h.c.PointerDown(SourceSlidee, press(50))
	h.c.PointerMove(press(20))

	if got := h.c.Pos().Dest; got != 30 {
		t.Fatalf("expected dest 30, got %v", got)
	}
	if !h.c.Animation().Immediate {
		t.Fatalf("expected the slidee to follow immediately")
	}
	if !h.view.dragged[SourceSlidee] {
		t.Fatalf("expected the slidee marked as dragged")
	}
	h.sched.frame()
	if got := h.c.Pos().Cur; got != 30 {
		t.Fatalf("expected cur 30 after a frame, got %v", got)
	}

	h.reset()
	h.c.PointerUp(press(20))
	if h.count(EventMoveEnd) != 1 {
		t.Fatalf("expected moveEnd on release, got %v", h.events)
	}
	if h.view.dragged[SourceSlidee] {
		t.Fatalf("expected the dragged marker cleared")
	}
	if h.c.Click(0) {
		t.Fatalf("expected the click ending the drag to be swallowed")
	}
	if !h.c.Click(0) {
		t.Fatalf("expected only one click to be swallowed")
	}
}

func TestClickLockExpires(t *testing.T) {
	h := freeStrip(t, nil)
	h.c.PointerDown(SourceSlidee, press(50))
	h.c.PointerMove(press(20))
	h.c.PointerUp(press(20))
	h.sched.advance(0)
	if !h.c.Click(0) {
		t.Fatalf("expected the lock to be gone after a tick")
	}
}

func TestClickLockOnlyPastLockDistance(t *testing.T) {
	h := freeStrip(t, nil)
	h.c.PointerDown(SourceSlidee, press(50))
	h.c.PointerMove(press(45))
	h.c.PointerUp(press(45))
	if got := h.c.Pos().Dest; got != 5 {
		t.Fatalf("expected dest 5, got %v", got)
	}
	if !h.c.Click(0) {
		t.Fatalf("expected a short drag to keep its click")
	}
}

func TestVerticalGestureIsAbandoned(t *testing.T) {
	h := freeStrip(t, nil)
	h.c.PointerDown(SourceSlidee, PointerEvent{X: 50, Y: 10, Primary: true})
	h.c.PointerMove(PointerEvent{X: 51, Y: 20, Primary: true})
	h.c.PointerMove(PointerEvent{X: 10, Y: 20, Primary: true})
	h.c.PointerUp(PointerEvent{X: 10, Y: 20, Primary: true})
	if got := h.c.Pos().Dest; got != 0 {
		t.Fatalf("expected no movement, got %v", got)
	}
}

func TestElasticDrag(t *testing.T) {
	h := freeStrip(t, func(o *Options) { o.ElasticBounds = true })
	h.c.PointerDown(SourceSlidee, press(50))
	h.c.PointerMove(press(110))
	if got := h.c.Pos().Dest; got != -10 {
		t.Fatalf("expected elastic dest -10, got %v", got)
	}
	h.c.PointerUp(press(110))
	if got := h.c.Pos().Dest; got != 0 {
		t.Fatalf("expected release to clamp to 0, got %v", got)
	}
	h.sched.settle(t)
	if got := h.c.Pos().Cur; got != 0 {
		t.Fatalf("expected to settle on 0, got %v", got)
	}
}

func TestReleaseSwing(t *testing.T) {
	h := freeStrip(t, func(o *Options) { o.ReleaseSwing = true })
	h.c.PointerDown(SourceSlidee, press(50))
	h.c.PointerMove(press(30))
	h.sched.advance(40 * time.Millisecond)
	if got := h.c.Dragging().History; got != [4]float64{-20, -20, -20, -20} {
		t.Fatalf("expected sampled history, got %v", got)
	}
	h.c.PointerMove(press(40))
	h.c.PointerUp(press(40))

	d := h.c.Dragging()
	// (-10 - -20) / 40 * 300
	if d.Swing != 75 {
		t.Fatalf("expected swing 75, got %v", d.Swing)
	}
	if got := h.c.Pos().Dest; got != 0 {
		t.Fatalf("expected swing back to 0, got %v", got)
	}
	if !h.c.Animation().Tweesing {
		t.Fatalf("expected a tweesed release")
	}
	h.sched.settle(t)
	if got := h.c.Pos().Cur; got != 0 {
		t.Fatalf("expected to settle on 0, got %v", got)
	}
}

func TestHandleDrag(t *testing.T) {
	h := freeStrip(t, func(o *Options) {
		o.DragHandle = true
		o.DynamicHandle = true
	})
	if _, size := h.c.Scrollbar(); size != 7 {
		t.Fatalf("expected handle size 7, got %v", size)
	}
	if !h.c.PointerDown(SourceHandle, press(0)) {
		t.Fatalf("expected the handle press to be taken")
	}
	h.c.PointerMove(press(13))
	if got := h.c.Pos().Dest; got != 200 {
		t.Fatalf("expected dest 200, got %v", got)
	}
	if !h.c.Animation().Tweesing {
		t.Fatalf("expected the handle drag to tweese")
	}
	h.c.PointerUp(press(13))
	h.sched.settle(t)
	if got := h.c.Pos().Cur; got != 200 {
		t.Fatalf("expected to settle on 200, got %v", got)
	}
	if offset, _ := h.c.Scrollbar(); offset != 13 {
		t.Fatalf("expected handle at 13, got %v", offset)
	}
	if h.view.handle != 13 || h.view.handleSize != 7 {
		t.Fatalf("expected view handle 13/7, got %v/%v", h.view.handle, h.view.handleSize)
	}
}

func TestPressRefused(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
		source DragSource
		ev     PointerEvent
	}{
		{"handle dragging off", nil, SourceHandle, press(0)},
		{"mouse dragging off", func(o *Options) { o.MouseDragging = false }, SourceSlidee, press(0)},
		{"secondary button", nil, SourceSlidee, PointerEvent{X: 0}},
		{"interactive target", nil, SourceSlidee, PointerEvent{X: 0, Primary: true, Interactive: true}},
		{"touch dragging off", nil, SourceSlidee, PointerEvent{X: 0, Touch: true}},
		{"no source", nil, SourceNone, press(0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := freeStrip(t, tc.mutate)
			if h.c.PointerDown(tc.source, tc.ev) {
				t.Fatalf("expected the press to be refused")
			}
			if !h.c.Dragging().Released {
				t.Fatalf("expected no gesture")
			}
		})
	}
}

func TestDragPausesCycling(t *testing.T) {
	h := fiveByTwo(t, func(o *Options) {
		o.MouseDragging = true
		o.CycleBy = ByPages
	})
	if !h.c.Cycling() {
		t.Fatalf("expected cycling to run")
	}
	h.c.PointerDown(SourceSlidee, press(50))
	if h.c.Paused() != 1 || h.c.Cycling() {
		t.Fatalf("expected a drag pause, got priority %d", h.c.Paused())
	}
	h.c.PointerUp(press(50))
	if h.c.Paused() != 0 || !h.c.Cycling() {
		t.Fatalf("expected cycling to resume, got priority %d", h.c.Paused())
	}
}
