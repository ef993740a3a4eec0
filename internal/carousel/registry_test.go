package carousel

import (
	"errors"
	"testing"
	"time"
)

func TestInitTwice(t *testing.T) {
	sched := newManualScheduler()
	f := NewFactory(sched)
	cfg := Config{Elements: blocks(10)}

	first, err := f.Init("frame", cfg)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if _, err := f.Init("frame", cfg); !errors.Is(err, ErrAlreadyInitialized) {
		t.Fatalf("expected ErrAlreadyInitialized, got %v", err)
	}
	if err := first.Init(); err != nil {
		t.Fatalf("expected re-init of the same instance to be a no-op, got %v", err)
	}
	if got, ok := f.Get("frame"); !ok || got != first {
		t.Fatalf("expected the first instance to stay registered")
	}

	first.Destroy()
	if _, ok := f.Get("frame"); ok {
		t.Fatalf("expected destroy to unregister")
	}
	if _, err := f.Init("frame", cfg); err != nil {
		t.Fatalf("expected the handle to be free again, got %v", err)
	}
}

func TestDestroyLeavesNothingPending(t *testing.T) {
	h := fiveByTwo(t, func(o *Options) {
		o.MouseDragging = true
		o.CycleBy = ByPages
		o.CycleInterval = time.Second
		o.Speed = time.Second
	})
	h.c.SlideTo(150, false)
	h.sched.frame()
	h.c.PointerDown(SourceSlidee, press(50))
	h.c.PointerMove(press(10))
	if h.sched.pending() == 0 {
		t.Fatalf("expected work in flight before destroy")
	}

	h.c.Destroy()
	if n := h.sched.pending(); n != 0 {
		t.Fatalf("expected nothing pending after destroy, got %d", n)
	}
	if h.c.Initialized() {
		t.Fatalf("expected the instance to be uninitialized")
	}

	h.reset()
	h.sched.advance(10 * time.Second)
	h.sched.frame()
	h.c.emit(Event{Name: EventMove})
	if len(h.events) != 0 {
		t.Fatalf("expected listeners to be gone, got %v", h.events)
	}
	if h.view.pageCount != 0 {
		t.Fatalf("expected the view to be reset")
	}
}

func TestHandles(t *testing.T) {
	f := NewFactory(newManualScheduler())
	for _, h := range []Handle{"b", "a", "c"} {
		if _, err := f.Init(h, Config{}); err != nil {
			t.Fatalf("init %s: %v", h, err)
		}
	}
	got := f.Handles()
	if len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Fatalf("expected sorted handles, got %v", got)
	}
}
