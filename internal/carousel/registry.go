package carousel

import (
	"errors"
	"fmt"
	"sort"
)

// ErrAlreadyInitialized is returned by Init when the handle is already
// bound to a live carousel.
var ErrAlreadyInitialized = errors.New("carousel already initialized")

// Factory owns the carousels of one screen: the handle registry, the
// scheduler they run on and the wheel coordinator they share.
type Factory struct {
	sched     Scheduler
	wheel     *WheelCoordinator
	instances map[Handle]*Carousel
}

// NewFactory returns a factory whose carousels run on sched.
func NewFactory(sched Scheduler) *Factory {
	return &Factory{
		sched:     sched,
		wheel:     NewWheelCoordinator(),
		instances: map[Handle]*Carousel{},
	}
}

// Wheel returns the coordinator shared by the factory's carousels.
func (f *Factory) Wheel() *WheelCoordinator { return f.wheel }

// New builds a carousel for h without initializing it.
func (f *Factory) New(h Handle, cfg Config) *Carousel {
	return newCarousel(f, h, cfg)
}

// Init builds and initializes a carousel for h.
func (f *Factory) Init(h Handle, cfg Config) (*Carousel, error) {
	c := f.New(h, cfg)
	if err := c.Init(); err != nil {
		return nil, err
	}
	return c, nil
}

// Get returns the live carousel bound to h.
func (f *Factory) Get(h Handle) (*Carousel, bool) {
	c, ok := f.instances[h]
	return c, ok
}

// Handles returns the handles of all live carousels, sorted.
func (f *Factory) Handles() []Handle {
	out := make([]Handle, 0, len(f.instances))
	for h := range f.instances {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (f *Factory) register(c *Carousel) error {
	if existing, ok := f.instances[c.handle]; ok && existing != c {
		carouselLog.Error("double initialization", "handle", string(c.handle))
		return fmt.Errorf("%w: %s", ErrAlreadyInitialized, c.handle)
	}
	f.instances[c.handle] = c
	return nil
}

func (f *Factory) unregister(c *Carousel) {
	if f.instances[c.handle] == c {
		delete(f.instances, c.handle)
	}
}
