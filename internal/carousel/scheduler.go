package carousel

import (
	"log/slog"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/treykane/cli-carousel/internal/logging"
)

var carouselLog = logging.New("carousel")

// CancelFunc cancels a scheduled callback. Calling it more than once, or
// after the callback ran, is a no-op.
type CancelFunc func()

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// Scheduler delivers the carousel's deferred work. Every callback runs on
// the same goroutine as the carousel's other entry points.
type Scheduler interface {
	Clock
	// RequestFrame runs fn once on the next animation frame.
	RequestFrame(fn func(now time.Time)) CancelFunc
	// AfterFunc runs fn once after d.
	AfterFunc(d time.Duration, fn func()) CancelFunc
	// Every runs fn every d until cancelled.
	Every(d time.Duration, fn func()) CancelFunc
}

// cancel cancels and forgets a scheduled callback.
func cancel(fn *CancelFunc) {
	if *fn != nil {
		(*fn)()
		*fn = nil
	}
}

// millisecondsHook lets integer option values stand for milliseconds, the
// unit of every duration option.
func millisecondsHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(time.Duration(0)) {
		return data, nil
	}
	switch v := data.(type) {
	case string:
		ms, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return data, nil
		}
		return time.Duration(ms * float64(time.Millisecond)), nil
	case int:
		return time.Duration(v) * time.Millisecond, nil
	case int64:
		return time.Duration(v) * time.Millisecond, nil
	case float64:
		return time.Duration(v * float64(time.Millisecond)), nil
	}
	return data, nil
}

func logAttrs(c *Carousel) slog.Attr {
	return slog.Group("carousel",
		slog.String("handle", string(c.handle)),
		slog.Int("items", len(c.elements)),
		slog.String("nav", c.nav.String()),
	)
}
