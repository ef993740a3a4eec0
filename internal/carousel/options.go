package carousel

import (
	"sort"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Navigation selects how resting positions relate to item boundaries.
type Navigation int

const (
	// NavFree scrolls by raw offsets with no item snapping.
	NavFree Navigation = iota
	// NavBasic snaps the first visible item to the frame's leading edge.
	NavBasic
	// NavCentered snaps the nearest item to the frame center.
	NavCentered
	// NavForceCentered only allows positions where an item is centered.
	NavForceCentered
)

// ParseNavigation maps option names ("basic", "centered", "forceCentered")
// to a Navigation. Anything else is free navigation.
func ParseNavigation(value string) Navigation {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "basic":
		return NavBasic
	case "centered":
		return NavCentered
	case "forcecentered", "force-centered", "force_centered":
		return NavForceCentered
	default:
		return NavFree
	}
}

func (n Navigation) String() string {
	switch n {
	case NavBasic:
		return "basic"
	case NavCentered:
		return "centered"
	case NavForceCentered:
		return "forceCentered"
	default:
		return "free"
	}
}

// Cycling and keyboard units.
const (
	ByItems = "items"
	ByPages = "pages"
)

// Breakpoint overrides options while the viewport is narrower than
// Breakpoint columns.
type Breakpoint struct {
	Breakpoint int            `mapstructure:"breakpoint"`
	Settings   map[string]any `mapstructure:"settings"`
}

// Options is the flat option set of a carousel.
type Options struct {
	ItemNav        string `mapstructure:"itemNav"`
	VisibleItems   int    `mapstructure:"visibleItems"`
	Smart          bool   `mapstructure:"smart"`
	ActivateOn     string `mapstructure:"activateOn"`
	ActivateMiddle bool   `mapstructure:"activateMiddle"`

	ScrollBy     int           `mapstructure:"scrollBy"`
	ScrollHijack time.Duration `mapstructure:"scrollHijack"`
	ScrollTrap   bool          `mapstructure:"scrollTrap"`

	MouseDragging bool    `mapstructure:"mouseDragging"`
	TouchDragging bool    `mapstructure:"touchDragging"`
	ReleaseSwing  bool    `mapstructure:"releaseSwing"`
	SwingSpeed    float64 `mapstructure:"swingSpeed"`
	ElasticBounds bool    `mapstructure:"elasticBounds"`
	DragThreshold float64 `mapstructure:"dragThreshold"`

	DragHandle    bool    `mapstructure:"dragHandle"`
	DynamicHandle bool    `mapstructure:"dynamicHandle"`
	MinHandleSize int     `mapstructure:"minHandleSize"`
	ClickBar      bool    `mapstructure:"clickBar"`
	SyncSpeed     float64 `mapstructure:"syncSpeed"`

	ActivatePageOn string `mapstructure:"activatePageOn"`

	CycleBy       string        `mapstructure:"cycleBy"`
	CycleInterval time.Duration `mapstructure:"cycleInterval"`
	PauseOnHover  bool          `mapstructure:"pauseOnHover"`
	StartPaused   bool          `mapstructure:"startPaused"`

	MoveBy        float64       `mapstructure:"moveBy"`
	Speed         time.Duration `mapstructure:"speed"`
	StartAt       *float64      `mapstructure:"startAt"`
	KeyboardNavBy string        `mapstructure:"keyboardNavBy"`

	Responsive []Breakpoint `mapstructure:"responsive"`
}

// DefaultOptions returns the option defaults.
func DefaultOptions() Options {
	return Options{
		Smart:         true,
		ScrollHijack:  300 * time.Millisecond,
		SwingSpeed:    0.2,
		DragThreshold: 3,
		MinHandleSize: 3,
		SyncSpeed:     0.5,
		CycleInterval: 5 * time.Second,
		MoveBy:        30,
	}
}

// Navigation returns the parsed ItemNav.
func (o Options) Navigation() Navigation {
	return ParseNavigation(o.ItemNav)
}

// ForViewport returns a copy of o with every breakpoint wider than viewport
// applied in ascending breakpoint order, so the widest matching breakpoint
// wins. Settings keys that name no option are ignored.
func (o Options) ForViewport(viewport int) Options {
	out := o
	bps := append([]Breakpoint(nil), o.Responsive...)
	sort.SliceStable(bps, func(i, j int) bool { return bps[i].Breakpoint < bps[j].Breakpoint })
	for _, bp := range bps {
		if viewport >= bp.Breakpoint {
			continue
		}
		if err := decodeInto(&out, bp.Settings); err != nil {
			carouselLog.Warn("ignored breakpoint settings", "breakpoint", bp.Breakpoint, "error", err)
		}
	}
	out.Responsive = o.Responsive
	return out
}

// Set updates a single option by its mapstructure name. Unknown names and
// values of the wrong shape are ignored.
func (o *Options) Set(name string, value any) bool {
	if err := decodeInto(o, map[string]any{name: value}); err != nil {
		return false
	}
	return true
}

// decodeInto overlays settings on dst, leaving absent keys untouched.
func decodeInto(dst *Options, settings map[string]any) error {
	if len(settings) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           dst,
		WeaklyTypedInput: true,
		DecodeHook:       DecodeHook(),
	})
	if err != nil {
		return err
	}
	return dec.Decode(settings)
}

// DecodeHook is the mapstructure hook options are decoded with. Plain
// numbers stand for milliseconds wherever a duration is expected.
func DecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		millisecondsHook,
		mapstructure.StringToTimeDurationHookFunc(),
	)
}
