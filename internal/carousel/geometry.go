package carousel

import "math"

// Element is one piece of slidee content. Size reports its natural width
// in cells; it is ignored when VisibleItems forces a width.
type Element interface {
	Size() int
}

// FrameMetrics are the live measurements the geometry is computed from.
type FrameMetrics struct {
	FrameSize       int
	ScrollbarSize   int
	PaddingStart    int
	PaddingEnd      int
	ItemMarginStart int
	ItemMarginEnd   int
}

// Measurer reports current frame metrics. It is asked on every load.
type Measurer interface {
	Metrics() FrameMetrics
}

// MeasurerFunc adapts a function to Measurer.
type MeasurerFunc func() FrameMetrics

func (f MeasurerFunc) Metrics() FrameMetrics { return f() }

// Item holds one element's offsets relative to the slidee origin.
type Item struct {
	Size   float64
	Half   float64
	Start  float64
	Center float64
	End    float64
}

// Layout is the full geometry derived from one measurement.
type Layout struct {
	FrameSize  float64
	SlideeSize float64
	// ItemSize is the forced item width, or 0 when items keep their size.
	ItemSize int
	Items    []Item
	Start    float64
	End      float64
	Center   float64
	Pages    []float64
}

// ItemWidth returns the rendered width of el: the forced width when set,
// the element's own size otherwise.
func (l Layout) ItemWidth(el Element) int {
	if l.ItemSize > 0 {
		return l.ItemSize
	}
	return el.Size()
}

// round matches the rounding of the position math everywhere: halves go up.
func round(v float64) float64 {
	return math.Floor(v + 0.5)
}

func within(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// forcedItemSize is the width that makes exactly visible items, with their
// inner margins, fill the frame.
func forcedItemSize(m FrameMetrics, visible int) float64 {
	n := float64(visible)
	frame := float64(m.FrameSize)
	margins := float64(m.ItemMarginStart)*n + float64(m.ItemMarginEnd)*(n-1)
	return frame/n - margins/n
}

// computeLayout walks the elements left to right and derives item offsets,
// position limits and pages.
func computeLayout(m FrameMetrics, elements []Element, nav Navigation, visible int) Layout {
	l := Layout{FrameSize: float64(m.FrameSize)}
	frame := l.FrameSize
	marginStart := float64(m.ItemMarginStart)
	marginEnd := float64(m.ItemMarginEnd)
	paddingStart := float64(m.PaddingStart)
	paddingEnd := float64(m.PaddingEnd)

	if visible > 0 && len(elements) > 0 {
		// A frame narrower than visible cells still forces the size; one
		// cell is the least an item can take.
		l.ItemSize = max(1, int(round(forcedItemSize(m, visible))))
	}

	slidee := 0.0
	ignoredMargin := 0.0
	last := len(elements) - 1
	l.Items = make([]Item, 0, len(elements))
	for i, el := range elements {
		size := float64(l.ItemWidth(el))
		full := size + marginStart + marginEnd
		singleSpaced := marginStart == 0 || marginEnd == 0

		it := Item{}
		if singleSpaced {
			it.Size = size
			it.Start = slidee + marginStart
		} else {
			it.Size = full
			it.Start = slidee
		}
		it.Half = it.Size / 2
		it.Center = it.Start - round(frame/2-it.Size/2)
		it.End = it.Start - frame + it.Size

		if i == 0 {
			slidee += paddingStart
		}
		slidee += full
		if i == last {
			it.End += paddingEnd
			slidee += paddingEnd
			if singleSpaced {
				ignoredMargin = marginEnd
			}
		}
		l.Items = append(l.Items, it)
	}
	l.SlideeSize = slidee - ignoredMargin

	if len(l.Items) > 0 {
		first, lastItem := l.Items[0], l.Items[len(l.Items)-1]
		switch {
		case nav == NavFree:
			l.Start, l.End = 0, math.Max(l.SlideeSize-frame, 0)
		case nav == NavForceCentered:
			l.Start, l.End = first.Center, lastItem.Center
		case frame < l.SlideeSize:
			l.Start, l.End = first.Start, lastItem.End
		default:
			l.Start, l.End = first.Start, first.Start
		}
	}
	l.Center = round(l.End/2 + l.Start/2)
	l.Pages = computePages(l, nav)
	return l
}

// computePages lists the offsets where pages begin.
func computePages(l Layout, nav Navigation) []float64 {
	if l.FrameSize <= 0 {
		return nil
	}
	var pages []float64
	temp := l.Start
	if nav == NavFree {
		for temp-l.FrameSize < l.End {
			pages = append(pages, temp)
			temp += l.FrameSize
		}
		return pages
	}
	for _, it := range l.Items {
		if nav == NavForceCentered {
			pages = append(pages, it.Center)
			continue
		}
		if it.Start+it.Size > temp && temp <= l.End {
			temp = it.Start
			pages = append(pages, temp)
			temp += l.FrameSize
			if temp > l.End && temp < l.End+l.FrameSize {
				pages = append(pages, l.End)
			}
		}
	}
	return pages
}

// handleGeometry is the scrollbar handle size and its travel end.
type handleGeometry struct {
	trackSize float64
	size      float64
	end       float64
}

func computeHandle(trackSize int, dynamic bool, minSize int, l Layout) handleGeometry {
	if trackSize <= 0 {
		return handleGeometry{}
	}
	track := float64(trackSize)
	size := float64(minSize)
	if dynamic {
		if l.Start == l.End || l.SlideeSize <= 0 {
			size = track
		} else {
			size = round(track * l.FrameSize / l.SlideeSize)
		}
	}
	size = math.Min(within(size, float64(minSize), track), track)
	return handleGeometry{trackSize: track, size: size, end: track - size}
}
