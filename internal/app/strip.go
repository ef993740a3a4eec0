package app

import "github.com/treykane/cli-carousel/internal/carousel"

// buttonState is how one navigation control should look.
type buttonState struct {
	marked   bool
	disabled bool
}

// stripState is what the carousel last pushed to the screen. View reads it;
// only the carousel writes it.
type stripState struct {
	offset     float64
	handleAt   float64
	handleSize float64
	pageCount  int
	activePage int
	// activeCard follows the element, not its index, so it survives
	// insertions and moves the way a marker on the element would.
	activeCard  carousel.Element
	elements    func() []carousel.Element
	buttons     [6]buttonState
	slideeDrag  bool
	handleDrag  bool
	transformed bool
}

var _ carousel.View = (*stripState)(nil)

func newStripState(elements func() []carousel.Element) *stripState {
	return &stripState{elements: elements}
}

func (s *stripState) SetTransform(offset float64) {
	s.offset = offset
	s.transformed = true
}

func (s *stripState) SetHandle(offset, size float64) {
	s.handleAt, s.handleSize = offset, size
}

func (s *stripState) SetPageCount(n int) {
	s.pageCount = n
	if s.activePage >= n {
		s.activePage = 0
	}
}

func (s *stripState) SetActivePage(i int) { s.activePage = i }

func (s *stripState) SetItemActive(i int, active bool) {
	var els []carousel.Element
	if s.elements != nil {
		els = s.elements()
	}
	if i < 0 || i >= len(els) {
		return
	}
	switch {
	case active:
		s.activeCard = els[i]
	case s.activeCard == els[i]:
		s.activeCard = nil
	}
}

func (s *stripState) SetButton(b carousel.Button, marked, disabled bool) {
	if int(b) < 0 || int(b) >= len(s.buttons) {
		return
	}
	s.buttons[b] = buttonState{marked: marked, disabled: disabled}
}

func (s *stripState) SetDragged(source carousel.DragSource, dragged bool) {
	switch source {
	case carousel.SourceSlidee:
		s.slideeDrag = dragged
	case carousel.SourceHandle:
		s.handleDrag = dragged
	}
}
