package scroll

// StepMode selects how the navigation step is derived.
type StepMode int

const (
	// StepAuto sets the step to half the viewport width on every layout pass.
	StepAuto StepMode = iota
	// StepFixed uses a configured column count as the step.
	StepFixed
)

// autoStepDivisor halves the viewport width for StepAuto.
const autoStepDivisor = 2

// State tracks the scroll position of a content strip inside a viewport.
// The zero value is a valid, non-scrolling state.
type State struct {
	offset   int
	width    int
	viewport int
	step     int
}

// SetMetrics recomputes the derived layout values from fresh measurements.
// itemWidths are the outer extents (margins included) of each item in order;
// their sum is floored at the viewport width so content never reports
// narrower than the visible area. The current offset is re-clamped against
// the new bounds.
func (s *State) SetMetrics(viewport int, itemWidths []int, mode StepMode, fixedStep int) {
	if viewport < 0 {
		viewport = 0
	}
	s.viewport = viewport

	total := 0
	for _, w := range itemWidths {
		if w > 0 {
			total += w
		}
	}
	if total < viewport {
		total = viewport
	}
	s.width = total

	if mode == StepFixed && fixedStep > 0 {
		s.step = fixedStep
	} else {
		s.step = viewport / autoStepDivisor
	}

	s.SetOffset(s.offset)
}

// MaxOffset returns the largest reachable offset.
func (s *State) MaxOffset() int {
	max := s.width - s.viewport
	if max < 0 {
		return 0
	}
	return max
}

// SetOffset clamps n into [0, MaxOffset] and stores it. Clamping is a fixed
// point: re-applying it to the stored value changes nothing.
func (s *State) SetOffset(n int) {
	if n < 0 {
		n = 0
	}
	if max := s.MaxOffset(); n > max {
		n = max
	}
	s.offset = n
}

// Next advances the offset by one step, clamped at the end of the content.
func (s *State) Next() {
	s.SetOffset(s.offset + s.step)
}

// Prev moves the offset back by one step, clamped at the start.
func (s *State) Prev() {
	s.SetOffset(s.offset - s.step)
}

// Offset returns the current clamped offset.
func (s *State) Offset() int {
	return s.offset
}

// Width returns the measured content width (never below the viewport).
func (s *State) Width() int {
	return s.width
}

// Viewport returns the viewport width in columns.
func (s *State) Viewport() int {
	return s.viewport
}

// Step returns the per-action scroll distance.
func (s *State) Step() int {
	return s.step
}

// Scrollable reports whether the content extends past the viewport.
func (s *State) Scrollable() bool {
	return s.width > s.viewport
}

// PrevVisible reports whether the "previous" control should be shown.
func (s *State) PrevVisible() bool {
	return s.Scrollable() && s.offset > 0
}

// NextVisible reports whether the "next" control should be shown.
func (s *State) NextVisible() bool {
	return s.Scrollable() && s.offset < s.MaxOffset()
}

// AtStart reports whether the strip is scrolled to its beginning. Used for
// edge-fade styling; true for non-scrollable content as well.
func (s *State) AtStart() bool {
	return s.offset == 0
}

// AtEnd reports whether the strip is scrolled to its end.
func (s *State) AtEnd() bool {
	return s.offset == s.MaxOffset()
}
