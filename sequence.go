package pixelart

// Sequence produces an increasing run of block sizes, starting at a given
// size and growing until the size would exceed the width of the image. After
// each size the scale is doubled if the size was even, otherwise tripled.
//
// Successive calls to Next step through the sizes, in the same manner as a
// bufio.Scanner. Once Next returns false the sequence is exhausted and cannot
// be restarted.
type Sequence struct {
	start, width int
	scale        int
	size         int
	done         bool
}

// NewSequence returns a Sequence beginning at start for an image that is
// width pixels wide.
func NewSequence(start, width int) *Sequence {
	return &Sequence{
		start: start,
		width: width,
		scale: 1,
	}
}

// Next advances the sequence to the next size, which will then be available
// through the Size method. It returns false when the next size would exceed
// the width.
func (s *Sequence) Next() bool {
	if s.done {
		return false
	}

	// A start below one can never grow past the width
	if s.start < 1 {
		s.done = true
		return false
	}

	current := s.start * s.scale
	if current > s.width {
		s.done = true
		return false
	}

	s.size = current
	if current%2 == 0 {
		s.scale *= 2
	} else {
		s.scale *= 3
	}

	return true
}

// Size returns the most recent size generated by a call to Next.
func (s *Sequence) Size() int {
	return s.size
}

// Sizes returns every size generated by a Sequence beginning at start for an
// image that is width pixels wide.
func Sizes(start, width int) []int {
	var sizes []int
	for s := NewSequence(start, width); s.Next(); {
		sizes = append(sizes, s.Size())
	}
	return sizes
}
