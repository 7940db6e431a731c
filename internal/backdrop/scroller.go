package backdrop

import "github.com/vovakirdan/skyraid/internal/core"

// Scroller is the consumer side of the pipeline. It belongs to the tick
// loop and never blocks: frames are pulled with non-blocking receives.
//
// The outgoing frame slides up by the offset while the incoming one
// follows directly below it. When the offset reaches the viewport
// height the incoming frame takes over.
type Scroller struct {
	frames  <-chan Frame
	speed   float64
	current *Frame
	next    *Frame
	offset  float64
	closed  bool
}

// NewScroller creates a scroller that advances speed cell rows per tick.
// A nil channel gives a scroller that never shows anything.
func NewScroller(frames <-chan Frame, speed float64) *Scroller {
	return &Scroller{frames: frames, speed: speed}
}

// Tick advances the scroll position for a viewport of height rows.
func (s *Scroller) Tick(height int) {
	s.fill()
	if s.current == nil || height <= 0 {
		return
	}

	s.offset += s.speed
	if s.offset >= float64(height) {
		if s.next != nil {
			s.current, s.next = s.next, nil
		}
		s.offset = 0
		s.fill()
	}
}

// fill takes at most one frame into whichever slot is empty.
func (s *Scroller) fill() {
	if s.current != nil && s.next != nil {
		return
	}
	f, ok := s.receive()
	if !ok {
		return
	}
	if s.current == nil {
		s.current = f
	} else {
		s.next = f
	}
}

func (s *Scroller) receive() (*Frame, bool) {
	if s.frames == nil || s.closed {
		return nil, false
	}
	select {
	case f, ok := <-s.frames:
		if !ok {
			s.closed = true
			return nil, false
		}
		return &f, true
	default:
		return nil, false
	}
}

// Draw paints frame colors into cell backgrounds. Cells outside the
// frames keep whatever background they had.
func (s *Scroller) Draw(dst *core.Screen) {
	if s.current == nil {
		return
	}
	h := dst.Height()
	off := int(s.offset)

	// With nothing queued the current frame wraps onto itself.
	incoming := s.next
	if incoming == nil {
		incoming = s.current
	}

	for y := 0; y < h; y++ {
		f, row := s.current, y+off
		if row >= h {
			f, row = incoming, row-h
		}
		for x := 0; x < dst.Width(); x++ {
			if c, ok := f.At(x, row); ok {
				dst.SetBackground(x, y, c)
			}
		}
	}
}

// Current returns the frame being shown, or nil before the first one.
func (s *Scroller) Current() *Frame {
	return s.current
}

// Next returns the look-ahead frame, if any.
func (s *Scroller) Next() *Frame {
	return s.next
}

// Offset returns the scroll offset in cell rows.
func (s *Scroller) Offset() float64 {
	return s.offset
}

// Closed reports whether the producer has exited.
func (s *Scroller) Closed() bool {
	return s.closed
}
