package wmf2svg

import "github.com/rs/zerolog"

// convState is the mutable state threaded through one Convert call: the
// current device context, its save/restore stack, the object table, the
// coordinate system, the pen position, and the SVG output sink. Record
// handlers take a *convState so they can read and mutate any of it
// without a long parameter list.
type convState struct {
	dc      deviceContext
	dcStack dcStack
	objects *objectTable
	coords  coordSystem

	curX, curY float64

	svg *svgEmitter
	log zerolog.Logger

	recordNum int
}

func (s *convState) saveDC() {
	s.dcStack.push(s.dc)
}

func (s *convState) restoreDC(n int16) {
	if n == 0 {
		return
	}
	if n > 0 {
		// A positive argument means "restore this many times from the
		// top", matching Windows' documented RESTOREDC(positive) behavior.
		dc, ok := s.dcStack.restore(int(n))
		if ok {
			s.dc = dc
		}
		return
	}
	// A negative argument counts back from the top of the stack:
	// RESTOREDC(-1) restores the most recently saved DC, same as +1.
	dc, ok := s.dcStack.restore(int(-n))
	if ok {
		s.dc = dc
	}
}
