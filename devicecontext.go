package wmf2svg

// Pen styles (low nibble of the stroke style field).
const (
	penSolid       = 0
	penDash        = 1
	penDot         = 2
	penDashDot     = 3
	penDashDotDot  = 4
	penNull        = 5
	penInsideFrame = 6
)

// Brush styles.
const (
	brushSolid  = 0
	brushNull   = 1
	brushHollow = 1 // WMF defines NULL and HOLLOW as the same value.
	brushHatched = 2
)

// Background modes.
const (
	bkTransparent = 1
	bkOpaque      = 2
)

// Polygon fill modes.
const (
	fillAlternate = 1
	fillWinding   = 2
)

// Text alignment bits.
const (
	taNoUpdateCP = 0x0000
	taLeft       = 0x0000
	taRight      = 0x0002
	taCenter     = 0x0006
	taTop        = 0x0000
	taBottom     = 0x0008
	taBaseline   = 0x0018
)

const ropCopyPen = 13

// deviceContext is the mutable bundle of drawing attributes a WMF record
// stream reads and writes over time. It is a plain value type: Go structs
// (and the strings inside them) copy safely by assignment, so "save" is
// just `stack = append(stack, dc)` and "restore" is just `dc = stack[i]`
// -- no manual deep-copy/free bookkeeping is needed the way the original
// C implementation required for its heap-owned font_name field.
type deviceContext struct {
	// Pen (stroke).
	strokeSet   bool
	strokeStyle uint16
	strokeColor ColorRef
	strokeWidth float64

	// Brush (fill).
	fillSet   bool
	fillStyle uint16
	fillHatch uint16
	fillColor ColorRef

	// Font.
	fontSet         bool
	fontName        string
	fontHeight      int16
	fontWidth       int16
	fontEscapement  int16
	fontOrientation int16
	fontWeight      int16
	fontItalic      uint8
	fontUnderline   uint8
	fontStrikeout   uint8
	fontCharset     uint8

	// Text.
	textColor ColorRef
	textAlign uint16

	// Background.
	bkColor ColorRef
	bkMode  uint16

	fillPolyMode uint16
	rop2Mode     uint16
}

// defaultDeviceContext returns the DC state a fresh converter starts
// with: a solid
// 1px black pen, a solid white brush, black text on an opaque white
// background, alternate fill, and ROP2 = R2_COPYPEN.
func defaultDeviceContext() deviceContext {
	return deviceContext{
		strokeSet:   true,
		strokeStyle: penSolid,
		strokeColor: ColorRef{0, 0, 0},
		strokeWidth: 1.0,

		fillSet:   true,
		fillStyle: brushSolid,
		fillColor: ColorRef{255, 255, 255},

		textColor: ColorRef{0, 0, 0},
		textAlign: taLeft | taTop,

		bkColor: ColorRef{255, 255, 255},
		bkMode:  bkOpaque,

		fillPolyMode: fillAlternate,
		rop2Mode:     ropCopyPen,
	}
}

// dcStack is a LIFO stack of device-context snapshots, implemented as a
// growable slice rather than a linked list: every operation is push,
// peek-copy, or pop, so a slice gives the same behavior with simpler code.
type dcStack struct {
	frames []deviceContext
}

func (s *dcStack) push(dc deviceContext) {
	s.frames = append(s.frames, dc)
}

// restore pops min(len(frames), count) frames and returns the DC from the
// last one popped, along with whether any frame was available at all.
func (s *dcStack) restore(count int) (deviceContext, bool) {
	var last deviceContext
	ok := false
	for i := 0; i < count && len(s.frames) > 0; i++ {
		n := len(s.frames) - 1
		last = s.frames[n]
		s.frames = s.frames[:n]
		ok = true
	}
	return last, ok
}
