package wmf2svg

import (
	"math"
	"strconv"
)

// ETO_* flags from the fwOpts field of EXTTEXTOUT, just enough to know
// whether an optional clipping/opaquing rectangle follows the fixed
// fields.
const (
	etoOpaque  = 0x0002
	etoClipped = 0x0004
)

func handleTextOut(s *convState, body []byte) {
	r := newByteReader(body)
	length, err := r.i16()
	if err != nil || length <= 0 {
		return
	}
	raw, err := r.bytes(int(length))
	if err != nil {
		return
	}
	if length%2 != 0 {
		r.skip(1) // padding to a 16-bit boundary
	}
	pt, err := r.pointYX()
	if err != nil {
		return
	}

	x, y := s.coords.scalePoint(pt)
	s.emitText(x, y, decodeText(raw, s.dc.fontCharset))
	s.logRecord("TEXTOUT", outcomeSupported, map[string]any{"len": length})
}

func handleExtTextOut(s *convState, body []byte) {
	r := newByteReader(body)
	pt, err := r.pointYX()
	if err != nil {
		return
	}
	length, err := r.i16()
	if err != nil || length <= 0 {
		return
	}
	opts, err := r.u16()
	if err != nil {
		return
	}
	if opts&(etoOpaque|etoClipped) != 0 {
		if err := r.skip(8); err != nil { // clipping/opaquing rectangle, unused
			return
		}
	}
	raw, err := r.bytes(int(length))
	if err != nil {
		return
	}

	x, y := s.coords.scalePoint(pt)
	s.emitText(x, y, decodeText(raw, s.dc.fontCharset))
	s.logRecord("EXTTEXTOUT", outcomeSupported, map[string]any{"len": length, "opts": opts})
}

// emitText writes one <text> element at (x,y) using the current device
// context's text color, font, and alignment.
func (s *convState) emitText(x, y float64, text string) {
	fontSize := math.Abs(float64(s.dc.fontHeight)) * s.coords.scaling
	if fontSize < 1.0 {
		fontSize = 12.0
	}

	anchor := "start"
	if s.dc.textAlign&taCenter != 0 {
		anchor = "middle"
	} else if s.dc.textAlign&taRight != 0 {
		anchor = "end"
	}

	fill := `fill="` + s.dc.textColor.Hex() + `" `
	fontFamily := ""
	if s.dc.fontName != "" {
		fontFamily = `font-family="` + xmlEscape(s.dc.fontName) + `" `
	}
	style := ""
	if s.dc.fontItalic != 0 {
		style = `font-style="italic" `
	}
	weight := ""
	if s.dc.fontWeight > 400 {
		weight = `font-weight="bold" `
	}

	s.svg.textStart(x, y, fill, strconv.FormatFloat(fontSize, 'f', 2, 64), anchor, fontFamily, style, weight)
	s.svg.textBody(text)
	s.svg.textEnd()
}

