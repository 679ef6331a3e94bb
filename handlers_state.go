package wmf2svg

// This file implements the device-context and object-table mutating
// records: everything that changes drawing state without emitting SVG
// output of its own.

func handleSetBkColor(s *convState, body []byte) {
	r := newByteReader(body)
	c, err := r.colorRef()
	if err != nil {
		return
	}
	s.dc.bkColor = c
	s.logRecord("SETBKCOLOR", outcomeSupported, map[string]any{"color": c.Hex()})
}

func handleSetBkMode(s *convState, body []byte) {
	r := newByteReader(body)
	mode, err := r.u16()
	if err != nil {
		return
	}
	s.dc.bkMode = mode
	s.logRecord("SETBKMODE", outcomeSupported, map[string]any{"mode": mode})
}

func handleSetMapMode(s *convState, body []byte) {
	r := newByteReader(body)
	mode, err := r.u16()
	if err != nil {
		return
	}
	s.coords.mapMode = mode
	s.logRecord("SETMAPMODE", outcomeSupported, map[string]any{"mode": mode})
}

func handleSetROP2(s *convState, body []byte) {
	r := newByteReader(body)
	mode, err := r.u16()
	if err != nil {
		return
	}
	s.dc.rop2Mode = mode
	// ROP2 combine modes other than COPYPEN have no SVG equivalent; the
	// value is recorded but every stroke is still painted as if COPYPEN.
	s.logRecord("SETROP2", outcomePartial, map[string]any{"mode": mode})
}

func handleSetPolyFillMode(s *convState, body []byte) {
	r := newByteReader(body)
	mode, err := r.u16()
	if err != nil {
		return
	}
	s.dc.fillPolyMode = mode
	s.logRecord("SETPOLYFILLMODE", outcomeSupported, map[string]any{"mode": mode})
}

func handleSetTextColor(s *convState, body []byte) {
	r := newByteReader(body)
	c, err := r.colorRef()
	if err != nil {
		return
	}
	s.dc.textColor = c
	s.logRecord("SETTEXTCOLOR", outcomeSupported, map[string]any{"color": c.Hex()})
}

func handleSetTextAlign(s *convState, body []byte) {
	r := newByteReader(body)
	align, err := r.u16()
	if err != nil {
		return
	}
	s.dc.textAlign = align
	s.logRecord("SETTEXTALIGN", outcomeSupported, map[string]any{"align": align})
}

func handleSetWindowOrg(s *convState, body []byte) {
	r := newByteReader(body)
	p, err := r.pointYX()
	if err != nil {
		return
	}
	s.coords.windowOrgX, s.coords.windowOrgY = p.X, p.Y
	s.logRecord("SETWINDOWORG", outcomeSupported, nil)
}

func handleSetWindowExt(s *convState, body []byte) {
	r := newByteReader(body)
	p, err := r.pointYX()
	if err != nil {
		return
	}
	s.coords.windowExtX, s.coords.windowExtY = p.X, p.Y
	s.logRecord("SETWINDOWEXT", outcomeSupported, nil)
}

func handleSetViewportOrg(s *convState, body []byte) {
	r := newByteReader(body)
	p, err := r.pointYX()
	if err != nil {
		return
	}
	s.coords.viewportOrgX, s.coords.viewportOrgY = p.X, p.Y
	s.logRecord("SETVIEWPORTORG", outcomeSupported, nil)
}

func handleSetViewportExt(s *convState, body []byte) {
	r := newByteReader(body)
	p, err := r.pointYX()
	if err != nil {
		return
	}
	s.coords.viewportExtX, s.coords.viewportExtY = p.X, p.Y
	s.logRecord("SETVIEWPORTEXT", outcomeSupported, nil)
}

func handleSaveDC(s *convState, _ []byte) {
	s.saveDC()
	s.logRecord("SAVEDC", outcomeSupported, nil)
}

func handleRestoreDC(s *convState, body []byte) {
	r := newByteReader(body)
	n, err := r.i16()
	if err != nil {
		return
	}
	s.restoreDC(n)
	s.logRecord("RESTOREDC", outcomeSupported, map[string]any{"n": n})
}

func handleSelectObject(s *convState, body []byte) {
	r := newByteReader(body)
	handle, err := r.u16()
	if err != nil {
		return
	}
	selectObject(&s.dc, s.objects, handle)
	s.logRecord("SELECTOBJECT", outcomeSupported, map[string]any{"handle": handle})
}

func handleDeleteObject(s *convState, body []byte) {
	r := newByteReader(body)
	handle, err := r.u16()
	if err != nil {
		return
	}
	s.objects.delete(handle)
	s.logRecord("DELETEOBJECT", outcomeSupported, map[string]any{"handle": handle})
}

func handleCreatePenIndirect(s *convState, body []byte) {
	r := newByteReader(body)
	style, err := r.u16()
	if err != nil {
		return
	}
	width, err := r.i16()
	if err != nil {
		return
	}
	r.skip(2) // pen width's unused high word
	color, err := r.colorRef()
	if err != nil {
		return
	}

	strokeWidth := float64(width)
	if strokeWidth <= 0 {
		strokeWidth = 1.0
	}

	idx := s.objects.create(graphicsObject{
		kind:        objPen,
		strokeStyle: style,
		strokeColor: color,
		strokeWidth: strokeWidth,
	})
	if idx == -1 {
		s.logRecord("CREATEPENINDIRECT", outcomeDropped, map[string]any{"reason": "object table full"})
		return
	}
	s.logRecord("CREATEPENINDIRECT", outcomeSupported, map[string]any{"index": idx})
}

func handleCreateBrushIndirect(s *convState, body []byte) {
	r := newByteReader(body)
	style, err := r.u16()
	if err != nil {
		return
	}
	color, err := r.colorRef()
	if err != nil {
		return
	}
	hatch, err := r.u16()
	if err != nil {
		return
	}

	idx := s.objects.create(graphicsObject{
		kind:      objBrush,
		fillStyle: style,
		fillHatch: hatch,
		fillColor: color,
	})
	if idx == -1 {
		s.logRecord("CREATEBRUSHINDIRECT", outcomeDropped, map[string]any{"reason": "object table full"})
		return
	}
	s.logRecord("CREATEBRUSHINDIRECT", outcomeSupported, map[string]any{"index": idx})
}

func handleCreateFontIndirect(s *convState, body []byte) {
	r := newByteReader(body)
	height, err := r.i16()
	if err != nil {
		return
	}
	width, err := r.i16()
	if err != nil {
		return
	}
	escapement, err := r.i16()
	if err != nil {
		return
	}
	orientation, err := r.i16()
	if err != nil {
		return
	}
	weight, err := r.i16()
	if err != nil {
		return
	}
	italic, err := r.u8()
	if err != nil {
		return
	}
	underline, err := r.u8()
	if err != nil {
		return
	}
	strikeout, err := r.u8()
	if err != nil {
		return
	}
	charset, err := r.u8()
	if err != nil {
		return
	}
	r.skip(4) // OutPrecision, ClipPrecision, Quality, PitchAndFamily (1 byte each)
	name := r.cString()

	idx := s.objects.create(graphicsObject{
		kind:            objFont,
		fontName:        string(name),
		fontHeight:      height,
		fontWidth:       width,
		fontEscapement:  escapement,
		fontOrientation: orientation,
		fontWeight:      weight,
		fontItalic:      italic,
		fontUnderline:   underline,
		fontStrikeout:   strikeout,
		fontCharset:     charset,
	})
	if idx == -1 {
		s.logRecord("CREATEFONTINDIRECT", outcomeDropped, map[string]any{"reason": "object table full", "name": string(name)})
		return
	}
	s.logRecord("CREATEFONTINDIRECT", outcomeSupported, map[string]any{"index": idx, "name": string(name)})
}
