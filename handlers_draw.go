package wmf2svg

import (
	"fmt"
	"math"
)

func sprintfMove(x, y float64) string { return fmt.Sprintf("M %.2f,%.2f ", x, y) }
func sprintfLine(x, y float64) string { return fmt.Sprintf("L %.2f,%.2f ", x, y) }
func sprintfArc(rx, ry float64, largeArc int, ex, ey float64) string {
	return fmt.Sprintf("A %.2f,%.2f 0 %d,1 %.2f,%.2f ", rx, ry, largeArc, ex, ey)
}

func handleMoveTo(s *convState, body []byte) {
	r := newByteReader(body)
	p, err := r.pointYX()
	if err != nil {
		return
	}
	s.curX, s.curY = s.coords.scalePoint(p)
	s.logRecord("MOVETO", outcomeSupported, nil)
}

func handleLineTo(s *convState, body []byte) {
	r := newByteReader(body)
	p, err := r.pointYX()
	if err != nil {
		return
	}
	x2, y2 := s.coords.scalePoint(p)
	s.svg.line(s.curX, s.curY, x2, y2, strokeAttr(&s.dc, s.coords.scaling))
	s.curX, s.curY = x2, y2
	s.logRecord("LINETO", outcomeSupported, nil)
}

func handleRectangle(s *convState, body []byte) {
	r := newByteReader(body)
	rect, err := r.rectBottomUp()
	if err != nil {
		return
	}
	x, y := s.coords.scaleX(rect.Left), s.coords.scaleY(rect.Top)
	w := s.coords.scaleX(rect.Right) - x
	h := s.coords.scaleY(rect.Bottom) - y
	s.svg.rect(x, y, w, h, 0, 0, fillAttr(&s.dc), strokeAttr(&s.dc, s.coords.scaling))
	s.logRecord("RECTANGLE", outcomeSupported, nil)
}

func handleEllipse(s *convState, body []byte) {
	r := newByteReader(body)
	rect, err := r.rectBottomUp()
	if err != nil {
		return
	}
	cx, cy, rx, ry := ellipseGeometry(s, rect)
	s.svg.ellipse(cx, cy, rx, ry, fillAttr(&s.dc), strokeAttr(&s.dc, s.coords.scaling))
	s.logRecord("ELLIPSE", outcomeSupported, nil)
}

func ellipseGeometry(s *convState, rect Rect16) (cx, cy, rx, ry float64) {
	x1, y1 := s.coords.scaleX(rect.Left), s.coords.scaleY(rect.Top)
	x2, y2 := s.coords.scaleX(rect.Right), s.coords.scaleY(rect.Bottom)
	cx = (x1 + x2) / 2.0
	cy = (y1 + y2) / 2.0
	rx = math.Abs(x2-x1) / 2.0
	ry = math.Abs(y2-y1) / 2.0
	return
}

func handleRoundRect(s *convState, body []byte) {
	r := newByteReader(body)
	ry16, err := r.i16()
	if err != nil {
		return
	}
	rx16, err := r.i16()
	if err != nil {
		return
	}
	rect, err := r.rectBottomUp()
	if err != nil {
		return
	}

	x, y := s.coords.scaleX(rect.Left), s.coords.scaleY(rect.Top)
	w := s.coords.scaleX(rect.Right) - x
	h := s.coords.scaleY(rect.Bottom) - y
	rx := math.Abs(float64(rx16)*s.coords.scaling) / 2.0
	ry := math.Abs(float64(ry16)*s.coords.scaling) / 2.0

	s.svg.rect(x, y, w, h, rx, ry, fillAttr(&s.dc), strokeAttr(&s.dc, s.coords.scaling))
	s.logRecord("ROUNDRECT", outcomeSupported, nil)
}

func readPoints(r *byteReader, n uint16) ([]Point16, error) {
	pts := make([]Point16, n)
	for i := range pts {
		p, err := r.point16()
		if err != nil {
			return nil, err
		}
		pts[i] = p
	}
	return pts, nil
}

func (s *convState) scalePoints(pts []Point16) []pointF {
	out := make([]pointF, len(pts))
	for i, p := range pts {
		x, y := s.coords.scalePoint(p)
		out[i] = pointF{x, y}
	}
	return out
}

func handlePolygon(s *convState, body []byte) {
	r := newByteReader(body)
	n, err := r.u16()
	if err != nil || n == 0 {
		return
	}
	pts, err := readPoints(r, n)
	if err != nil {
		return
	}
	s.svg.polyShape("polygon", s.scalePoints(pts), "", fillAttr(&s.dc), strokeAttr(&s.dc, s.coords.scaling))
	s.logRecord("POLYGON", outcomeSupported, map[string]any{"points": n})
}

func handlePolyline(s *convState, body []byte) {
	r := newByteReader(body)
	n, err := r.u16()
	if err != nil || n == 0 {
		return
	}
	pts, err := readPoints(r, n)
	if err != nil {
		return
	}
	s.svg.polyShape("polyline", s.scalePoints(pts), "", `fill="none" `, strokeAttr(&s.dc, s.coords.scaling))
	s.logRecord("POLYLINE", outcomeSupported, map[string]any{"points": n})
}

func handlePolyPolygon(s *convState, body []byte) {
	r := newByteReader(body)
	nPolys, err := r.u16()
	if err != nil {
		return
	}
	counts := make([]uint16, nPolys)
	for i := range counts {
		counts[i], err = r.u16()
		if err != nil {
			return
		}
	}
	for _, n := range counts {
		if n == 0 {
			continue
		}
		pts, err := readPoints(r, n)
		if err != nil {
			return
		}
		s.svg.polyShape("polygon", s.scalePoints(pts), "", fillAttr(&s.dc), strokeAttr(&s.dc, s.coords.scaling))
	}
	s.logRecord("POLYPOLYGON", outcomeSupported, map[string]any{"polygons": nPolys})
}

// handleArcChordPie implements ARC, CHORD, and PIE, which share a record
// layout (start point, end point, bounding rectangle) and differ only in
// how the resulting SVG path is closed and filled.
func handleArcChordPie(s *convState, funcCode uint16, body []byte) {
	r := newByteReader(body)
	endArc, err := r.pointYX()
	if err != nil {
		return
	}
	startArc, err := r.pointYX()
	if err != nil {
		return
	}
	rect, err := r.rectBottomUp()
	if err != nil {
		return
	}

	cx, cy, rx, ry := ellipseGeometry(s, rect)

	startX, startY := s.coords.scalePoint(startArc)
	endX, endY := s.coords.scalePoint(endArc)

	startAngle := math.Atan2(startY-cy, startX-cx)
	endAngle := math.Atan2(endY-cy, endX-cx)

	sx := cx + rx*math.Cos(startAngle)
	sy := cy + ry*math.Sin(startAngle)
	ex := cx + rx*math.Cos(endAngle)
	ey := cy + ry*math.Sin(endAngle)

	angleDiff := endAngle - startAngle
	if angleDiff < 0 {
		angleDiff += 2 * math.Pi
	}
	largeArc := 0
	if angleDiff > math.Pi {
		largeArc = 1
	}

	d := ""
	if funcCode == recPIE {
		d += sprintfMove(cx, cy) + sprintfLine(sx, sy)
	} else {
		d += sprintfMove(sx, sy)
	}
	d += sprintfArc(rx, ry, largeArc, ex, ey)
	if funcCode == recPIE || funcCode == recCHORD {
		d += "Z"
	}

	fill := `fill="none" `
	name := "ARC"
	if funcCode == recCHORD {
		fill = fillAttr(&s.dc)
		name = "CHORD"
	} else if funcCode == recPIE {
		fill = fillAttr(&s.dc)
		name = "PIE"
	}

	s.svg.path(d, fill, strokeAttr(&s.dc, s.coords.scaling))
	s.logRecord(name, outcomeSupported, nil)
}
