package wmf2svg

import (
	"strings"
	"testing"
)

func newTestState() *convState {
	return &convState{
		dc:      defaultDeviceContext(),
		objects: newObjectTable(4),
		coords:  coordSystem{windowExtX: 100, windowExtY: 100, viewportExtX: 100, viewportExtY: 100, scaling: 1},
		svg:     newSVGEmitter(""),
		log:     newLogger(false),
	}
}

func leWord(v uint16) []byte { return []byte{byte(v), byte(v >> 8)} }

func TestHandleLineToEmitsLine(t *testing.T) {
	s := newTestState()
	s.curX, s.curY = 1, 2
	body := append(leWord(10), leWord(20)...) // Y=10, X=20 on the wire
	handleLineTo(s, body)

	out := string(s.svg.bytes())
	if !strings.Contains(out, `<line x1="1.00" y1="2.00" x2="20.00" y2="10.00"`) {
		t.Fatalf("unexpected output: %s", out)
	}
	if s.curX != 20 || s.curY != 10 {
		t.Fatalf("expected pen position updated to (20,10), got (%v,%v)", s.curX, s.curY)
	}
}

func TestHandleRectangleBottomUpFieldOrder(t *testing.T) {
	s := newTestState()
	// Wire order: bottom, right, top, left.
	body := append(append(append(leWord(40), leWord(30)...), leWord(10)...), leWord(0)...)
	handleRectangle(s, body)

	out := string(s.svg.bytes())
	if !strings.Contains(out, `x="0.00" y="10.00" width="30.00" height="30.00"`) {
		t.Fatalf("unexpected rectangle geometry: %s", out)
	}
}

func TestHandleLineToNullPenOmitsStroke(t *testing.T) {
	s := newTestState()
	s.dc.strokeStyle = penNull
	s.dc.strokeSet = false
	body := append(leWord(0), leWord(0)...)
	handleLineTo(s, body)

	out := string(s.svg.bytes())
	if !strings.Contains(out, `stroke="none"`) {
		t.Fatalf("expected stroke=none for a NULL pen, got: %s", out)
	}
}

func TestStrokeWidthFloorIsOne(t *testing.T) {
	dc := defaultDeviceContext()
	dc.strokeWidth = 0.2
	attr := strokeAttr(&dc, 1.0)
	if !strings.Contains(attr, `stroke-width="1.00"`) {
		t.Fatalf("expected stroke-width floor of 1.0, got: %s", attr)
	}
}

func TestHandlePolygonSkipsZeroPoints(t *testing.T) {
	s := newTestState()
	handlePolygon(s, leWord(0))
	if len(s.svg.bytes()) != 0 {
		t.Fatal("expected a zero-point POLYGON record to emit nothing")
	}
}

func TestHandleArcPieClosesPath(t *testing.T) {
	s := newTestState()
	// End point, start point (both Y,X order), then bottom-up rect.
	body := append(leWord(0), leWord(50)...)   // end Y=0, X=50
	body = append(body, leWord(50)...)         // start Y=50
	body = append(body, leWord(100)...)        // start X=100
	body = append(body, leWord(100)...)        // bottom
	body = append(body, leWord(100)...)        // right
	body = append(body, leWord(0)...)          // top
	body = append(body, leWord(0)...)          // left
	handleArcChordPie(s, recPIE, body)

	out := string(s.svg.bytes())
	if !strings.Contains(out, "Z") {
		t.Fatalf("expected PIE path to close with Z, got: %s", out)
	}
}
