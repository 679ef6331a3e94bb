package wmf2svg

import (
	"bytes"
	"fmt"
	"strings"
)

// svgEmitter buffers SVG output and knows how to prefix every element tag
// with an optional namespace. All writes go through a single
// bytes.Buffer; Convert flushes it to a caller-owned []byte only once, at
// the very end of the conversion.
type svgEmitter struct {
	buf    bytes.Buffer
	prefix string // e.g. "wmf:" or "" -- includes the trailing colon
}

func newSVGEmitter(namespace string) *svgEmitter {
	prefix := ""
	if namespace != "" {
		prefix = namespace + ":"
	}
	return &svgEmitter{prefix: prefix}
}

// header writes the XML prolog and the opening <svg> tag.
func (e *svgEmitter) header(namespace string, width, height float64) {
	fmt.Fprint(&e.buf, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	nsAttr := ""
	if namespace != "" {
		nsAttr = ":" + namespace
	}
	fmt.Fprintf(&e.buf, "<%ssvg xmlns%s=\"http://www.w3.org/2000/svg\" width=\"%s\" height=\"%s\" viewBox=\"0 0 %s %s\">\n",
		e.prefix, nsAttr, fmtNum(width), fmtNum(height), fmtNum(width), fmtNum(height))
}

func (e *svgEmitter) footer() {
	fmt.Fprintf(&e.buf, "</%ssvg>\n", e.prefix)
}

func (e *svgEmitter) line(x1, y1, x2, y2 float64, stroke string) {
	fmt.Fprintf(&e.buf, "<%sline x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" %s/>\n",
		e.prefix, x1, y1, x2, y2, stroke)
}

func (e *svgEmitter) rect(x, y, w, h, rx, ry float64, fill, stroke string) {
	rounded := ""
	if rx > 0 || ry > 0 {
		rounded = fmt.Sprintf("rx=\"%.2f\" ry=\"%.2f\" ", rx, ry)
	}
	fmt.Fprintf(&e.buf, "<%srect x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\" %s%s%s/>\n",
		e.prefix, x, y, w, h, rounded, fill, stroke)
}

func (e *svgEmitter) ellipse(cx, cy, rx, ry float64, fill, stroke string) {
	fmt.Fprintf(&e.buf, "<%sellipse cx=\"%.2f\" cy=\"%.2f\" rx=\"%.2f\" ry=\"%.2f\" %s%s/>\n",
		e.prefix, cx, cy, rx, ry, fill, stroke)
}

func (e *svgEmitter) polyShape(element string, points []pointF, extra, fill, stroke string) {
	var b strings.Builder
	for _, p := range points {
		fmt.Fprintf(&b, "%.2f,%.2f ", p.x, p.y)
	}
	fmt.Fprintf(&e.buf, "<%s%s points=\"%s\" %s%s%s/>\n",
		e.prefix, element, strings.TrimSpace(b.String()), extra, fill, stroke)
}

func (e *svgEmitter) path(d, fill, stroke string) {
	fmt.Fprintf(&e.buf, "<%spath d=\"%s\" %s%s/>\n", e.prefix, d, fill, stroke)
}

func (e *svgEmitter) textStart(x, y float64, fill, fontSize, anchor, fontFamily, fontStyle, fontWeight string) {
	fmt.Fprintf(&e.buf, "<%stext x=\"%.2f\" y=\"%.2f\" %sfont-size=\"%s\" text-anchor=\"%s\" %s%s>",
		e.prefix, x, y, fill, fontSize, anchor, fontFamily, fontStyle+fontWeight)
}

func (e *svgEmitter) textBody(s string) {
	e.buf.WriteString(xmlEscape(s))
}

func (e *svgEmitter) textEnd() {
	fmt.Fprintf(&e.buf, "</%stext>\n", e.prefix)
}

func (e *svgEmitter) bytes() []byte {
	return e.buf.Bytes()
}

// pointF is a resolved (already scaled) point used by the polygon/polyline
// emitters.
type pointF struct{ x, y float64 }

// xmlEscape escapes the four characters SVG text content must not contain
// unescaped, matching the original C implementation's escape table (it
// does not escape apostrophes, which is fine inside element content).
func xmlEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '&':
			b.WriteString("&amp;")
		case '"':
			b.WriteString("&quot;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// fmtNum formats a dimension the way the original printed %.0f for width
// and height attributes.
func fmtNum(f float64) string {
	return fmt.Sprintf("%.0f", f)
}
