package wmf2svg

import (
	"encoding/binary"
	"fmt"
)

// byteReader extracts typed little-endian fields from a borrowed byte
// slice. It never returns a pointer into the slice and every read is
// bounds-checked against the slice length before any bytes are copied;
// this is the Go analogue of the aligned-temporary-copy discipline the
// original C implementation used for its unaligned field access.
type byteReader struct {
	buf []byte
	pos int
}

func newByteReader(buf []byte) *byteReader {
	return &byteReader{buf: buf}
}

// errShortRead marks a record-local getter failure: the caller should skip
// the record rather than abort the whole conversion.
var errShortRead = fmt.Errorf("wmf2svg: short record")

func (r *byteReader) remaining() int {
	return len(r.buf) - r.pos
}

func (r *byteReader) need(n int) error {
	if n < 0 || r.remaining() < n {
		return errShortRead
	}
	return nil
}

func (r *byteReader) u8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.buf[r.pos]
	r.pos++
	return v, nil
}

func (r *byteReader) u16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.buf[r.pos : r.pos+2])
	r.pos += 2
	return v, nil
}

func (r *byteReader) i16() (int16, error) {
	v, err := r.u16()
	return int16(v), err
}

func (r *byteReader) u32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.buf[r.pos : r.pos+4])
	r.pos += 4
	return v, nil
}

func (r *byteReader) i32() (int32, error) {
	v, err := r.u32()
	return int32(v), err
}

// point16 reads an (x,y) pair of signed 16-bit coordinates.
func (r *byteReader) point16() (Point16, error) {
	x, err := r.i16()
	if err != nil {
		return Point16{}, err
	}
	y, err := r.i16()
	if err != nil {
		return Point16{}, err
	}
	return Point16{X: x, Y: y}, nil
}

// rect16 reads a left/top/right/bottom rectangle of signed 16-bit values,
// in the on-disk WMF field order.
func (r *byteReader) rect16() (Rect16, error) {
	left, err := r.i16()
	if err != nil {
		return Rect16{}, err
	}
	top, err := r.i16()
	if err != nil {
		return Rect16{}, err
	}
	right, err := r.i16()
	if err != nil {
		return Rect16{}, err
	}
	bottom, err := r.i16()
	if err != nil {
		return Rect16{}, err
	}
	return Rect16{Left: left, Top: top, Right: right, Bottom: bottom}, nil
}

// pointYX reads a signed 16-bit coordinate pair stored Y-before-X, the
// on-disk order for single-point fields (MOVETO, LINETO, SETWINDOWORG and
// friends) whose GDI call took (..., x, y): WMF's 16-bit record encoder
// pushed those trailing arguments onto the record in reverse.
func (r *byteReader) pointYX() (Point16, error) {
	y, err := r.i16()
	if err != nil {
		return Point16{}, err
	}
	x, err := r.i16()
	if err != nil {
		return Point16{}, err
	}
	return Point16{X: x, Y: y}, nil
}

// rectBottomUp reads a rectangle stored bottom, right, top, left -- the
// on-disk order for RECTANGLE and ELLIPSE, whose GDI calls took
// (..., left, top, right, bottom).
func (r *byteReader) rectBottomUp() (Rect16, error) {
	bottom, err := r.i16()
	if err != nil {
		return Rect16{}, err
	}
	right, err := r.i16()
	if err != nil {
		return Rect16{}, err
	}
	top, err := r.i16()
	if err != nil {
		return Rect16{}, err
	}
	left, err := r.i16()
	if err != nil {
		return Rect16{}, err
	}
	return Rect16{Left: left, Top: top, Right: right, Bottom: bottom}, nil
}

// colorRef reads a 4-byte COLORREF (red, green, blue, reserved).
func (r *byteReader) colorRef() (ColorRef, error) {
	if err := r.need(4); err != nil {
		return ColorRef{}, err
	}
	c := ColorRef{Red: r.buf[r.pos], Green: r.buf[r.pos+1], Blue: r.buf[r.pos+2]}
	r.pos += 4
	return c, nil
}

// bytes reads n raw bytes, returning a fresh copy so the result never
// aliases the borrowed input slice.
func (r *byteReader) bytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, r.buf[r.pos:r.pos+n])
	r.pos += n
	return out, nil
}

// skip advances the cursor by n bytes without copying.
func (r *byteReader) skip(n int) error {
	if err := r.need(n); err != nil {
		return err
	}
	r.pos += n
	return nil
}

// cString reads a NUL-terminated byte string starting at the current
// position, not exceeding the buffer, and returns the bytes before the
// terminator (or before the end of buffer if no terminator is found).
func (r *byteReader) cString() []byte {
	start := r.pos
	for r.pos < len(r.buf) && r.buf[r.pos] != 0 {
		r.pos++
	}
	out := make([]byte, r.pos-start)
	copy(out, r.buf[start:r.pos])
	if r.pos < len(r.buf) {
		r.pos++ // consume the terminator
	}
	return out
}
