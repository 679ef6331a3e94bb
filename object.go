package wmf2svg

// Object kinds in the object table.
type objKind int

const (
	objInvalid objKind = iota
	objPen
	objBrush
	objFont
	objPalette
	objRegion
)

// Stock object handles. All have the high bit of the 32-bit handle set;
// WMF records carry them as a 16-bit SELECTOBJECT index whose bit 15 stands
// in for bit 31; selectObject maps that bit to bit 31 and keeps the low 15
// bits to recover the 32-bit handle.
const (
	stockWhiteBrush        uint32 = 0x80000000
	stockLtGrayBrush       uint32 = 0x80000001
	stockGrayBrush         uint32 = 0x80000002
	stockDkGrayBrush       uint32 = 0x80000003
	stockBlackBrush        uint32 = 0x80000004
	stockNullBrush         uint32 = 0x80000005
	stockWhitePen          uint32 = 0x80000006
	stockBlackPen          uint32 = 0x80000007
	stockNullPen           uint32 = 0x80000008
	stockOEMFixedFont      uint32 = 0x8000000A
	stockAnsiFixedFont     uint32 = 0x8000000B
	stockAnsiVarFont       uint32 = 0x8000000C
	stockSystemFont        uint32 = 0x8000000D
	stockDeviceDefaultFont uint32 = 0x8000000E
	stockDefaultPalette    uint32 = 0x8000000F
	stockSystemFixedFont   uint32 = 0x80000010
)

// graphicsObject is one slot of the object table: the union of pen, brush,
// and font fields the record that created it supplied, tagged with which
// union member is meaningful.
type graphicsObject struct {
	kind objKind

	strokeStyle uint16
	strokeColor ColorRef
	strokeWidth float64

	fillStyle uint16
	fillHatch uint16
	fillColor ColorRef

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
}

// objectTable is a fixed-size array of object slots, sized by the WMF
// header's declared object count.
type objectTable struct {
	slots []graphicsObject
}

func newObjectTable(size uint16) *objectTable {
	return &objectTable{slots: make([]graphicsObject, size)}
}

// create installs obj into the first Invalid slot, returning its index, or
// -1 if the table is full.
func (t *objectTable) create(obj graphicsObject) int {
	for i := range t.slots {
		if t.slots[i].kind == objInvalid {
			t.slots[i] = obj
			return i
		}
	}
	return -1
}

// delete resets slot index to Invalid. Out-of-range indexes are ignored.
func (t *objectTable) delete(index uint16) {
	if int(index) >= len(t.slots) {
		return
	}
	t.slots[index] = graphicsObject{}
}

// get returns the object at index and whether index was in range.
// Selecting an Invalid slot is a documented no-op handled by the caller.
func (t *objectTable) get(index uint16) (graphicsObject, bool) {
	if int(index) >= len(t.slots) {
		return graphicsObject{}, false
	}
	return t.slots[index], true
}

// selectObject applies handle to dc: a stock object if the high bit of the
// 16-bit handle is set, otherwise a zero-based slot index
// into t. Unknown stock handles and selections of an Invalid slot leave dc
// unchanged, matching the original's documented no-op behavior.
func selectObject(dc *deviceContext, t *objectTable, handle uint16) {
	if handle&0x8000 != 0 {
		// A 16-bit SELECTOBJECT operand addresses a stock object when
		// moving its bit 15 to bit 31 (keeping the low 15 bits) yields one
		// of the known 0x8000000X handles; the file format never stores
		// the full 32-bit handle, only this 16-bit form.
		extended := 0x80000000 | uint32(handle&0x7FFF)
		switch extended {
		case stockWhiteBrush:
			setStockBrush(dc, ColorRef{255, 255, 255})
		case stockLtGrayBrush:
			setStockBrush(dc, ColorRef{192, 192, 192})
		case stockGrayBrush:
			setStockBrush(dc, ColorRef{128, 128, 128})
		case stockDkGrayBrush:
			setStockBrush(dc, ColorRef{64, 64, 64})
		case stockBlackBrush:
			setStockBrush(dc, ColorRef{0, 0, 0})
		case stockNullBrush:
			dc.fillSet = false
			dc.fillStyle = brushNull
		case stockWhitePen:
			setStockPen(dc, ColorRef{255, 255, 255})
		case stockBlackPen:
			setStockPen(dc, ColorRef{0, 0, 0})
		case stockNullPen:
			dc.strokeSet = false
			dc.strokeStyle = penNull
		default:
			// Other stock handles (fonts, palette, device-default): keep
			// current DC defaults, matching the original's fallthrough.
		}
		return
	}

	obj, ok := t.get(handle)
	if !ok || obj.kind == objInvalid {
		return
	}

	switch obj.kind {
	case objPen:
		dc.strokeSet = obj.strokeStyle != penNull
		dc.strokeStyle = obj.strokeStyle
		dc.strokeColor = obj.strokeColor
		dc.strokeWidth = obj.strokeWidth
	case objBrush:
		dc.fillSet = obj.fillStyle != brushNull && obj.fillStyle != brushHollow
		dc.fillStyle = obj.fillStyle
		dc.fillHatch = obj.fillHatch
		dc.fillColor = obj.fillColor
	case objFont:
		dc.fontSet = true
		dc.fontName = obj.fontName
		dc.fontHeight = obj.fontHeight
		dc.fontWidth = obj.fontWidth
		dc.fontEscapement = obj.fontEscapement
		dc.fontOrientation = obj.fontOrientation
		dc.fontWeight = obj.fontWeight
		dc.fontItalic = obj.fontItalic
		dc.fontUnderline = obj.fontUnderline
		dc.fontStrikeout = obj.fontStrikeout
		dc.fontCharset = obj.fontCharset
	}
}

func setStockBrush(dc *deviceContext, c ColorRef) {
	dc.fillSet = true
	dc.fillStyle = brushSolid
	dc.fillColor = c
}

func setStockPen(dc *deviceContext, c ColorRef) {
	dc.strokeSet = true
	dc.strokeStyle = penSolid
	dc.strokeColor = c
	dc.strokeWidth = 1.0
}
