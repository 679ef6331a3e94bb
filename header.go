package wmf2svg

const (
	placeableMagic = 0x9AC6CDD7
	placeableSize  = 22
	headerMinSize  = 18
)

// placeableHeader is the optional 22-byte Aldus extension prepended to
// some WMF files, carrying target bounds and a units-per-inch DPI hint.
type placeableHeader struct {
	Handle   uint16
	Dst      Rect16
	Inch     uint16
	Reserved uint32
	Checksum uint16
}

// wmfHeader is the standard (non-placeable) WMF header every file must
// have, placeable or not.
type wmfHeader struct {
	Type             uint16
	HeaderSize16w    uint16
	Version          uint16
	Size32w          uint32
	NumberOfObjects  uint16
	MaxRecord        uint32
	NumberOfMembers  uint16
}

func validVersion(v uint16) bool {
	return v == 0x0100 || v == 0x0300
}

// Detect reports whether data looks like a WMF file: either it starts with
// the placeable magic followed by a structurally valid standard header, or
// it starts with a valid standard header directly.
func Detect(data []byte) bool {
	if len(data) < headerMinSize {
		return false
	}
	r := newByteReader(data)
	key, err := r.u32()
	if err != nil {
		return false
	}
	if key == placeableMagic {
		if len(data) < placeableSize+headerMinSize {
			return false
		}
		iType := data[placeableSize]
		version := uint16(data[placeableSize+4]) | uint16(data[placeableSize+5])<<8
		return iType == 1 && validVersion(version)
	}
	iType := data[0]
	version := uint16(data[4]) | uint16(data[5])<<8
	return iType == 1 && validVersion(version)
}

// parseHeader validates and reads the placeable (if present) and standard
// WMF headers, returning the byte offset at which records begin.
func parseHeader(data []byte) (recordStart int, header wmfHeader, placeable *placeableHeader, err error) {
	if len(data) < headerMinSize {
		return 0, wmfHeader{}, nil, ErrInvalidHeader
	}

	r := newByteReader(data)
	key, rerr := r.u32()
	if rerr != nil {
		return 0, wmfHeader{}, nil, ErrInvalidHeader
	}

	hasPlaceable := key == placeableMagic
	var ph placeableHeader
	headerOffset := 0

	if hasPlaceable {
		if len(data) < placeableSize+headerMinSize {
			return 0, wmfHeader{}, nil, ErrInvalidHeader
		}
		ph.Handle, _ = r.u16()
		ph.Dst, _ = r.rect16()
		ph.Inch, _ = r.u16()
		ph.Reserved, _ = r.u32()
		ph.Checksum, _ = r.u16()
		headerOffset = placeableSize
	}

	if len(data)-headerOffset < headerMinSize {
		return 0, wmfHeader{}, nil, ErrInvalidHeader
	}

	hr := newByteReader(data[headerOffset:])
	wType, _ := hr.u16()
	headerSize16w, _ := hr.u16()
	version, _ := hr.u16()
	size32w, _ := hr.u32()
	nObjects, _ := hr.u16()
	maxRecord, _ := hr.u32()
	nMembers, _ := hr.u16()

	if byte(wType) != 0x01 || !validVersion(version) {
		return 0, wmfHeader{}, nil, ErrInvalidHeader
	}

	h := wmfHeader{
		Type:            wType,
		HeaderSize16w:   headerSize16w,
		Version:         version,
		Size32w:         size32w,
		NumberOfObjects: nObjects,
		MaxRecord:       maxRecord,
		NumberOfMembers: nMembers,
	}

	start := headerOffset + int(headerSize16w)*2
	if start > len(data) {
		return 0, wmfHeader{}, nil, ErrInvalidHeader
	}

	if hasPlaceable {
		return start, h, &ph, nil
	}
	return start, h, nil, nil
}
