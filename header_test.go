package wmf2svg

import "testing"

func standardHeaderBytes() []byte {
	// Type=1, HeaderSize16w=9 (18 bytes), Version=0x0300, Size32w, nObjects,
	// MaxRecord, nMembers.
	return []byte{
		0x01, 0x00, // Type
		0x09, 0x00, // HeaderSize16w
		0x00, 0x03, // Version
		0x00, 0x00, 0x00, 0x00, // Size32w
		0x00, 0x00, // NumberOfObjects
		0x00, 0x00, 0x00, 0x00, // MaxRecord
		0x00, 0x00, // NumberOfMembers
	}
}

func TestDetectStandardHeader(t *testing.T) {
	data := append(standardHeaderBytes(), 0x00, 0x00, 0x00, 0x00, 0x00, 0x00) // EOF record
	if !Detect(data) {
		t.Fatal("expected Detect to recognize a standard WMF header")
	}
}

func TestDetectRejectsGarbage(t *testing.T) {
	if Detect([]byte("not a wmf file at all")) {
		t.Fatal("expected Detect to reject non-WMF data")
	}
	if Detect(nil) {
		t.Fatal("expected Detect to reject nil")
	}
}

func TestDetectPlaceableHeader(t *testing.T) {
	placeable := []byte{
		0xD7, 0xCD, 0xC6, 0x9A, // magic
		0x00, 0x00, // handle
		0, 0, 0, 0, 0, 0, 0, 0, // Dst rect
		0xE8, 0x03, // Inch = 1000
		0, 0, 0, 0, // reserved
		0, 0, // checksum
	}
	data := append(placeable, standardHeaderBytes()...)
	if !Detect(data) {
		t.Fatal("expected Detect to recognize a placeable header")
	}
}

func TestParseHeaderRecordStart(t *testing.T) {
	data := append(standardHeaderBytes(), 0x00, 0x00, 0x00, 0x00, 0x00, 0x00)
	start, header, placeable, err := parseHeader(data)
	if err != nil {
		t.Fatalf("parseHeader: %v", err)
	}
	if placeable != nil {
		t.Fatal("expected no placeable header")
	}
	if start != 18 {
		t.Fatalf("expected record start at byte 18, got %d", start)
	}
	if header.Version != 0x0300 {
		t.Fatalf("expected version 0x0300, got 0x%04X", header.Version)
	}
}

func TestParseHeaderTooShort(t *testing.T) {
	_, _, _, err := parseHeader([]byte{0x01, 0x02, 0x03})
	if err != ErrInvalidHeader {
		t.Fatalf("expected ErrInvalidHeader, got %v", err)
	}
}
