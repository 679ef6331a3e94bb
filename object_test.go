package wmf2svg

import "testing"

func TestObjectTableCreateDeleteReuse(t *testing.T) {
	table := newObjectTable(2)

	idx1 := table.create(graphicsObject{kind: objPen, strokeStyle: penSolid})
	if idx1 != 0 {
		t.Fatalf("expected first object at slot 0, got %d", idx1)
	}
	idx2 := table.create(graphicsObject{kind: objBrush})
	if idx2 != 1 {
		t.Fatalf("expected second object at slot 1, got %d", idx2)
	}
	if full := table.create(graphicsObject{kind: objFont}); full != -1 {
		t.Fatalf("expected a full table to report -1, got %d", full)
	}

	table.delete(uint16(idx1))
	idx3 := table.create(graphicsObject{kind: objFont})
	if idx3 != idx1 {
		t.Fatalf("expected the freed slot %d to be reused, got %d", idx1, idx3)
	}
}

func TestObjectTableGetOutOfRange(t *testing.T) {
	table := newObjectTable(1)
	if _, ok := table.get(5); ok {
		t.Fatal("expected out-of-range get to report !ok")
	}
}

func TestSelectObjectNullPenClearsStroke(t *testing.T) {
	dc := defaultDeviceContext()
	table := newObjectTable(0)
	selectObject(&dc, table, uint16(stockNullPen&0x7FFF)|0x8000)
	if dc.strokeSet {
		t.Fatal("expected NULL_PEN to clear strokeSet")
	}
	if dc.strokeStyle != penNull {
		t.Fatalf("expected stroke style penNull, got %d", dc.strokeStyle)
	}
}

func TestSelectObjectStockWhiteBrush(t *testing.T) {
	dc := defaultDeviceContext()
	table := newObjectTable(0)
	selectObject(&dc, table, uint16(stockWhiteBrush&0x7FFF)|0x8000)
	if dc.fillColor != (ColorRef{255, 255, 255}) {
		t.Fatalf("expected white fill, got %+v", dc.fillColor)
	}
}

func TestSelectObjectFromSlot(t *testing.T) {
	dc := defaultDeviceContext()
	table := newObjectTable(1)
	table.slots[0] = graphicsObject{
		kind:        objPen,
		strokeStyle: penDash,
		strokeColor: ColorRef{1, 2, 3},
		strokeWidth: 3,
	}
	selectObject(&dc, table, 0)
	if dc.strokeColor != (ColorRef{1, 2, 3}) {
		t.Fatalf("expected slot pen color applied, got %+v", dc.strokeColor)
	}
	if dc.strokeWidth != 3 {
		t.Fatalf("expected slot pen width applied, got %v", dc.strokeWidth)
	}
}

func TestHandleCreatePenIndirectDropsWhenTableFull(t *testing.T) {
	s := newTestState()
	s.objects = newObjectTable(0) // no slots available

	body := append(leWord(uint16(penSolid)), leWord(1)...) // style, width
	body = append(body, 0, 0)                              // width's unused high word
	body = append(body, 0, 0, 0, 0)                        // COLORREF

	handleCreatePenIndirect(s, body)

	if idx := s.objects.create(graphicsObject{kind: objPen}); idx != -1 {
		t.Fatalf("expected the object table to stay full, got free slot %d", idx)
	}
}

func TestSelectObjectInvalidSlotIsNoop(t *testing.T) {
	dc := defaultDeviceContext()
	before := dc
	table := newObjectTable(1)
	selectObject(&dc, table, 0) // slot 0 was never created: objInvalid
	if dc != before {
		t.Fatal("expected selecting an invalid slot to be a no-op")
	}
}
