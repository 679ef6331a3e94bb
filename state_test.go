package wmf2svg

import "testing"

func TestRestoreDCZeroIsNoop(t *testing.T) {
	s := newTestState()
	s.dc.strokeColor = ColorRef{1, 2, 3}
	s.saveDC()
	s.dc.strokeColor = ColorRef{9, 9, 9}

	s.restoreDC(0)

	if s.dc.strokeColor != (ColorRef{9, 9, 9}) {
		t.Fatalf("expected RESTOREDC(0) to leave the device context untouched, got %+v", s.dc.strokeColor)
	}
	if len(s.dcStack.frames) != 1 {
		t.Fatalf("expected RESTOREDC(0) to leave the save stack untouched, got %d frames", len(s.dcStack.frames))
	}
}

func TestRestoreDCPositiveCount(t *testing.T) {
	s := newTestState()
	s.dc.strokeColor = ColorRef{1, 1, 1}
	s.saveDC()
	s.dc.strokeColor = ColorRef{2, 2, 2}
	s.saveDC()
	s.dc.strokeColor = ColorRef{3, 3, 3}

	s.restoreDC(1)

	if s.dc.strokeColor != (ColorRef{2, 2, 2}) {
		t.Fatalf("expected RESTOREDC(1) to restore the most recent save, got %+v", s.dc.strokeColor)
	}
}

func TestRestoreDCNegativeCount(t *testing.T) {
	s := newTestState()
	s.dc.strokeColor = ColorRef{1, 1, 1}
	s.saveDC()
	s.dc.strokeColor = ColorRef{2, 2, 2}
	s.saveDC()
	s.dc.strokeColor = ColorRef{3, 3, 3}

	s.restoreDC(-2)

	if s.dc.strokeColor != (ColorRef{1, 1, 1}) {
		t.Fatalf("expected RESTOREDC(-2) to pop two frames, got %+v", s.dc.strokeColor)
	}
	if len(s.dcStack.frames) != 0 {
		t.Fatalf("expected the save stack to be empty after popping every frame, got %d", len(s.dcStack.frames))
	}
}

func TestDispatchSaveRestoreDC(t *testing.T) {
	s := newTestState()
	s.dc.strokeColor = ColorRef{5, 5, 5}

	handleSaveDC(s, nil)
	s.dc.strokeColor = ColorRef{6, 6, 6}

	handleRestoreDC(s, leWord(0)) // RESTOREDC(0) must be a no-op
	if s.dc.strokeColor != (ColorRef{6, 6, 6}) {
		t.Fatalf("expected RESTOREDC(0) dispatch to leave state untouched, got %+v", s.dc.strokeColor)
	}

	handleRestoreDC(s, leWord(1))
	if s.dc.strokeColor != (ColorRef{5, 5, 5}) {
		t.Fatalf("expected RESTOREDC(1) dispatch to restore the saved color, got %+v", s.dc.strokeColor)
	}
}
