package wmf2svg

import "testing"

func TestInitCoordSystemNoPlaceable(t *testing.T) {
	cs, w, h := initCoordSystem(nil, Options{})
	if w != 1000 || h != 1000 {
		t.Fatalf("expected 1000x1000 default image size, got %vx%v", w, h)
	}
	if cs.scaling != 1.0 {
		t.Fatalf("expected scaling 1.0, got %v", cs.scaling)
	}
}

func TestInitCoordSystemDPIDerived(t *testing.T) {
	placeable := &placeableHeader{
		Dst:  Rect16{Left: 0, Top: 0, Right: 1440, Bottom: 1440},
		Inch: 1440,
	}
	cs, w, h := initCoordSystem(placeable, Options{})
	if cs.scaling != 96.0/1440.0 {
		t.Fatalf("expected 96/1440 scaling, got %v", cs.scaling)
	}
	if w != 96 || h != 96 {
		t.Fatalf("expected 96x96 image, got %vx%v", w, h)
	}
}

func TestInitCoordSystemRequestedWidthPreservesAspect(t *testing.T) {
	placeable := &placeableHeader{
		Dst:  Rect16{Left: 0, Top: 0, Right: 200, Bottom: 100},
		Inch: 1440,
	}
	cs, w, h := initCoordSystem(placeable, Options{ImgWidth: 400})
	if w != 400 {
		t.Fatalf("expected requested width 400, got %v", w)
	}
	if h != 200 {
		t.Fatalf("expected aspect-derived height 200, got %v", h)
	}
	if cs.scaling != 2.0 {
		t.Fatalf("expected scaling 2.0, got %v", cs.scaling)
	}
}

func TestInitCoordSystemBothDimensionsTakesSmallerRatio(t *testing.T) {
	placeable := &placeableHeader{
		Dst: Rect16{Left: 0, Top: 0, Right: 100, Bottom: 100},
	}
	cs, w, h := initCoordSystem(placeable, Options{ImgWidth: 50, ImgHeight: 400})
	if cs.scaling != 0.5 {
		t.Fatalf("expected the smaller ratio (0.5) to win, got %v", cs.scaling)
	}
	if w != 50 || h != 400 {
		t.Fatalf("expected requested dimensions preserved exactly, got %vx%v", w, h)
	}
}

func TestScaleXYZeroExtentGuard(t *testing.T) {
	cs := coordSystem{scaling: 1.0}
	if got := cs.scaleX(42); got != 42 {
		t.Fatalf("expected zero-extent passthrough scaled by 1, got %v", got)
	}
}

func TestScaleXYWindowViewportMapping(t *testing.T) {
	cs := coordSystem{
		windowExtX: 100, windowExtY: 100,
		viewportExtX: 200, viewportExtY: 50,
		scaling: 1.0,
	}
	if got := cs.scaleX(50); got != 100 {
		t.Fatalf("expected window->viewport X scaling to double, got %v", got)
	}
	if got := cs.scaleY(50); got != 25 {
		t.Fatalf("expected window->viewport Y scaling to halve, got %v", got)
	}
}
