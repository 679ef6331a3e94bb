package wmf2svg

// coordSystem holds the window/viewport mapping and global scaling that
// together turn a record's signed 16-bit device coordinates into CSS
// pixels. Map mode is recorded but never changes how scaleX/scaleY
// behave -- WMF's per-map-mode axis flipping is an intentionally
// unimplemented simplification.
type coordSystem struct {
	windowOrgX, windowOrgY   int16
	windowExtX, windowExtY   int16
	viewportOrgX, viewportOrgY int16
	viewportExtX, viewportExtY int16
	mapMode                 uint16
	scaling                  float64
}

// scaleX maps a raw record X coordinate through the window/viewport
// transform and the global scaling factor, the same origin/extent ratio
// math as the toImg closure in emf_vector.go's renderEMFVector (dx =
// (lx-winOrgX) * vpExtX/winExtX + vpOrgX, then scaled), generalized from
// a one-shot EMF-to-image closure into a reusable per-axis method driven
// by live SETWINDOW*/SETVIEWPORT* records instead of a single up-front
// scan. When the window extent is zero the transform is skipped
// (division-by-zero guard) and only the global scaling is applied.
func (c *coordSystem) scaleX(x int16) float64 {
	result := float64(x)
	if c.windowExtX != 0 {
		result = (result-float64(c.windowOrgX))*
			(float64(c.viewportExtX)/float64(c.windowExtX)) + float64(c.viewportOrgX)
	}
	return result * c.scaling
}

func (c *coordSystem) scaleY(y int16) float64 {
	result := float64(y)
	if c.windowExtY != 0 {
		result = (result-float64(c.windowOrgY))*
			(float64(c.viewportExtY)/float64(c.windowExtY)) + float64(c.viewportOrgY)
	}
	return result * c.scaling
}

func (c *coordSystem) scalePoint(p Point16) (x, y float64) {
	return c.scaleX(p.X), c.scaleY(p.Y)
}

// mapModeAnisotropic is the map mode stamped onto every conversion once the
// coordinate system is initialized; it is metadata only (see above).
const mapModeAnisotropic = 8

// initCoordSystem derives the starting window/viewport extents and
// scaling factor from the placeable header (if any) and the requested
// output dimensions:
//
//   - With a placeable header and no requested dimensions: scaling is
//     96/Inch (convert metafile units to 96dpi CSS pixels).
//   - With a placeable header and one or both requested dimensions: scale
//     to match the requested ratio(s), taking the smaller of the two
//     ratios when both are given, to preserve aspect ratio.
//   - Without a placeable header: a 1000x1000 default window extent with
//     scaling 1.
func initCoordSystem(placeable *placeableHeader, opts Options) (cs coordSystem, imgWidth, imgHeight float64) {
	if placeable == nil {
		cs.windowExtX = 1000
		cs.windowExtY = 1000
		cs.scaling = 1.0
		cs.viewportExtX = cs.windowExtX
		cs.viewportExtY = cs.windowExtY
		cs.mapMode = mapModeAnisotropic
		return cs, 1000, 1000
	}

	cs.windowOrgX = placeable.Dst.Left
	cs.windowOrgY = placeable.Dst.Top
	cs.windowExtX = placeable.Dst.Right - placeable.Dst.Left
	cs.windowExtY = placeable.Dst.Bottom - placeable.Dst.Top

	wmfWidth := float64(cs.windowExtX)
	wmfHeight := float64(cs.windowExtY)

	switch {
	case opts.ImgWidth > 0 && opts.ImgHeight > 0:
		sx := opts.ImgWidth / wmfWidth
		sy := opts.ImgHeight / wmfHeight
		if sx < sy {
			cs.scaling = sx
		} else {
			cs.scaling = sy
		}
		imgWidth, imgHeight = opts.ImgWidth, opts.ImgHeight
	case opts.ImgWidth > 0:
		cs.scaling = opts.ImgWidth / wmfWidth
		imgWidth = opts.ImgWidth
		imgHeight = wmfHeight * cs.scaling
	case opts.ImgHeight > 0:
		cs.scaling = opts.ImgHeight / wmfHeight
		imgHeight = opts.ImgHeight
		imgWidth = wmfWidth * cs.scaling
	default:
		inch := float64(placeable.Inch)
		if inch == 0 {
			inch = 1440 // avoid division by zero on a malformed Inch field
		}
		cs.scaling = 96.0 / inch
		imgWidth = wmfWidth * cs.scaling
		imgHeight = wmfHeight * cs.scaling
	}

	cs.viewportExtX = cs.windowExtX
	cs.viewportExtY = cs.windowExtY
	cs.mapMode = mapModeAnisotropic
	return cs, imgWidth, imgHeight
}
