package wmf2svg

import "fmt"

// strokeAttr formats the stroke/stroke-width/stroke-dasharray attributes
// for the current device context, scaled by the coordinate system.
func strokeAttr(dc *deviceContext, scaling float64) string {
	if !dc.strokeSet || dc.strokeStyle == penNull {
		return `stroke="none" `
	}

	width := dc.strokeWidth * scaling
	if width < 1.0 {
		width = 1.0
	}

	s := fmt.Sprintf(`stroke="%s" stroke-width="%.2f" `, dc.strokeColor.Hex(), width)

	switch dc.strokeStyle & 0x0F {
	case penDash:
		s += fmt.Sprintf(`stroke-dasharray="%.0f,%.0f" `, width*3, width)
	case penDot:
		s += fmt.Sprintf(`stroke-dasharray="%.0f,%.0f" `, width, width)
	case penDashDot:
		s += fmt.Sprintf(`stroke-dasharray="%.0f,%.0f,%.0f,%.0f" `, width*3, width, width, width)
	case penDashDotDot:
		s += fmt.Sprintf(`stroke-dasharray="%.0f,%.0f,%.0f,%.0f,%.0f,%.0f" `,
			width*3, width, width, width, width, width)
	}
	return s
}

// fillAttr formats the fill/fill-rule attributes for the current device
// context.
func fillAttr(dc *deviceContext) string {
	if !dc.fillSet || dc.fillStyle == brushNull || dc.fillStyle == brushHollow {
		return `fill="none" `
	}
	rule := "evenodd"
	if dc.fillPolyMode == fillWinding {
		rule = "nonzero"
	}
	return fmt.Sprintf(`fill="%s" fill-rule="%s" `, dc.fillColor.Hex(), rule)
}
