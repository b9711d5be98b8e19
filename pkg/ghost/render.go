package ghost

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// ArrowTip returns where the arrow anchored at p ends: p + delta*scale,
// truncated toward zero.
func ArrowTip(p, delta image.Point, scale float64) image.Point {
	return image.Pt(
		int(float64(p.X)+float64(delta.X)*scale),
		int(float64(p.Y)+float64(delta.Y)*scale),
	)
}

// Render draws a marker and the shared displacement arrow at every anchor,
// then the movement and mode overlay lines. Only dst is modified.
func Render(dst *gocv.Mat, anchors []image.Point, prev, curr image.Point, mode DisplayMode, p Params) {
	delta := curr.Sub(prev)

	for _, a := range anchors {
		gocv.Circle(dst, a, p.DotRadius, p.DotColor, -1)
		gocv.ArrowedLine(dst, a, ArrowTip(a, delta, p.VectorScale), p.VectorColor, p.VectorThickness)
	}

	gocv.PutText(dst, MovementLabel(delta), p.MovementAt,
		gocv.FontHersheySimplex, p.TextScale, p.TextColor, p.TextThickness)
	gocv.PutText(dst, ModeLabel(mode), p.ModeAt,
		gocv.FontHersheySimplex, p.TextScale, p.TextColor, p.TextThickness)
}

// MovementLabel is the overlay line for a centroid displacement.
func MovementLabel(delta image.Point) string {
	return fmt.Sprintf("Movement: (%d, %d)", delta.X, delta.Y)
}

// ModeLabel is the overlay line for the display mode.
func ModeLabel(mode DisplayMode) string {
	return "Mode: " + mode.String()
}
