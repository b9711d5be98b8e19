// Package ghost computes per-frame darkness centroids and draws "ghost lines":
// the global centroid displacement rendered as identical arrows anchored at
// sampled points of significant change between consecutive frames.
package ghost

import (
	"image"
	"image/color"
)

// Params holds the fixed analysis and drawing constants.
type Params struct {
	// Analysis
	SamplePoints    int     // Max anchors drawn per frame
	ChangeThreshold int     // A pixel changed if |prev-curr| > this
	VectorScale     float64 // Multiplier applied to the centroid displacement

	// Markers and arrows (colours are RGB; gocv maps them to BGR)
	DotRadius       int
	DotColor        color.RGBA
	VectorColor     color.RGBA
	VectorThickness int

	// Overlay text
	TextColor     color.RGBA
	TextScale     float64
	TextThickness int
	MovementAt    image.Point // Baseline origin of the displacement line
	ModeAt        image.Point // Baseline origin of the mode line
}

// DefaultParams returns the constants the detector runs with.
func DefaultParams() Params {
	return Params{
		SamplePoints:    50,
		ChangeThreshold: 30,
		VectorScale:     5.0,

		DotRadius:       2,
		DotColor:        color.RGBA{G: 255, A: 255},
		VectorColor:     color.RGBA{R: 255, A: 255},
		VectorThickness: 2,

		TextColor:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
		TextScale:     0.7,
		TextThickness: 2,
		MovementAt:    image.Pt(10, 30),
		ModeAt:        image.Pt(10, 60),
	}
}
