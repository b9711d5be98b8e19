package ghost

import (
	"image"

	"gocv.io/x/gocv"
)

// Session is the state carried from one frame to the next. It is a value:
// Analyzer.Step consumes one and returns its successor.
type Session struct {
	Center image.Point // Centroid of the previous frame
	Mode   DisplayMode

	gray *gocv.Mat // Previous frame, 8-bit single channel
}

// ToggleMode returns s with the other display mode.
func (s Session) ToggleMode() Session {
	s.Mode = s.Mode.Toggle()
	return s
}

// Size returns the dimensions of the frame the session was built from.
func (s Session) Size() image.Point {
	if s.gray == nil {
		return image.Point{}
	}
	return image.Pt(s.gray.Cols(), s.gray.Rows())
}

// Close releases the retained frame.
func (s Session) Close() error {
	if s.gray == nil {
		return nil
	}
	return s.gray.Close()
}

// Report describes one analysed frame.
type Report struct {
	Previous     image.Point   // Centroid of the previous frame
	Current      image.Point   // Centroid of this frame
	Displacement image.Point   // Current - Previous
	Changes      int           // Pixels over the change threshold
	Anchors      []image.Point // Sampled change points that got an arrow
}

// Analyzer runs the per-frame pipeline with fixed parameters.
type Analyzer struct {
	params Params
	rng    Rand
}

// NewAnalyzer creates an analyzer. A nil rng uses SystemRand.
func NewAnalyzer(p Params, rng Rand) *Analyzer {
	if rng == nil {
		rng = SystemRand()
	}
	return &Analyzer{params: p, rng: rng}
}

// Start builds the initial session from the first BGR frame, in Color mode.
func (a *Analyzer) Start(frame gocv.Mat) Session {
	gray := toGray(frame)
	return Session{
		Center: EstimateCentroid(*gray),
		Mode:   Color,
		gray:   gray,
	}
}

// Step analyses a frame against s and renders the annotated copy into out,
// which is always 3-channel BGR. frame is BGR or 8-bit gray and is not modified. s is consumed: its retained frame is released
// and the returned session must be used from here on.
func (a *Analyzer) Step(s Session, frame gocv.Mat, out *gocv.Mat) (Session, Report) {
	gray := toGray(frame)
	center := EstimateCentroid(*gray)

	var changes []image.Point
	if s.Size() == image.Pt(gray.Cols(), gray.Rows()) {
		changes = DetectChanges(*s.gray, *gray, a.params.ChangeThreshold)
	}
	anchors := Sample(changes, a.params.SamplePoints, a.rng)

	toBGR(frame, out)
	Render(out, anchors, s.Center, center, s.Mode, a.params)

	r := Report{
		Previous:     s.Center,
		Current:      center,
		Displacement: center.Sub(s.Center),
		Changes:      len(changes),
		Anchors:      anchors,
	}

	s.Close()
	return Session{Center: center, Mode: s.Mode, gray: gray}, r
}

// toBGR writes a 3-channel copy of frame into dst.
func toBGR(frame gocv.Mat, dst *gocv.Mat) {
	if frame.Channels() == 1 {
		gocv.CvtColor(frame, dst, gocv.ColorGrayToBGR)
		return
	}
	frame.CopyTo(dst)
}

func toGray(frame gocv.Mat) *gocv.Mat {
	if frame.Channels() == 1 {
		gray := frame.Clone()
		return &gray
	}
	gray := gocv.NewMat()
	gocv.CvtColor(frame, &gray, gocv.ColorBGRToGray)
	return &gray
}
