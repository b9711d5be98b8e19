package ghost

import "gocv.io/x/gocv"

// DisplayMode selects how an annotated frame is presented.
type DisplayMode int

const (
	Color DisplayMode = iota
	Grayscale
)

func (m DisplayMode) String() string {
	if m == Grayscale {
		return "Grayscale"
	}
	return "Color"
}

// Toggle returns the other mode.
func (m DisplayMode) Toggle() DisplayMode {
	if m == Grayscale {
		return Color
	}
	return Grayscale
}

// Present returns the buffer to show for this mode. Color hands back
// annotated untouched. Grayscale drops colour into scratch and returns it
// as 3-channel BGR so the sink always receives the same layout.
func (m DisplayMode) Present(annotated gocv.Mat, scratch *gocv.Mat) gocv.Mat {
	if m != Grayscale {
		return annotated
	}

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(annotated, &gray, gocv.ColorBGRToGray)
	gocv.CvtColor(gray, scratch, gocv.ColorGrayToBGR)
	return *scratch
}
