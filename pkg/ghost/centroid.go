package ghost

import (
	"image"

	"gocv.io/x/gocv"
)

// EstimateCentroid returns the centre of mass of an 8-bit single-channel frame
// where dark pixels are heavy (weight = 255 - value).
// A frame with no mass (all white) yields its geometric centre.
func EstimateCentroid(gray gocv.Mat) image.Point {
	inverted := gocv.NewMat()
	defer inverted.Close()
	gocv.BitwiseNot(gray, &inverted)

	m := gocv.Moments(inverted, false)
	if m["m00"] == 0 {
		return image.Pt(gray.Cols()/2, gray.Rows()/2)
	}

	// Conversion truncates toward zero; moments are non-negative here.
	return image.Pt(int(m["m10"]/m["m00"]), int(m["m01"]/m["m00"]))
}
