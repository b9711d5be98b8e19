package ghost

import (
	"image"
	"testing"

	"gocv.io/x/gocv"
)

// grayFrame returns a w x h 8-bit frame filled with v. Closed at test end.
func grayFrame(t *testing.T, w, h int, v uint8) gocv.Mat {
	t.Helper()
	m := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(float64(v), 0, 0, 0), h, w, gocv.MatTypeCV8UC1)
	t.Cleanup(func() { m.Close() })
	return m
}

// whiteWith returns a white gray frame with the given pixels set to black.
func whiteWith(t *testing.T, w, h int, black ...image.Point) gocv.Mat {
	t.Helper()
	m := grayFrame(t, w, h, 255)
	for _, p := range black {
		m.SetUCharAt(p.Y, p.X, 0)
	}
	return m
}

// bgr converts a gray frame to 3-channel BGR. Closed at test end.
func bgr(t *testing.T, gray gocv.Mat) gocv.Mat {
	t.Helper()
	m := gocv.NewMat()
	gocv.CvtColor(gray, &m, gocv.ColorGrayToBGR)
	t.Cleanup(func() { m.Close() })
	return m
}

func newMat(t *testing.T) gocv.Mat {
	t.Helper()
	m := gocv.NewMat()
	t.Cleanup(func() { m.Close() })
	return m
}

func pixel(m gocv.Mat, p image.Point) [3]uint8 {
	v := m.GetVecbAt(p.Y, p.X)
	return [3]uint8{v[0], v[1], v[2]}
}

func pointSet(points []image.Point) map[image.Point]int {
	set := make(map[image.Point]int, len(points))
	for _, p := range points {
		set[p]++
	}
	return set
}
