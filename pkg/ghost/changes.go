package ghost

import (
	"image"

	"gocv.io/x/gocv"
)

// DetectChanges returns the coordinates where |prev - curr| > threshold,
// in row-major order. Both frames must be 8-bit single-channel with equal size.
// An empty result is normal.
func DetectChanges(prev, curr gocv.Mat, threshold int) []image.Point {
	diff := gocv.NewMat()
	defer diff.Close()
	gocv.AbsDiff(prev, curr, &diff)

	// Differences live in [0,255]; nothing can exceed 255.
	if threshold >= 255 {
		return nil
	}

	mask := gocv.NewMat()
	defer mask.Close()
	gocv.Threshold(diff, &mask, float32(threshold), 255, gocv.ThresholdBinary)

	if gocv.CountNonZero(mask) == 0 {
		return nil
	}

	locs := gocv.NewMat()
	defer locs.Close()
	gocv.FindNonZero(mask, &locs)

	points := make([]image.Point, 0, locs.Rows())
	for i := 0; i < locs.Rows(); i++ {
		v := locs.GetVeciAt(i, 0)
		points = append(points, image.Pt(int(v[0]), int(v[1])))
	}
	return points
}
