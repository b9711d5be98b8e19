package ghost

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"gocv.io/x/gocv"
)

var (
	bgrBlack = [3]uint8{0, 0, 0}
	bgrGreen = [3]uint8{0, 255, 0}
	bgrRed   = [3]uint8{0, 0, 255}
)

func TestArrowTip(t *testing.T) {
	tests := []struct {
		name  string
		p     image.Point
		delta image.Point
		scale float64
		want  image.Point
	}{
		{"no motion", image.Pt(10, 20), image.Pt(0, 0), 5, image.Pt(10, 20)},
		{"scaled", image.Pt(10, 20), image.Pt(2, -3), 5, image.Pt(20, 5)},
		{"fractional truncates", image.Pt(10, 10), image.Pt(1, 1), 0.5, image.Pt(10, 10)},
		{"negative truncates toward zero", image.Pt(0, 0), image.Pt(-1, -3), 0.5, image.Pt(0, -1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ArrowTip(tc.p, tc.delta, tc.scale))
		})
	}
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Movement: (0, 0)", MovementLabel(image.Point{}))
	assert.Equal(t, "Movement: (-4, 7)", MovementLabel(image.Pt(-4, 7)))
	assert.Equal(t, "Mode: Color", ModeLabel(Color))
	assert.Equal(t, "Mode: Grayscale", ModeLabel(Grayscale))
}

func blackBGR(t *testing.T, w, h int) gocv.Mat {
	t.Helper()
	m := gocv.NewMatWithSize(h, w, gocv.MatTypeCV8UC3)
	m.SetTo(gocv.NewScalar(0, 0, 0, 0))
	t.Cleanup(func() { m.Close() })
	return m
}

func TestRender_MarkersAndArrows(t *testing.T) {
	dst := blackBGR(t, 200, 200)
	anchor := image.Pt(100, 150)

	p := DefaultParams()
	p.DotRadius = 5

	// displacement (10, 0) * 5 -> arrow to (150, 150)
	Render(&dst, []image.Point{anchor}, image.Pt(40, 40), image.Pt(50, 40), Color, p)

	assert.Equal(t, bgrRed, pixel(dst, image.Pt(125, 150)), "arrow shaft")
	assert.Equal(t, bgrGreen, pixel(dst, image.Pt(100, 154)), "marker below anchor")
	assert.Equal(t, bgrBlack, pixel(dst, image.Pt(100, 180)), "untouched pixel")
}

func TestRender_NoAnchorsDrawsOnlyText(t *testing.T) {
	dst := blackBGR(t, 300, 200)

	Render(&dst, nil, image.Pt(5, 5), image.Pt(5, 5), Grayscale, DefaultParams())

	text := dst.Region(image.Rect(0, 0, 300, 75))
	defer text.Close()
	lit := gocv.NewMat()
	defer lit.Close()
	gocv.CvtColor(text, &lit, gocv.ColorBGRToGray)
	assert.Positive(t, gocv.CountNonZero(lit), "overlay text missing")

	below := dst.Region(image.Rect(0, 75, 300, 200))
	defer below.Close()
	rest := gocv.NewMat()
	defer rest.Close()
	gocv.CvtColor(below, &rest, gocv.ColorBGRToGray)
	assert.Zero(t, gocv.CountNonZero(rest), "nothing may be drawn outside the overlay")
}

func TestRender_SameVectorAtEveryAnchor(t *testing.T) {
	anchors := []image.Point{{40, 120}, {150, 200}, {220, 260}}
	prev := image.Pt(40, 40)

	tests := []struct {
		name  string
		delta image.Point
	}{
		{"rightward", image.Pt(10, 0)},
		{"upward", image.Pt(0, -8)},
		{"diagonal", image.Pt(6, 6)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultParams()
			dst := blackBGR(t, 300, 300)

			Render(&dst, anchors, prev, prev.Add(tc.delta), Color, p)

			want := ArrowTip(anchors[0], tc.delta, p.VectorScale).Sub(anchors[0])
			for _, a := range anchors {
				assert.Equal(t, want, ArrowTip(a, tc.delta, p.VectorScale).Sub(a), "anchor %v", a)

				mid := a.Add(want.Div(2))
				assert.Equal(t, bgrRed, pixel(dst, mid), "shaft midpoint of anchor %v", a)
			}
		})
	}
}
