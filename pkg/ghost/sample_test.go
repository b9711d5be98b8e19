package ghost

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func population(n int) []image.Point {
	pts := make([]image.Point, n)
	for i := range pts {
		pts[i] = image.Pt(i%37, i/37)
	}
	return pts
}

func TestSample_Size(t *testing.T) {
	tests := []struct {
		name string
		n, k int
		want int
	}{
		{"empty population", 0, 50, 0},
		{"k zero", 10, 0, 0},
		{"k negative", 10, -3, 0},
		{"fewer than k", 7, 50, 7},
		{"exactly k", 50, 50, 50},
		{"more than k", 10000, 50, 50},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Sample(population(tc.n), tc.k, NewRand(1))
			assert.Len(t, got, tc.want)
		})
	}
}

func TestSample_DistinctMembers(t *testing.T) {
	pts := population(500)
	members := pointSet(pts)

	for seed := uint64(0); seed < 20; seed++ {
		got := Sample(pts, 50, NewRand(seed))
		for p, count := range pointSet(got) {
			assert.Equal(t, 1, count, "seed %d: %v drawn twice", seed, p)
			assert.Contains(t, members, p)
		}
	}
}

func TestSample_WholePopulationWhenSmall(t *testing.T) {
	pts := population(12)
	got := Sample(pts, 50, NewRand(9))

	assert.Equal(t, pointSet(pts), pointSet(got))
}

func TestSample_SeededIsDeterministic(t *testing.T) {
	pts := population(2000)

	a := Sample(pts, 50, NewRand(42))
	b := Sample(pts, 50, NewRand(42))
	c := Sample(pts, 50, NewRand(43))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestSample_SystemRand(t *testing.T) {
	got := Sample(population(300), 50, SystemRand())

	assert.Len(t, got, 50)
	assert.Len(t, pointSet(got), 50)
}
