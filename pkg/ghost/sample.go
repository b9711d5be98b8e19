package ghost

import (
	"image"
	"math/rand/v2"
)

// Rand is the randomness the sampler draws from.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a uniform int in [0, n). n > 0.
	IntN(n int) int
}

// NewRand returns a deterministic source for the given seed.
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type systemRand struct{}

func (systemRand) IntN(n int) int { return rand.IntN(n) }

// SystemRand returns the process-wide, randomly seeded source.
func SystemRand() Rand {
	return systemRand{}
}

// Sample picks min(k, len(points)) distinct elements of points uniformly at
// random, without replacement. It never fails: an empty population or k <= 0
// gives an empty result.
func Sample(points []image.Point, k int, rng Rand) []image.Point {
	n := len(points)
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}

	// Floyd's algorithm: O(k) draws regardless of population size.
	chosen := make(map[int]struct{}, k)
	out := make([]image.Point, 0, k)
	for j := n - k; j < n; j++ {
		t := rng.IntN(j + 1)
		if _, dup := chosen[t]; dup {
			t = j
		}
		chosen[t] = struct{}{}
		out = append(out, points[t])
	}
	return out
}
