package common

import (
	"math/rand"

	"github.com/jakecoffman/cp"
)

const (
	BaseWidth  = 1280
	BaseHeight = 720
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// RandomPoint returns a point with each axis drawn uniformly from
// [-extent, extent).
func RandomPoint(rng *rand.Rand, extent float64) cp.Vector {
	return cp.Vector{
		X: Lerp(-extent, extent, rng.Float64()),
		Y: Lerp(-extent, extent, rng.Float64()),
	}
}
