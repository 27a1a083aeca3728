package primitives

import "math"

// InterpolateFloat returns one value per integer step from i0 to i1
// inclusive, moving linearly from d0 to d1. Equal endpoints give [d0].
func InterpolateFloat(i0 int, d0 float64, i1 int, d1 float64) []float64 {
	if i0 == i1 {
		return []float64{d0}
	}

	steps := i1 - i0
	if steps < 0 {
		steps = -steps
	}
	slope := (d1 - d0) / float64(steps)

	values := make([]float64, steps+1)
	for k := range values {
		values[k] = d0 + slope*float64(k)
	}
	return values
}

// Interpolate is InterpolateFloat over integers, rounding half away from
// zero.
func Interpolate(i0, d0, i1, d1 int) []int {
	floats := InterpolateFloat(i0, float64(d0), i1, float64(d1))
	values := make([]int, len(floats))
	for k, f := range floats {
		values[k] = int(math.Round(f))
	}
	return values
}
