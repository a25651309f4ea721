// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package optimize

import (
	"math"
	"math/rand/v2"
)

// boxMuller returns two independent standard Gaussian values computed from
// two uniform values x in (0, 1] and y in [0, 1).
func boxMuller(x, y float64) (float64, float64) {
	r := math.Sqrt(-2 * math.Log(x))
	return r * math.Cos(2*math.Pi*y), r * math.Sin(2*math.Pi*y)
}

// gaussians fills v with standard Gaussian values, generated by pairs. When
// the length of v is odd, the second value of the last pair is dropped.
func gaussians(rng *rand.Rand, v []float64) {
	for i := 0; i < len(v); i += 2 {
		a, b := boxMuller(1-rng.Float64(), rng.Float64())
		v[i] = a
		if i+1 < len(v) {
			v[i+1] = b
		}
	}
}
