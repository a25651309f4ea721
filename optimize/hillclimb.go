// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package optimize

import "math"

// hillClimb improves point by random moves that keep the total amount of
// resources unchanged. Each trial direction has n-1 Gaussian coordinates, the
// last one being minus the sum of the others, and a random radius smaller
// than the step size. A trial is kept as soon as one candidate beats the best
// value seen so far.
//
// When a trial would take a dimension below its value in pb.sigma, the radius
// is set so that this dimension lands exactly on its lower bound. Only the last
// violated dimension is taken into account, so the trial point may still be
// out of bounds for another dimension.
func (o *Optimizer) hillClimb(pb *problem, point []float64, budget float64) []float64 {
	n := pb.n
	if n < 2 {
		return point
	}
	step, iters := o.hcStep, o.hcIters
	if step <= 0 {
		step = budget / _DEFAULTSTEPRATIO
	}
	if iters <= 0 {
		iters = _DEFAULTHCITERS
	}
	cur := append([]float64(nil), point...)
	best := 0.0
	for _, v := range pb.values(cur) {
		if v > best {
			best = v
		}
	}
	dir := make([]float64, n)
	test := make([]float64, n)
	accepted := 0
	for it := 0; it < iters; it++ {
		gaussians(o.rng, dir[:n-1])
		dir[n-1] = 0
		for i := 0; i < n-1; i++ {
			dir[n-1] -= dir[i]
		}
		l2 := math.Sqrt(squarenorm(dir))
		if l2 == 0 {
			continue
		}
		r := math.Pow(o.rng.Float64(), 1/float64(n-1)) * step / l2
		for i := range dir {
			if cur[i]+dir[i]*r < pb.sigma[i] {
				r = (pb.sigma[i] - cur[i]) / dir[i]
			}
		}
		for i := range dir {
			test[i] = cur[i] + dir[i]*r
		}
		o.metrics.iterate("hc")
		for _, v := range pb.values(test) {
			if v > best {
				best = v
				copy(cur, test)
				accepted++
				o.metrics.accept("hc")
				break
			}
		}
	}
	o.logger.Debug("hill climbing done", "phase", "hc", "iterations", iters, "accepted", accepted, "best", best)
	return cur
}
