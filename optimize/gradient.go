// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package optimize

import (
	"github.com/dalzilio/qcl"
)

// gradientAscent moves from pb.sigma along the ascent direction, with steps of
// L1 length stepCoef, until the whole budget has been spent. The last step is
// shortened so that the result lies exactly on the budget boundary. Negative
// components of the direction are ignored, so resources are never taken back
// from a dimension.
func (o *Optimizer) gradientAscent(pb *problem, budget float64) ([]float64, error) {
	step := o.stepCoef
	if step <= 0 {
		step = budget / _DEFAULTSTEPRATIO
	}
	cur := append([]float64(nil), pb.sigma...)
	total := l1norm(pb.sigma) + budget
	normCur := l1norm(cur)
	for iters := 1; ; iters++ {
		dir, vals := pb.direction(cur)
		for j, d := range dir {
			if d < 0 {
				dir[j] = 0
			}
		}
		alpha := step
		stop := false
		if normCur+alpha > total {
			alpha = total - normCur
			if alpha < 0 {
				alpha = 0
			}
			stop = true
		}
		normDir := l1norm(dir)
		if normDir == 0 {
			o.stall(pb, cur, vals)
			return nil, qcl.Errorf("Repartition", qcl.ErrStall, "null ascent direction after %d steps", iters)
		}
		for j := range cur {
			inc := alpha * dir[j] / normDir
			cur[j] += inc
			normCur += inc
		}
		o.metrics.iterate("ga")
		if stop {
			o.logger.Debug("gradient ascent done", "phase", "ga", "iterations", iters, "best", pb.best(cur))
			return cur, nil
		}
		if iters >= o.maxiter {
			return nil, qcl.Errorf("Repartition", qcl.ErrIterations, "too many iterations in gradient ascent (%d)", iters)
		}
	}
}

// stall logs the state of a gradient ascent that cannot progress.
func (o *Optimizer) stall(pb *problem, cur, vals []float64) {
	o.metrics.stall()
	grads := pb.gradients()
	pb.ev.Reset(cur)
	derivs := make([][]float64, len(grads))
	for k := range grads {
		derivs[k] = pb.ev.EvalAll(grads[k])
	}
	o.logger.Error("gradient ascent stalled",
		"sigma", pb.sigma,
		"point", cur,
		"values", vals,
		"active", pb.active(vals),
		"derivatives", derivs)
	for k := range grads {
		for j, d := range grads[k] {
			o.logger.Debug("derivative", "candidate", k, "variable", j, "expression", d.String(), "eval", derivs[k][j])
		}
	}
}
