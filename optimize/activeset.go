// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package optimize

import (
	"math"

	"github.com/dalzilio/qcl"
)

// Compare returns 0 when x and y are equal up to a relative tolerance of tol
// times the machine epsilon, -1 when x < y and +1 when x > y.
func Compare(x, y, tol float64) int {
	largest := math.Max(math.Abs(x), math.Abs(y))
	if math.Abs(x-y) <= tol*largest*epsilon {
		return 0
	}
	if x < y {
		return -1
	}
	return 1
}

// epsilon is the difference between 1 and the next representable float64.
const epsilon = 2.220446049250313e-16

// active returns the indices of the candidates that reach the maximum of vals.
// Values are scanned in order, starting from a maximum of 0. A value that
// ties the current maximum joins the group, using the size of the largest
// expression seen in the group as tolerance, and a strictly larger value
// starts a new group.
func (pb *problem) active(vals []float64) []int {
	var group []int
	maxSize := 0
	vmax := 0.0
	for i, v := range vals {
		size := maxSize
		if pb.sizes[i] > size {
			size = pb.sizes[i]
		}
		switch Compare(v, vmax, float64(size)) {
		case 0:
			maxSize = size
			group = append(group, i)
			vmax = v
		case 1:
			maxSize = pb.sizes[i]
			group = append(group[:0], i)
			vmax = v
		}
	}
	return group
}

// gradients returns the simplified partial derivatives of every candidate.
func (pb *problem) gradients() [][]*qcl.Expression {
	if pb.grads == nil {
		pb.grads = make([][]*qcl.Expression, len(pb.exps))
		for k, e := range pb.exps {
			pb.grads[k] = e.Gradient(pb.n)
		}
	}
	return pb.grads
}

// direction returns the ascent direction at point: the gradient with the
// largest Euclidean norm among the active candidates. It returns a zero
// vector when no active candidate has a non-zero gradient. The second result
// is the value of the candidates at point.
func (pb *problem) direction(point []float64) ([]float64, []float64) {
	vals := pb.values(point)
	grads := pb.gradients()
	best := make([]float64, pb.n)
	bestNorm := 0.0
	cur := make([]float64, pb.n)
	for _, k := range pb.active(vals) {
		for j := range cur {
			cur[j] = pb.ev.Eval(grads[k][j])
		}
		if norm := squarenorm(cur); norm > bestNorm {
			bestNorm = norm
			best, cur = cur, best
		}
	}
	return best, vals
}
