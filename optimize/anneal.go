// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package optimize

import (
	"math"

	"github.com/dalzilio/qcl"
)

// SAParams are the hyper-parameters of simulated annealing.
//
// The temperature at step k is ln(2) * Tmax / ln(k+1). When Lambda is zero,
// Tmax is -1 / ln(1 - PInit) and neighbours are drawn with a standard
// deviation of sqrt(pi / MaxStep). Otherwise the standard deviation is
// multiplied by Lambda and Tmax is calibrated on a confidence function of the
// form c^(x+1), where c is FunctionConstant, so that a typical move is accepted
// with probability PInit at the start.
type SAParams struct {
	MaxStep          int       // number of steps
	PInit            float64   // initial acceptance probability, in (0, 1)
	K0               int       // accepted for compatibility, unused
	Lambda           float64   // scale of the neighbour distribution
	FunctionConstant float64   // base of the calibration function
	Start            []float64 // lower bound of every dimension; defaults to the starting allocation
}

func (p *SAParams) check() error {
	switch {
	case p.MaxStep <= 0:
		return qcl.Errorf("Annealing", qcl.ErrInput, "max_step must be positive (%d)", p.MaxStep)
	case !(p.PInit > 0 && p.PInit < 1):
		return qcl.Errorf("Annealing", qcl.ErrInput, "p_init must be in (0, 1) (%g)", p.PInit)
	}
	return nil
}

// schedule holds the values derived from SAParams for a given problem.
type schedule struct {
	tmax    float64
	delta   float64
	lambdas []float64
	start   []float64
}

func (p *SAParams) schedule(sigma []float64) (*schedule, error) {
	n := len(sigma)
	s := &schedule{
		delta: math.Sqrt(math.Pi / float64(p.MaxStep)),
		start: p.Start,
	}
	if len(s.start) == 0 {
		s.start = sigma
	}
	if p.Lambda != 0 {
		s.delta *= p.Lambda
		for _, x := range s.start {
			s.tmax += math.Pow(p.FunctionConstant, x+1)
		}
		s.tmax *= math.Log(p.FunctionConstant) * s.delta / math.Log(p.PInit)
	} else {
		s.tmax = -1 / math.Log(1-p.PInit)
	}
	if !(s.tmax > 0) || math.IsInf(s.tmax, 0) {
		return nil, qcl.Errorf("Annealing", qcl.ErrInput, "invalid initial temperature (%g)", s.tmax)
	}
	if n > 1 {
		s.lambdas = make([]float64, n-1)
		for i := range s.lambdas {
			k := float64(i + 1)
			s.lambdas[i] = 1 / math.Sqrt(k+k*k)
		}
	}
	return s, nil
}

func (s *schedule) temp(k int) float64 {
	return math.Ln2 * s.tmax / math.Log(float64(k+1))
}

// energy is minimized by annealing.
func (pb *problem) energy(point []float64) float64 {
	return -pb.best(point)
}

func accept(eold, enew, temp float64) float64 {
	if enew <= eold {
		return 1
	}
	return math.Exp((eold - enew) / temp)
}

// neighbour adds to point a Gaussian vector of the hyperplane where the sum of
// coordinates is zero, using the orthonormal basis (v_0, ..., v_{n-2}) with
// (v_i)_j = 1/sqrt((i+1)+(i+1)^2) for j <= i and (v_i)_{i+1} = -(i+1) times
// the same value. Neighbours with a coordinate below the start point are
// rejected and drawn again.
func (o *Optimizer) neighbour(s *schedule, point, next, coefs []float64) error {
	n := len(point)
	for tries := 1; ; tries++ {
		copy(next, point)
		gaussians(o.rng, coefs)
		for i, c := range coefs {
			d := s.delta * s.lambdas[i] * c
			for j := 0; j <= i; j++ {
				next[j] += d
			}
			next[i+1] -= float64(i+1) * d
		}
		ok := true
		for i := 0; i < n; i++ {
			if next[i] < s.start[i] {
				ok = false
				break
			}
		}
		if ok {
			return nil
		}
		o.metrics.reject()
		if tries >= o.maxiter {
			return qcl.Errorf("Repartition", qcl.ErrIterations, "no admissible neighbour after %d tries", tries)
		}
	}
}

// anneal runs simulated annealing from the point where the budget is split
// evenly between all dimensions, and returns the best point visited.
func (o *Optimizer) anneal(pb *problem, budget float64) ([]float64, error) {
	n := pb.n
	point := make([]float64, n)
	for i := range point {
		point[i] = pb.sigma[i] + budget/float64(n)
	}
	if n < 2 {
		return point, nil
	}
	s, err := o.sa.schedule(pb.sigma)
	if err != nil {
		return nil, err
	}
	best := append([]float64(nil), point...)
	eold := pb.energy(point)
	ebest := eold
	next := make([]float64, n)
	coefs := make([]float64, n-1)
	accepted := 0
	for k := 1; k <= o.sa.MaxStep; k++ {
		temp := s.temp(k)
		if err := o.neighbour(s, point, next, coefs); err != nil {
			return nil, err
		}
		enew := pb.energy(next)
		o.metrics.iterate("sa")
		if accept(eold, enew, temp) >= o.rng.Float64() {
			point, next = next, point
			eold = enew
			accepted++
			o.metrics.accept("sa")
			if eold < ebest {
				copy(best, point)
				ebest = eold
			}
		}
	}
	o.logger.Debug("simulated annealing done", "phase", "sa", "iterations", o.sa.MaxStep, "accepted", accepted, "best", -ebest)
	return best, nil
}
