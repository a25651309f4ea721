// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package optimize

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"github.com/dalzilio/qcl"
)

// Algorithm selects the strategy used by an Optimizer.
type Algorithm int

const (
	GA   Algorithm = iota // Gradient ascent
	GAHC                  // Gradient ascent followed by hill climbing
	SA                    // Simulated annealing
	SAHC                  // Simulated annealing followed by hill climbing
)

var algonames = [4]string{
	GA:   "ga",
	GAHC: "gahc",
	SA:   "sa",
	SAHC: "sahc",
}

func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algonames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algonames[a]
}

// ParseAlgorithm returns the algorithm with the given name, one of ga, gahc,
// sa or sahc.
func ParseAlgorithm(s string) (Algorithm, error) {
	for k, name := range algonames {
		if name == s {
			return Algorithm(k), nil
		}
	}
	return 0, qcl.Errorf("ParseAlgorithm", qcl.ErrInput, "unknown optimisation algorithm (%s)", s)
}

// Default values used when an option is not set or is not positive.
const (
	_DEFAULTMAXITER   = 1000000
	_DEFAULTHCITERS   = 100
	_DEFAULTSTEPRATIO = 100 // GA and HC step sizes are budget / _DEFAULTSTEPRATIO
)

// Optimizer computes how to split a budget of resources between the
// dimensions of a confidence function. An Optimizer is not safe for concurrent
// use since it owns its random number generator.
type Optimizer struct {
	alg      Algorithm
	stepCoef float64 // gradient ascent step, 0 means budget/100
	hcStep   float64 // hill climbing radius, 0 means budget/100
	hcIters  int
	sa       *SAParams
	rng      *rand.Rand
	logger   *slog.Logger
	metrics  *Metrics
	maxiter  int
}

// Option is a configuration option for New.
type Option func(*Optimizer)

// StepCoef sets the length of a gradient ascent step, measured with the L1
// norm. The default is one hundredth of the budget.
func StepCoef(c float64) Option {
	return func(o *Optimizer) {
		o.stepCoef = c
	}
}

// HillClimbing sets the radius of the ball where hill climbing picks its
// trial points, and the number of trials. The defaults are one hundredth of
// the budget and 100 trials.
func HillClimbing(stepSize float64, iters int) Option {
	return func(o *Optimizer) {
		o.hcStep = stepSize
		o.hcIters = iters
	}
}

// Annealing sets the parameters of simulated annealing. It is mandatory for
// algorithms SA and SAHC.
func Annealing(p SAParams) Option {
	return func(o *Optimizer) {
		q := p
		q.Start = append([]float64(nil), p.Start...)
		o.sa = &q
	}
}

// Seed sets the seed of the random number generator. Two runs with the same
// seed and the same inputs return the same result.
func Seed(seed uint64) Option {
	return func(o *Optimizer) {
		o.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// Rand sets the random number generator.
func Rand(r *rand.Rand) Option {
	return func(o *Optimizer) {
		if r != nil {
			o.rng = r
		}
	}
}

// Logger sets the logger used to report progress and stalls.
func Logger(l *slog.Logger) Option {
	return func(o *Optimizer) {
		if l != nil {
			o.logger = l
		}
	}
}

// Instrument records the activity of the optimizer in m.
func Instrument(m *Metrics) Option {
	return func(o *Optimizer) {
		o.metrics = m
	}
}

// MaxIterations bounds the number of gradient ascent steps and the number of
// rejected neighbours in a row during simulated annealing. The default is
// 1 000 000.
func MaxIterations(n int) Option {
	return func(o *Optimizer) {
		if n > 0 {
			o.maxiter = n
		}
	}
}

// New returns an Optimizer using algorithm alg.
func New(alg Algorithm, options ...Option) (*Optimizer, error) {
	if alg < GA || alg > SAHC {
		return nil, qcl.Errorf("New", qcl.ErrInput, "unknown optimisation algorithm (coded %d)", int(alg))
	}
	o := &Optimizer{
		alg:     alg,
		hcIters: _DEFAULTHCITERS,
		logger:  slog.New(slog.DiscardHandler),
		maxiter: _DEFAULTMAXITER,
	}
	for _, f := range options {
		f(o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if alg == SA || alg == SAHC {
		if o.sa == nil {
			return nil, qcl.Errorf("New", qcl.ErrInput, "no simulated annealing arguments provided")
		}
		if err := o.sa.check(); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// Algorithm returns the strategy used by o.
func (o *Optimizer) Algorithm() Algorithm {
	return o.alg
}

// ******************************************************************************************************

// problem gathers the data shared by all the strategies. Candidate
// expressions are given in terms of the n resource variables.
type problem struct {
	n     int
	exps  []*qcl.Expression
	sizes []int
	grads [][]*qcl.Expression // computed on demand by gradient ascent
	sigma []float64
	ev    *qcl.Evaluator
}

func newproblem(exps []*qcl.Expression, sigma []float64) *problem {
	pb := &problem{
		n:     len(sigma),
		exps:  exps,
		sizes: make([]int, len(exps)),
		sigma: sigma,
		ev:    qcl.NewEvaluator(sigma),
	}
	for k, e := range exps {
		pb.sizes[k] = e.Size()
	}
	return pb
}

// values returns the value of every candidate at point.
func (pb *problem) values(point []float64) []float64 {
	pb.ev.Reset(point)
	return pb.ev.EvalAll(pb.exps)
}

// best returns the value of the confidence function, the maximum of the
// candidates, at point.
func (pb *problem) best(point []float64) float64 {
	res := math.Inf(-1)
	for _, v := range pb.values(point) {
		if v > res {
			res = v
		}
	}
	return res
}

// ******************************************************************************************************

// Repartition returns how to split budget between the n = len(sigma)
// dimensions, starting from allocation sigma, so as to maximize the maximum of
// the candidates cfds. Candidates are confidence expressions whose variable i
// is replaced by cfdRes[i]; after substitution they must only use variables 0
// to n-1, that stand for the resources allocated to each dimension. A nil
// cfdRes means that the candidates are already expressed in terms of
// resources. The result has size n and its sum is at most budget. Its
// components are non-negative, except possibly after hill climbing.
func (o *Optimizer) Repartition(cfds, cfdRes []*qcl.Expression, sigma []float64, budget float64) ([]float64, error) {
	n := len(sigma)
	switch {
	case n == 0:
		return nil, qcl.Errorf("Repartition", qcl.ErrInput, "empty starting point")
	case len(cfds) == 0:
		return nil, qcl.Errorf("Repartition", qcl.ErrInput, "no confidence candidate to optimize")
	case budget < 0 || math.IsNaN(budget) || math.IsInf(budget, 0):
		return nil, qcl.Errorf("Repartition", qcl.ErrInput, "invalid budget (%g)", budget)
	}
	for i, v := range sigma {
		if v < 0 || math.IsNaN(v) {
			return nil, qcl.Errorf("Repartition", qcl.ErrInput, "negative resource at index %d (%g)", i, v)
		}
	}
	for k, c := range cfds {
		if c == nil {
			return nil, qcl.Errorf("Repartition", qcl.ErrInput, "nil candidate at index %d", k)
		}
	}
	exps := qcl.ComposeAll(cfds, cfdRes)
	for k, e := range exps {
		if m := e.MaxVar(); m >= n {
			return nil, qcl.Errorf("Repartition", qcl.ErrInput, "candidate %d uses variable x_%d but there are only %d resources", k, m, n)
		}
	}
	if o.alg == SA || o.alg == SAHC {
		if len(o.sa.Start) != 0 && len(o.sa.Start) != n {
			return nil, qcl.Errorf("Repartition", qcl.ErrInput, "annealing start point has size %d, expected %d", len(o.sa.Start), n)
		}
	}
	start := time.Now()
	o.metrics.run(o.alg)
	defer func() { o.metrics.observe(o.alg, time.Since(start)) }()

	pb := newproblem(exps, sigma)
	if budget == 0 {
		return make([]float64, n), nil
	}
	var point []float64
	var err error
	switch o.alg {
	case GA, GAHC:
		point, err = o.gradientAscent(pb, budget)
	case SA, SAHC:
		point, err = o.anneal(pb, budget)
	}
	if err != nil {
		return nil, err
	}
	if o.alg == GAHC || o.alg == SAHC {
		point = o.hillClimb(pb, point, budget)
	}
	res := make([]float64, n)
	for i := range res {
		res[i] = point[i] - sigma[i]
	}
	o.logger.Info("repartition done", "algorithm", o.alg, "confidence", pb.best(point))
	return res, nil
}

// RepartitionProof calls Repartition on the positive candidates of the
// conclusion of p.
func (o *Optimizer) RepartitionProof(p *qcl.Proof, cfdRes []*qcl.Expression, sigma []float64, budget float64) ([]float64, error) {
	if p == nil {
		return nil, qcl.Errorf("Repartition", qcl.ErrInput, "nil proof")
	}
	return o.Repartition(p.Conclusion().PosCfds(), cfdRes, sigma, budget)
}

func l1norm(v []float64) float64 {
	res := 0.0
	for _, x := range v {
		res += math.Abs(x)
	}
	return res
}

func squarenorm(v []float64) float64 {
	res := 0.0
	for _, x := range v {
		res += x * x
	}
	return res
}
