// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package qcl

import (
	"fmt"
	"math"
)

// Evaluator computes the value of expressions at a fixed point. Expressions
// built by the proof rules share many sub-expressions (for instance Cup uses
// both of its operands twice) and a naive evaluation can be exponential in the
// depth of the proof. The Evaluator caches the value of every binary or unary
// node it visits, so each node is evaluated at most once per point.
type Evaluator struct {
	sigma  []float64
	cache  map[*Expression]float64
	access int // number of lookups in the cache
	hit    int // lookups that found a value
}

// NewEvaluator returns an Evaluator for the point sigma.
func NewEvaluator(sigma []float64) *Evaluator {
	return &Evaluator{
		sigma: sigma,
		cache: make(map[*Expression]float64),
	}
}

// Reset moves the Evaluator to a new point and empties the cache.
func (ev *Evaluator) Reset(sigma []float64) {
	ev.sigma = sigma
	for k := range ev.cache {
		delete(ev.cache, k)
	}
}

// Point returns the point at which expressions are evaluated.
func (ev *Evaluator) Point() []float64 {
	return ev.sigma
}

// Eval returns the value of e at the current point. It returns the same result
// as e.Eval(ev.Point()).
func (ev *Evaluator) Eval(e *Expression) float64 {
	switch e.kind {
	case ExpVar:
		return ev.sigma[e.index]
	case ExpConst:
		return e.value
	}
	ev.access++
	if v, ok := ev.cache[e]; ok {
		ev.hit++
		return v
	}
	var v float64
	switch e.kind {
	case ExpNeg:
		v = -ev.Eval(e.left)
	case ExpLog:
		v = math.Log(ev.Eval(e.left))
	default:
		v = apply(e.kind, ev.Eval(e.left), ev.Eval(e.right))
	}
	ev.cache[e] = v
	return v
}

// EvalAll evaluates every expression in es and returns the values.
func (ev *Evaluator) EvalAll(es []*Expression) []float64 {
	res := make([]float64, len(es))
	for k, e := range es {
		res[k] = ev.Eval(e)
	}
	return res
}

func (ev *Evaluator) String() string {
	res := fmt.Sprintf("Cached nodes:  %d\n", len(ev.cache))
	res += fmt.Sprintf("Access:        %d\n", ev.access)
	if ev.access > 0 {
		r := (float64(ev.hit) / float64(ev.access)) * 100
		res += fmt.Sprintf("Hit:           %d (%.3g %%)", ev.hit, r)
	} else {
		res += "Hit:           0"
	}
	return res
}
