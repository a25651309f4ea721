// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package qcl

import (
	"sort"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

// circuit is the encoding of a fault tree as a Boolean circuit, where the
// input associated with a wire is true when the wire carries a fault.
type circuit struct {
	c     *logic.C
	top   z.Lit
	wires map[int]z.Lit
}

func newcircuit(t *FaultTree) *circuit {
	ci := &circuit{c: logic.NewC(), wires: make(map[int]z.Lit)}
	ci.top = ci.build(t)
	return ci
}

func (ci *circuit) build(t *FaultTree) z.Lit {
	switch t.kind {
	case FtWire:
		if lit, ok := ci.wires[t.index]; ok {
			return lit
		}
		lit := ci.c.Lit()
		ci.wires[t.index] = lit
		return lit
	case FtAnd, FtPand:
		return ci.c.Ands(ci.build(t.left), ci.build(t.right))
	case FtOr:
		return ci.c.Ors(ci.build(t.left), ci.build(t.right))
	}
	panic(Errorf("MinimalCutSets", ErrInvariant, "unknown fault tree kind %s", t.kind))
}

// solver returns a SAT solver where the root of the fault tree is required to
// fail.
func (ci *circuit) solver() *gini.Gini {
	g := gini.New()
	ci.c.ToCnf(g)
	g.Add(ci.top)
	g.Add(0)
	return g
}

// CanFail reports whether a fault can propagate to the root of t when the
// wires in failed carry a fault and the wires in working do not. Other wires
// are unconstrained.
func CanFail(t *FaultTree, failed, working []int) bool {
	ci := newcircuit(t)
	g := ci.solver()
	var assumptions []z.Lit
	for _, w := range failed {
		if lit, ok := ci.wires[w]; ok {
			assumptions = append(assumptions, lit)
		}
	}
	for _, w := range working {
		if lit, ok := ci.wires[w]; ok {
			assumptions = append(assumptions, lit.Not())
		}
	}
	g.Assume(assumptions...)
	return g.Solve() == 1
}

// MinimalCutSets returns the minimal sets of wires whose joint failure makes a
// fault propagate to the root of t. Each cut set is sorted and cut sets are
// returned by increasing size, then in lexicographic order. We stop after limit
// cut sets when limit is positive.
func MinimalCutSets(t *FaultTree, limit int) [][]int {
	ci := newcircuit(t)
	g := ci.solver()
	wires := t.Wires()
	sigma := make([]bool, wires[len(wires)-1]+1)
	var res [][]int
	for g.Solve() == 1 {
		for k := range sigma {
			sigma[k] = false
		}
		for _, w := range wires {
			sigma[w] = g.Value(ci.wires[w])
		}
		// Fault trees are monotone, so we can shrink the model greedily by
		// direct evaluation.
		for _, w := range wires {
			if sigma[w] {
				sigma[w] = false
				if !t.Propagate(sigma) {
					sigma[w] = true
				}
			}
		}
		var cut []int
		for _, w := range wires {
			if sigma[w] {
				cut = append(cut, w)
				g.Add(ci.wires[w].Not())
			}
		}
		g.Add(0)
		res = append(res, cut)
		if limit > 0 && len(res) >= limit {
			break
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if len(res[i]) != len(res[j]) {
			return len(res[i]) < len(res[j])
		}
		for k := range res[i] {
			if res[i][k] != res[j][k] {
				return res[i][k] < res[j][k]
			}
		}
		return false
	})
	return res
}
