// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package qcl

import (
	"fmt"
	"strconv"
)

// FtKind is the type of the nodes in a FaultTree.
type FtKind int

const (
	FtWire FtKind = iota // Leaf, the failure signal of one component
	FtAnd                // Fails when both inputs fail
	FtOr                 // Fails when one of the inputs fails
	FtPand               // Priority AND, treated like FtAnd
)

var ftnames = [4]string{
	FtWire: "wire",
	FtAnd:  "and",
	FtOr:   "or",
	FtPand: "pand",
}

var ftsymbols = [4]string{
	FtAnd:  "AND",
	FtOr:   "OR",
	FtPand: "PAND",
}

func (k FtKind) String() string {
	if k < 0 || int(k) >= len(ftnames) {
		return fmt.Sprintf("FtKind(%d)", int(k))
	}
	return ftnames[k]
}

// FaultTree is a fault tree whose leaves are wires identified by an index. By
// convention, the confidence that wire i does not propagate a fault is the
// variable of index 2*i, and the confidence that it does is the variable of
// index 2*i+1.
type FaultTree struct {
	kind  FtKind
	index int
	left  *FaultTree
	right *FaultTree
}

// Wire returns the leaf for the wire of index i.
func Wire(i int) *FaultTree {
	return &FaultTree{kind: FtWire, index: i}
}

// And returns an AND gate.
func And(a, b *FaultTree) *FaultTree {
	return &FaultTree{kind: FtAnd, left: a, right: b}
}

// Or returns an OR gate.
func Or(a, b *FaultTree) *FaultTree {
	return &FaultTree{kind: FtOr, left: a, right: b}
}

// Pand returns a priority AND gate.
func Pand(a, b *FaultTree) *FaultTree {
	return &FaultTree{kind: FtPand, left: a, right: b}
}

// Kind returns the kind of the root of t.
func (t *FaultTree) Kind() FtKind { return t.kind }

// Index returns the index of a wire, 0 for gates.
func (t *FaultTree) Index() int { return t.index }

// Left returns the first subtree of a gate, nil for wires.
func (t *FaultTree) Left() *FaultTree { return t.left }

// Right returns the second subtree of a gate, nil for wires.
func (t *FaultTree) Right() *FaultTree { return t.right }

// Propagate returns true if a fault propagates to the root of t when wire i
// carries a fault exactly when sigma[i] is true.
func (t *FaultTree) Propagate(sigma []bool) bool {
	switch t.kind {
	case FtWire:
		return sigma[t.index]
	case FtAnd, FtPand:
		return t.left.Propagate(sigma) && t.right.Propagate(sigma)
	case FtOr:
		return t.left.Propagate(sigma) || t.right.Propagate(sigma)
	}
	panic(Errorf("Propagate", ErrInvariant, "unknown fault tree kind %s", t.kind))
}

// PropagateProb returns the probability that a fault propagates to the root of
// t when wire i fails with probability sigma[i], assuming that wires fail
// independently.
func (t *FaultTree) PropagateProb(sigma []float64) float64 {
	switch t.kind {
	case FtWire:
		return sigma[t.index]
	case FtAnd, FtPand:
		return t.left.PropagateProb(sigma) * t.right.PropagateProb(sigma)
	case FtOr:
		return cup(t.left.PropagateProb(sigma), t.right.PropagateProb(sigma))
	}
	panic(Errorf("PropagateProb", ErrInvariant, "unknown fault tree kind %s", t.kind))
}

// Copy returns a deep copy of t.
func (t *FaultTree) Copy() *FaultTree {
	res := &FaultTree{kind: t.kind, index: t.index}
	if t.kind != FtWire {
		res.left = t.left.Copy()
		res.right = t.right.Copy()
	}
	return res
}

// Equal reports whether t and u are structurally equal.
func (t *FaultTree) Equal(u *FaultTree) bool {
	if t == u {
		return true
	}
	if t == nil || u == nil || t.kind != u.kind {
		return false
	}
	if t.kind == FtWire {
		return t.index == u.index
	}
	return t.left.Equal(u.left) && t.right.Equal(u.right)
}

// Wires returns the sorted list of wire indices occurring in t.
func (t *FaultTree) Wires() []int {
	set := make(map[int]bool)
	var walk func(*FaultTree)
	walk = func(n *FaultTree) {
		if n.kind == FtWire {
			set[n.index] = true
			return
		}
		walk(n.left)
		walk(n.right)
	}
	walk(t)
	return sortedKeys(set)
}

// Depth returns the height of t; a wire has depth 1.
func (t *FaultTree) Depth() int {
	if t.kind == FtWire {
		return 1
	}
	l, r := t.left.Depth(), t.right.Depth()
	if l < r {
		l = r
	}
	return l + 1
}

// ******************************************************************************************************

// WireHypotheses returns the hypotheses used when translating a fault tree with
// n wires: hypothesis i is the propositional variable "i", with positive
// confidence x_{2i} (named "i+") and negative confidence x_{2i+1} (named "i-").
func WireHypotheses(n int) []Hypothesis {
	hyps := make([]Hypothesis, n)
	for i := range hyps {
		s := strconv.Itoa(i)
		hyps[i] = Hypothesis{
			Formula: PVar(i, s),
			Pos:     Var(2*i, s+"+"),
			Neg:     Var(2*i+1, s+"-"),
		}
	}
	return hyps
}

// FromFaultTree returns a proof that the root of t does not propagate a fault,
// in a context with the n hypotheses of WireHypotheses(n). Since we track the
// absence of propagation, an AND (or PAND) gate becomes a disjunction
// introduction and an OR gate becomes a conjunction introduction. Every wire of
// t must be less than n.
func (c *Calculus) FromFaultTree(n int, t *FaultTree) *Proof {
	if t == nil {
		return c.seterror("FromFaultTree", ErrInput, "nil fault tree")
	}
	if c.maxdepth > 0 {
		if d := t.Depth(); d > c.maxdepth {
			return c.seterror("FromFaultTree", ErrInput, "fault tree too deep (%d > %d)", d, c.maxdepth)
		}
	}
	if w := t.Wires(); w[0] < 0 || w[len(w)-1] >= n {
		return c.seterror("FromFaultTree", ErrInput, "wire index out of range [0..%d)", n)
	}
	p := c.fromfaulttree(WireHypotheses(n), t)
	if p != nil {
		c.logger.Debug("fault tree translated",
			"wires", n,
			"depth", p.Depth(),
			"positive", len(p.conclusion.posCfds),
			"negative", len(p.conclusion.negCfds))
	}
	return p
}

func (c *Calculus) fromfaulttree(hyps []Hypothesis, t *FaultTree) *Proof {
	switch t.kind {
	case FtWire:
		return c.Axiom(hyps, t.index)
	case FtAnd, FtPand:
		return c.DisjI(c.fromfaulttree(hyps, t.left), c.fromfaulttree(hyps, t.right))
	case FtOr:
		return c.ConjI(c.fromfaulttree(hyps, t.left), c.fromfaulttree(hyps, t.right))
	}
	return c.seterror("FromFaultTree", ErrInvariant, "unknown fault tree kind %s", t.kind)
}
