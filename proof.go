// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package qcl

import "fmt"

// ProofKind is the inference rule used at the root of a Proof.
type ProofKind int

const (
	ProofAxiom ProofKind = iota // Leaf; the conclusion is one of the hypotheses
	ProofConjI                  // Conjunction introduction
	ProofDisjI                  // Disjunction introduction
	ProofImplI                  // Implication introduction
	ProofAcc                    // Accumulation of proofs of the same sequent
)

var proofnames = [5]string{
	ProofAxiom: "axiom",
	ProofConjI: "conj_i",
	ProofDisjI: "disj_i",
	ProofImplI: "impl_i",
	ProofAcc:   "acc",
}

func (k ProofKind) String() string {
	if k < 0 || int(k) >= len(proofnames) {
		return fmt.Sprintf("ProofKind(%d)", int(k))
	}
	return proofnames[k]
}

// Proof is a derivation tree. Leaves are axioms and every other node is
// obtained from its children by one of the rules of a Calculus. Proofs are
// immutable.
type Proof struct {
	kind       ProofKind
	hyp        int // hypothesis used by Axiom and ImplI
	children   []*Proof
	conclusion *Sequent
}

// Kind returns the rule used at the root of p.
func (p *Proof) Kind() ProofKind { return p.kind }

// Conclusion returns the sequent proved by p.
func (p *Proof) Conclusion() *Sequent { return p.conclusion }

// Subproofs returns the number of children of p; it is 0 for axioms.
func (p *Proof) Subproofs() int { return len(p.children) }

// Child returns the i-th child of p.
func (p *Proof) Child(i int) *Proof { return p.children[i] }

// Hypothesis returns the index of the hypothesis used by an Axiom or
// eliminated by an ImplI. It returns -1 for other rules.
func (p *Proof) Hypothesis() int {
	if p.kind == ProofAxiom || p.kind == ProofImplI {
		return p.hyp
	}
	return -1
}

// IsLeaf reports whether p is an axiom.
func (p *Proof) IsLeaf() bool { return p.kind == ProofAxiom }

// Equal reports whether p and q use the same rules, in the same order, with
// equal conclusions at every node.
func (p *Proof) Equal(q *Proof) bool {
	if p == q {
		return true
	}
	if p == nil || q == nil || p.kind != q.kind || len(p.children) != len(q.children) {
		return false
	}
	if !p.conclusion.Equal(q.conclusion) {
		return false
	}
	for k := range p.children {
		if !p.children[k].Equal(q.children[k]) {
			return false
		}
	}
	return true
}

// Copy returns a deep copy of p.
func (p *Proof) Copy() *Proof {
	res := &Proof{
		kind:       p.kind,
		hyp:        p.hyp,
		children:   make([]*Proof, len(p.children)),
		conclusion: p.conclusion.Copy(),
	}
	for k, c := range p.children {
		res.children[k] = c.Copy()
	}
	return res
}

// Depth returns the height of p; axioms have depth 1.
func (p *Proof) Depth() int {
	d := 0
	for _, c := range p.children {
		if cd := c.Depth(); cd > d {
			d = cd
		}
	}
	return d + 1
}

// ******************************************************************************************************

// Calculus builds proofs for a fixed three-valued Logic. A Calculus records the
// first error raised by one of its rules (see Errored and Error). A rule that
// fails returns nil, and every rule returns nil when one of its arguments is
// nil, so a derivation can be written as a single expression and checked once
// at the end.
type Calculus struct {
	logic *Logic
	error *Error
	configs
}

// New returns a Calculus for the logic l. Options are used to set the
// parameters of the calculus (see Maxdepth and Logger).
func New(l *Logic, options ...func(*configs)) (*Calculus, error) {
	if l == nil {
		return nil, Errorf("New", ErrInput, "nil logic")
	}
	c := &Calculus{logic: l}
	c.configs = *makeconfigs()
	for _, f := range options {
		f(&c.configs)
	}
	return c, nil
}

// Logic returns the logic of c.
func (c *Calculus) Logic() *Logic {
	return c.logic
}

// checkptr returns false if one of the proofs is nil. It records an error if
// none has been recorded yet, since a nil proof can only come from a failed
// rule or from a programming error.
func (c *Calculus) checkptr(op string, ps ...*Proof) bool {
	for _, p := range ps {
		if p == nil {
			if c.error == nil {
				c.seterror(op, ErrInput, "nil proof")
			}
			return false
		}
	}
	return true
}

// Axiom returns the leaf hyps |- hyps[i] : (hyps[i].Pos, hyps[i].Neg).
func (c *Calculus) Axiom(hyps []Hypothesis, i int) *Proof {
	if i < 0 || i >= len(hyps) {
		return c.seterror("Axiom", ErrPrecondition, "not enough hypotheses (%d) for index %d", len(hyps), i)
	}
	h := hyps[i]
	return &Proof{
		kind:       ProofAxiom,
		hyp:        i,
		conclusion: NewSequent(hyps, h.Formula, []*Expression{h.Pos}, []*Expression{h.Neg}),
	}
}

// ConjI returns the proof of (l) /\ (r) from proofs l and r with the same
// hypotheses. Positive candidates are the pairwise products of the positive
// candidates of l and r; negative candidates are their pairwise unions.
func (c *Calculus) ConjI(l, r *Proof) *Proof {
	if !c.checkptr("ConjI", l, r) {
		return nil
	}
	sl, sr := l.conclusion, r.conclusion
	if msg := samecontext(sl, sr); msg != "" {
		return c.seterror("ConjI", ErrPrecondition, "%s", msg)
	}
	return &Proof{
		kind:     ProofConjI,
		children: []*Proof{l, r},
		conclusion: &Sequent{
			hyps:    sl.hyps,
			ccl:     Conj(sl.ccl, sr.ccl),
			posCfds: MulArray(sl.posCfds, sr.posCfds),
			negCfds: CupArray(sl.negCfds, sr.negCfds),
		},
	}
}

// DisjI returns the proof of (l) \/ (r). It is the dual of ConjI: positive
// candidates are combined with Cup and negative candidates are multiplied.
func (c *Calculus) DisjI(l, r *Proof) *Proof {
	if !c.checkptr("DisjI", l, r) {
		return nil
	}
	sl, sr := l.conclusion, r.conclusion
	if msg := samecontext(sl, sr); msg != "" {
		return c.seterror("DisjI", ErrPrecondition, "%s", msg)
	}
	return &Proof{
		kind:     ProofDisjI,
		children: []*Proof{l, r},
		conclusion: &Sequent{
			hyps:    sl.hyps,
			ccl:     Disj(sl.ccl, sr.ccl),
			posCfds: CupArray(sl.posCfds, sr.posCfds),
			negCfds: MulArray(sl.negCfds, sr.negCfds),
		},
	}
}

// ImplI removes hypothesis i from the context of p and returns a proof of
// (hyp_i) => (ccl). For every pair (j, k) of a positive candidate j and a
// negative candidate k of the conclusion of p, the new positive candidate at
// index j*len(neg)+k is the probability that the implication is True, that is
// the sum over the inverse image of True by the implication of the logic of
// the products of the probabilities of the hypothesis and of the conclusion
// taking the given values. Negative candidates use the inverse image of False.
func (c *Calculus) ImplI(p *Proof, i int) *Proof {
	if !c.checkptr("ImplI", p) {
		return nil
	}
	s := p.conclusion
	if i < 0 || i >= len(s.hyps) {
		return c.seterror("ImplI", ErrPrecondition, "not enough hypotheses (%d) for index %d", len(s.hyps), i)
	}
	h := s.hyps[i]
	hyps := make([]Hypothesis, 0, len(s.hyps)-1)
	hyps = append(hyps, s.hyps[:i]...)
	hyps = append(hyps, s.hyps[i+1:]...)
	return &Proof{
		kind:     ProofImplI,
		hyp:      i,
		children: []*Proof{p},
		conclusion: &Sequent{
			hyps:    hyps,
			ccl:     Impl(h.Formula, s.ccl),
			posCfds: c.implcfds(h, s, True),
			negCfds: c.implcfds(h, s, False),
		},
	}
}

// implcfds computes the candidates of an implication introduction for the
// given target truth value.
func (c *Calculus) implcfds(h Hypothesis, s *Sequent, target TruthValue) []*Expression {
	image := c.logic.imp.InverseImage(target)
	res := make([]*Expression, 0, len(s.posCfds)*len(s.negCfds))
	for _, pos := range s.posCfds {
		for _, neg := range s.negCfds {
			e := Const(0)
			for _, in := range image {
				e = Add(e, Mul(term(in[0], h.Pos, h.Neg), term(in[1], pos, neg)))
			}
			res = append(res, e)
		}
	}
	return res
}

// term returns the probability that a formula with confidences (pos, neg) has
// the truth value v.
func term(v TruthValue, pos, neg *Expression) *Expression {
	switch v {
	case True:
		return pos
	case False:
		return neg
	}
	return Sub(Const(1), Add(pos, neg))
}

// Acc returns a proof of the sequent proved by all the proofs in ps, with the
// concatenation of their candidates. The proofs must have the same hypotheses
// and the same conclusion. We need at least two proofs.
func (c *Calculus) Acc(ps ...*Proof) *Proof {
	if len(ps) < 2 {
		return c.seterror("Acc", ErrPrecondition, "accumulation needs at least two proofs, got %d", len(ps))
	}
	if !c.checkptr("Acc", ps...) {
		return nil
	}
	s := ps[0].conclusion
	var pos, neg []*Expression
	for _, p := range ps {
		if msg := samecontext(p.conclusion, s); msg != "" {
			return c.seterror("Acc", ErrPrecondition, "%s", msg)
		}
		if !p.conclusion.ccl.Equal(s.ccl) {
			return c.seterror("Acc", ErrPrecondition, "different conclusion formulas")
		}
		pos = append(pos, p.conclusion.posCfds...)
		neg = append(neg, p.conclusion.negCfds...)
	}
	children := make([]*Proof, len(ps))
	copy(children, ps)
	return &Proof{
		kind:     ProofAcc,
		children: children,
		conclusion: &Sequent{
			hyps:    s.hyps,
			ccl:     s.ccl,
			posCfds: pos,
			negCfds: neg,
		},
	}
}
