// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package qcl

// Hypothesis is a formula together with the confidence that it is True (Pos)
// and the confidence that it is False (Neg).
type Hypothesis struct {
	Formula *Formula
	Pos     *Expression
	Neg     *Expression
}

// Equal reports whether two hypotheses have equal formulas and confidences.
func (h Hypothesis) Equal(g Hypothesis) bool {
	return h.Formula.Equal(g.Formula) && h.Pos.Equal(g.Pos) && h.Neg.Equal(g.Neg)
}

// Copy returns a deep copy of h.
func (h Hypothesis) Copy() Hypothesis {
	return Hypothesis{Formula: h.Formula.Copy(), Pos: h.Pos.Copy(), Neg: h.Neg.Copy()}
}

// Sequent is a list of hypotheses, a conclusion and two lists of candidate
// confidence expressions for the conclusion. Each positive candidate is a lower
// bound for the probability that the conclusion is True; the confidence in the
// conclusion is the maximum of the candidates. Negative candidates play the
// same role for the probability that the conclusion is False. A Sequent is
// immutable.
type Sequent struct {
	hyps    []Hypothesis
	ccl     *Formula
	posCfds []*Expression
	negCfds []*Expression
}

// NewSequent returns the sequent hyps |- ccl : (pos, neg). The slices are
// copied; the formulas and expressions they contain are shared.
func NewSequent(hyps []Hypothesis, ccl *Formula, pos, neg []*Expression) *Sequent {
	s := &Sequent{
		hyps:    make([]Hypothesis, len(hyps)),
		ccl:     ccl,
		posCfds: make([]*Expression, len(pos)),
		negCfds: make([]*Expression, len(neg)),
	}
	copy(s.hyps, hyps)
	copy(s.posCfds, pos)
	copy(s.negCfds, neg)
	return s
}

// HypNum returns the number of hypotheses of s.
func (s *Sequent) HypNum() int {
	return len(s.hyps)
}

// Hyp returns the i-th hypothesis of s.
func (s *Sequent) Hyp(i int) Hypothesis {
	return s.hyps[i]
}

// Hyps returns a copy of the list of hypotheses of s.
func (s *Sequent) Hyps() []Hypothesis {
	res := make([]Hypothesis, len(s.hyps))
	copy(res, s.hyps)
	return res
}

// Ccl returns the conclusion of s.
func (s *Sequent) Ccl() *Formula {
	return s.ccl
}

// PosCfds returns a copy of the positive confidence candidates of s.
func (s *Sequent) PosCfds() []*Expression {
	res := make([]*Expression, len(s.posCfds))
	copy(res, s.posCfds)
	return res
}

// NegCfds returns a copy of the negative confidence candidates of s.
func (s *Sequent) NegCfds() []*Expression {
	res := make([]*Expression, len(s.negCfds))
	copy(res, s.negCfds)
	return res
}

// Copy returns a deep copy of s.
func (s *Sequent) Copy() *Sequent {
	res := &Sequent{
		hyps:    make([]Hypothesis, len(s.hyps)),
		ccl:     s.ccl.Copy(),
		posCfds: make([]*Expression, len(s.posCfds)),
		negCfds: make([]*Expression, len(s.negCfds)),
	}
	for k, h := range s.hyps {
		res.hyps[k] = h.Copy()
	}
	for k, e := range s.posCfds {
		res.posCfds[k] = e.Copy()
	}
	for k, e := range s.negCfds {
		res.negCfds[k] = e.Copy()
	}
	return res
}

// Equal reports whether s and t are structurally equal. Hypotheses and
// candidates are compared positionally.
func (s *Sequent) Equal(t *Sequent) bool {
	if s == t {
		return true
	}
	if s == nil || t == nil {
		return false
	}
	if len(s.hyps) != len(t.hyps) {
		return false
	}
	for k := range s.hyps {
		if !s.hyps[k].Equal(t.hyps[k]) {
			return false
		}
	}
	return s.ccl.Equal(t.ccl) && EqualSlices(s.posCfds, t.posCfds) && EqualSlices(s.negCfds, t.negCfds)
}

// samecontext checks that two sequents have the same hypotheses and returns a
// description of the first difference, or the empty string.
func samecontext(s, t *Sequent) string {
	if len(s.hyps) != len(t.hyps) {
		return "different number of hypotheses in contexts"
	}
	for k := range s.hyps {
		switch {
		case !s.hyps[k].Formula.Equal(t.hyps[k].Formula):
			return "different formulas in contexts"
		case !s.hyps[k].Pos.Equal(t.hyps[k].Pos):
			return "different positive confidences in contexts"
		case !s.hyps[k].Neg.Equal(t.hyps[k].Neg):
			return "different negative confidences in contexts"
		}
	}
	return ""
}
