// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package qcl

import "fmt"

// FmlKind is the type of the nodes in a Formula.
type FmlKind int

// The different kinds of formulas.
const (
	FmlVar  FmlKind = iota // Propositional variable
	FmlConj                // Conjunction
	FmlDisj                // Disjunction
	FmlImpl                // Implication
)

var fmlnames = [4]string{
	FmlVar:  "var",
	FmlConj: "conj",
	FmlDisj: "disj",
	FmlImpl: "impl",
}

var fmlsymbols = [4]string{
	FmlConj: `/\`,
	FmlDisj: `\/`,
	FmlImpl: "=>",
}

func (k FmlKind) String() string {
	if k < 0 || int(k) >= len(fmlnames) {
		return fmt.Sprintf("FmlKind(%d)", int(k))
	}
	return fmlnames[k]
}

// Formula is a propositional formula. Like expressions, formulas are immutable
// and sub-formulas may be shared.
type Formula struct {
	kind  FmlKind
	index int
	name  string
	left  *Formula
	right *Formula
}

// PVar returns the propositional variable with the given index and name.
func PVar(index int, name string) *Formula {
	return &Formula{kind: FmlVar, index: index, name: name}
}

// Conj returns the formula (a) /\ (b).
func Conj(a, b *Formula) *Formula {
	return &Formula{kind: FmlConj, left: a, right: b}
}

// Disj returns the formula (a) \/ (b).
func Disj(a, b *Formula) *Formula {
	return &Formula{kind: FmlDisj, left: a, right: b}
}

// Impl returns the formula (a) => (b).
func Impl(a, b *Formula) *Formula {
	return &Formula{kind: FmlImpl, left: a, right: b}
}

func (f *Formula) Kind() FmlKind { return f.kind }
func (f *Formula) Index() int { return f.index }
func (f *Formula) Name() string { return f.name }
func (f *Formula) Left() *Formula { return f.left }
func (f *Formula) Right() *Formula { return f.right }

// Eval returns the boolean value of f when variable i has value sigma[i].
func (f *Formula) Eval(sigma []bool) bool {
	switch f.kind {
	case FmlVar:
		return sigma[f.index]
	case FmlConj:
		return f.left.Eval(sigma) && f.right.Eval(sigma)
	case FmlDisj:
		return f.left.Eval(sigma) || f.right.Eval(sigma)
	case FmlImpl:
		return !f.left.Eval(sigma) || f.right.Eval(sigma)
	}
	panic(Errorf("Eval", ErrInvariant, "unknown formula kind %s", f.kind))
}

// Eval3 returns the truth value of f in the many-valued logic l, when variable
// i has value sigma[i].
func (f *Formula) Eval3(l *Logic, sigma []TruthValue) TruthValue {
	switch f.kind {
	case FmlVar:
		return sigma[f.index]
	case FmlConj:
		return l.conj.Apply(f.left.Eval3(l, sigma), f.right.Eval3(l, sigma))
	case FmlDisj:
		return l.disj.Apply(f.left.Eval3(l, sigma), f.right.Eval3(l, sigma))
	case FmlImpl:
		return l.imp.Apply(f.left.Eval3(l, sigma), f.right.Eval3(l, sigma))
	}
	panic(Errorf("Eval3", ErrInvariant, "unknown formula kind %s", f.kind))
}

// Copy returns a deep copy of f.
func (f *Formula) Copy() *Formula {
	res := &Formula{kind: f.kind, index: f.index, name: f.name}
	if f.kind != FmlVar {
		res.left = f.left.Copy()
		res.right = f.right.Copy()
	}
	return res
}

// Equal reports whether f and g are structurally equal.
func (f *Formula) Equal(g *Formula) bool {
	if f == g {
		return true
	}
	if f == nil || g == nil || f.kind != g.kind {
		return false
	}
	if f.kind == FmlVar {
		return f.index == g.index && f.name == g.name
	}
	return f.left.Equal(g.left) && f.right.Equal(g.right)
}
