// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package qcl

import (
	"fmt"
	"math"
)

// ExpKind is the type of the nodes in an Expression.
type ExpKind int

// The different kinds of expression nodes. ExpNeg and ExpLog are unary, ExpVar
// and ExpConst are leaves and the remaining kinds are binary.
const (
	ExpVar   ExpKind = iota // Variable, with an index and a name
	ExpConst                // Real constant
	ExpNeg                  // Opposite
	ExpLog                  // Natural logarithm
	ExpAdd                  // Addition
	ExpSub                  // Subtraction
	ExpMul                  // Multiplication
	ExpDiv                  // Division
	ExpPow                  // Real exponentiation
)

var expnames = [9]string{
	ExpVar:   "var",
	ExpConst: "const",
	ExpNeg:   "opp",
	ExpLog:   "log",
	ExpAdd:   "add",
	ExpSub:   "sub",
	ExpMul:   "mul",
	ExpDiv:   "div",
	ExpPow:   "pow",
}

var expsymbols = [9]string{
	ExpAdd: "+",
	ExpSub: "-",
	ExpMul: "*",
	ExpDiv: "/",
	ExpPow: "^",
}

func (k ExpKind) String() string {
	if k < 0 || int(k) >= len(expnames) {
		return fmt.Sprintf("ExpKind(%d)", int(k))
	}
	return expnames[k]
}

// Expression is a node in a symbolic arithmetic expression over real valued
// variables. Expressions are immutable: constructors never copy their
// arguments, so the same node can be shared between several parents and an
// expression is, in general, a directed acyclic graph. Use Copy to obtain a
// tree with no node in common with the original.
type Expression struct {
	kind  ExpKind
	index int         // for ExpVar
	name  string      // for ExpVar
	value float64     // for ExpConst
	left  *Expression // operand of unary nodes, left operand of binary nodes
	right *Expression
}

// Var returns the variable with the given index. The name is used to
// distinguish variables when testing equality; it is not used for printing.
func Var(index int, name string) *Expression {
	return &Expression{kind: ExpVar, index: index, name: name}
}

// Const returns a constant expression.
func Const(v float64) *Expression {
	return &Expression{kind: ExpConst, value: v}
}

// Neg returns the opposite of e.
func Neg(e *Expression) *Expression {
	return &Expression{kind: ExpNeg, left: e}
}

// Log returns the natural logarithm of e.
func Log(e *Expression) *Expression {
	return &Expression{kind: ExpLog, left: e}
}

// Add returns the expression (a) + (b).
func Add(a, b *Expression) *Expression {
	return &Expression{kind: ExpAdd, left: a, right: b}
}

// Sub returns the expression (a) - (b).
func Sub(a, b *Expression) *Expression {
	return &Expression{kind: ExpSub, left: a, right: b}
}

// Mul returns the expression (a) * (b).
func Mul(a, b *Expression) *Expression {
	return &Expression{kind: ExpMul, left: a, right: b}
}

// Div returns the expression (a) / (b).
func Div(a, b *Expression) *Expression {
	return &Expression{kind: ExpDiv, left: a, right: b}
}

// Pow returns the expression (a) ^ (b).
func Pow(a, b *Expression) *Expression {
	return &Expression{kind: ExpPow, left: a, right: b}
}

func binary(k ExpKind, a, b *Expression) *Expression {
	return &Expression{kind: k, left: a, right: b}
}

func (e *Expression) unary() bool {
	return e.kind == ExpNeg || e.kind == ExpLog
}

// ******************************************************************************************************

// Kind returns the kind of the root node of e.
func (e *Expression) Kind() ExpKind { return e.kind }

// Index returns the index of a variable, and 0 for other kinds of nodes.
func (e *Expression) Index() int { return e.index }

// Name returns the name of a variable.
func (e *Expression) Name() string { return e.name }

// Value returns the value of a constant.
func (e *Expression) Value() float64 { return e.value }

// Left returns the left operand of a binary node or the operand of a unary
// node. It is nil for leaves.
func (e *Expression) Left() *Expression { return e.left }

// Right returns the right operand of a binary node, nil otherwise.
func (e *Expression) Right() *Expression { return e.right }

// ******************************************************************************************************

// Size returns the number of symbols in e, where variables count for 0 and
// constants for 1. It is used to break ties between near-equal values, in
// favour of the largest expression. Shared nodes are counted once per
// occurrence, as if e was a tree.
func (e *Expression) Size() int {
	return e.size(make(map[*Expression]int))
}

func (e *Expression) size(memo map[*Expression]int) int {
	switch e.kind {
	case ExpVar:
		return 0
	case ExpConst:
		return 1
	}
	if s, ok := memo[e]; ok {
		return s
	}
	s := 1 + e.left.size(memo)
	if !e.unary() {
		s += e.right.size(memo)
	}
	memo[e] = s
	return s
}

// Eval returns the value of e when each variable of index i is given the value
// sigma[i]. There is no bounds checking: sigma must be large enough for all the
// variables in e. Division by zero follows IEEE 754 semantics. Shared nodes are
// evaluated once.
func (e *Expression) Eval(sigma []float64) float64 {
	return NewEvaluator(sigma).Eval(e)
}

// apply computes the result of a binary arithmetic operation.
func apply(k ExpKind, x, y float64) float64 {
	switch k {
	case ExpAdd:
		return x + y
	case ExpSub:
		return x - y
	case ExpMul:
		return x * y
	case ExpDiv:
		return x / y
	case ExpPow:
		return math.Pow(x, y)
	}
	panic(Errorf("Eval", ErrInvariant, "unknown binary operator %s", k))
}

// ******************************************************************************************************

func isconst(e *Expression, v float64) bool {
	return e.kind == ExpConst && e.value == v
}

// Simplify returns an expression equal to e obtained after a single bottom-up
// pass that folds constant sub-expressions and applies the usual identity and
// absorption laws (x+0, 0+x, x-0, 0-x, 1*x, x*1, 0*x, x*0, x/1, 0/x, x^0, 0^x,
// 1^x, x^1). The result is not a normal form. Sub-expressions left unchanged
// are shared with e, and so are nodes shared inside e.
func (e *Expression) Simplify() *Expression {
	return e.simplify(make(map[*Expression]*Expression))
}

func (e *Expression) simplify(done map[*Expression]*Expression) *Expression {
	switch e.kind {
	case ExpVar, ExpConst:
		return e
	}
	if s, ok := done[e]; ok {
		return s
	}
	s := e.simplify1(done)
	done[e] = s
	return s
}

func (e *Expression) simplify1(done map[*Expression]*Expression) *Expression {
	switch e.kind {
	case ExpNeg:
		c := e.left.simplify(done)
		if c.kind == ExpConst {
			return Const(-c.value)
		}
		if c == e.left {
			return e
		}
		return Neg(c)
	case ExpLog:
		c := e.left.simplify(done)
		if c.kind == ExpConst {
			return Const(math.Log(c.value))
		}
		if c == e.left {
			return e
		}
		return Log(c)
	}
	l, r := e.left.simplify(done), e.right.simplify(done)
	if l.kind == ExpConst && r.kind == ExpConst {
		return Const(apply(e.kind, l.value, r.value))
	}
	switch e.kind {
	case ExpAdd:
		switch {
		case isconst(l, 0):
			return r
		case isconst(r, 0):
			return l
		}
	case ExpSub:
		switch {
		case isconst(l, 0):
			return Neg(r)
		case isconst(r, 0):
			return l
		}
	case ExpMul:
		switch {
		case isconst(l, 1):
			return r
		case isconst(l, 0):
			return Const(0)
		case isconst(r, 1):
			return l
		case isconst(r, 0):
			return Const(0)
		}
	case ExpDiv:
		switch {
		case isconst(r, 1):
			return l
		case isconst(l, 0):
			return Const(0)
		}
	case ExpPow:
		switch {
		case isconst(l, 0):
			return Const(0)
		case isconst(l, 1):
			return Const(1)
		case isconst(r, 0):
			return Const(1)
		case isconst(r, 1):
			return l
		}
	}
	if l == e.left && r == e.right {
		return e
	}
	return binary(e.kind, l, r)
}

// ******************************************************************************************************

// Derivative returns the partial derivative of e with respect to the variable
// of index i. Two variables are the same for derivation when they have the same
// index. The result is not simplified. For powers we use the general rule
// d(f^g) = ln(f).g'.f^g + f^(g-1).g.f'. The derivative of a node shared in e
// is computed once and shared in the result.
func (e *Expression) Derivative(i int) *Expression {
	return e.derivative(i, make(map[*Expression]*Expression))
}

func (e *Expression) derivative(i int, done map[*Expression]*Expression) *Expression {
	if d, ok := done[e]; ok {
		return d
	}
	d := e.derivative1(i, done)
	done[e] = d
	return d
}

func (e *Expression) derivative1(i int, done map[*Expression]*Expression) *Expression {
	switch e.kind {
	case ExpVar:
		if e.index == i {
			return Const(1)
		}
		return Const(0)
	case ExpConst:
		return Const(0)
	case ExpNeg:
		return Neg(e.left.derivative(i, done))
	case ExpLog:
		return Div(e.left.derivative(i, done), e.left)
	}
	f, g := e.left, e.right
	df, dg := f.derivative(i, done), g.derivative(i, done)
	switch e.kind {
	case ExpAdd:
		return Add(df, dg)
	case ExpSub:
		return Sub(df, dg)
	case ExpMul:
		return Add(Mul(df, g), Mul(dg, f))
	case ExpDiv:
		return Div(Sub(Mul(df, g), Mul(dg, f)), Mul(g, g))
	case ExpPow:
		return Add(
			Mul(Log(f), Mul(dg, Pow(f, g))),
			Mul(Pow(f, Sub(g, Const(1))), Mul(g, df)))
	}
	panic(Errorf("Derivative", ErrInvariant, "unknown expression kind %s", e.kind))
}

// Gradient returns the partial derivatives of e with respect to the variables
// of index 0 to n-1, each one simplified.
func (e *Expression) Gradient(n int) []*Expression {
	res := make([]*Expression, n)
	for j := range res {
		res[j] = e.Derivative(j).Simplify()
	}
	return res
}

// ******************************************************************************************************

// Copy returns a deep copy of e. The result shares no node with e, even when e
// has shared sub-expressions.
func (e *Expression) Copy() *Expression {
	res := &Expression{kind: e.kind, index: e.index, name: e.name, value: e.value}
	if e.left != nil {
		res.left = e.left.Copy()
	}
	if e.right != nil {
		res.right = e.right.Copy()
	}
	return res
}

// Equal reports whether e and f are structurally equal. Variables are equal
// when they have the same index and the same name.
func (e *Expression) Equal(f *Expression) bool {
	if e == f {
		return true
	}
	if e == nil || f == nil || e.kind != f.kind {
		return false
	}
	switch e.kind {
	case ExpVar:
		return e.index == f.index && e.name == f.name
	case ExpConst:
		return e.value == f.value
	case ExpNeg, ExpLog:
		return e.left.Equal(f.left)
	}
	return e.left.Equal(f.left) && e.right.Equal(f.right)
}

// EqualSlices reports whether two slices of expressions are pairwise equal.
func EqualSlices(a, b []*Expression) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !a[k].Equal(b[k]) {
			return false
		}
	}
	return true
}
