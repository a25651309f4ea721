// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package qcl

// Logic is a three-valued logic given by the truth tables of its connectives.
// A Logic is fixed for the whole derivation of a proof.
type Logic struct {
	neg  *Operator // arity 1
	imp  *Operator // arity 2
	disj *Operator // arity 2
	conj *Operator // arity 2
}

// NewLogic returns the logic with the given connectives. We return an error if
// neg is not unary or if one of the other operators is not binary.
func NewLogic(neg, imp, disj, conj *Operator) (*Logic, error) {
	ops := []struct {
		name  string
		op    *Operator
		arity int
	}{
		{"negation", neg, 1},
		{"implication", imp, 2},
		{"disjunction", disj, 2},
		{"conjunction", conj, 2},
	}
	for _, o := range ops {
		if o.op == nil {
			return nil, Errorf("NewLogic", ErrInput, "missing %s", o.name)
		}
		if o.op.arity != o.arity {
			return nil, Errorf("NewLogic", ErrInput, "%s has arity %d, expected %d", o.name, o.op.arity, o.arity)
		}
	}
	return &Logic{neg: neg, imp: imp, disj: disj, conj: conj}, nil
}

// Neg returns the negation of l.
func (l *Logic) Neg() *Operator { return l.neg }

// Imp returns the implication of l.
func (l *Logic) Imp() *Operator { return l.imp }

// Disj returns the disjunction of l.
func (l *Logic) Disj() *Operator { return l.disj }

// Conj returns the conjunction of l.
func (l *Logic) Conj() *Operator { return l.conj }

// Equal reports whether two logics have the same connectives.
func (l *Logic) Equal(m *Logic) bool {
	return l.neg.Equal(m.neg) && l.imp.Equal(m.imp) && l.disj.Equal(m.disj) && l.conj.Equal(m.conj)
}

// mustOperator is only used with tables that we know are well-formed.
func mustOperator(arity int, table ...TruthValue) *Operator {
	op, err := NewOperator(arity, table)
	if err != nil {
		panic(err)
	}
	return op
}

// KleeneLogic returns the strong Kleene logic. This is the logic used by
// default when translating fault trees.
func KleeneLogic() *Logic {
	return &Logic{
		neg:  mustOperator(1, True, Undetermined, False),
		imp:  mustOperator(2, True, True, True, Undetermined, Undetermined, True, False, Undetermined, True),
		disj: mustOperator(2, False, Undetermined, True, Undetermined, Undetermined, True, True, True, True),
		conj: mustOperator(2, False, False, False, False, Undetermined, Undetermined, False, Undetermined, True),
	}
}

// LukasiewiczLogic returns the three-valued logic of Łukasiewicz. It differs
// from KleeneLogic only on the implication, where U => U is True.
func LukasiewiczLogic() *Logic {
	l := KleeneLogic()
	l.imp = mustOperator(2, True, True, True, Undetermined, True, True, False, Undetermined, True)
	return l
}
