// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package qcl

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewOperator(t *testing.T) {
	var operatorTests = []struct {
		arity int
		table []TruthValue
		ok    bool
	}{
		{0, []TruthValue{True}, true},
		{1, []TruthValue{True, Undetermined, False}, true},
		{2, make([]TruthValue, 9), true},
		{3, make([]TruthValue, 27), true},
		{1, []TruthValue{True, False}, false},
		{2, make([]TruthValue, 3), false},
		{1, []TruthValue{True, 3, False}, false},
		{-1, nil, false},
	}
	for _, tt := range operatorTests {
		op, err := NewOperator(tt.arity, tt.table)
		if tt.ok && err != nil {
			t.Errorf("NewOperator(%d, %v): unexpected error %s", tt.arity, tt.table, err)
		}
		if !tt.ok {
			if err == nil {
				t.Errorf("NewOperator(%d, %v): expected an error, actual %s", tt.arity, tt.table, op)
			} else if !errors.Is(err, ErrInput) {
				t.Errorf("NewOperator(%d, %v): expected ErrInput, actual %s", tt.arity, tt.table, err)
			}
		}
	}
}

func TestOperatorApply(t *testing.T) {
	k := KleeneLogic()
	var applyTests = []struct {
		op       *Operator
		args     []TruthValue
		expected TruthValue
	}{
		{k.Neg(), []TruthValue{True}, False},
		{k.Neg(), []TruthValue{Undetermined}, Undetermined},
		{k.Imp(), []TruthValue{False, False}, True},
		{k.Imp(), []TruthValue{Undetermined, False}, Undetermined},
		{k.Imp(), []TruthValue{True, False}, False},
		{k.Conj(), []TruthValue{Undetermined, True}, Undetermined},
		{k.Disj(), []TruthValue{False, False}, False},
	}
	for _, tt := range applyTests {
		if actual := tt.op.Apply(tt.args...); actual != tt.expected {
			t.Errorf("Apply(%v): expected %s, actual %s", tt.args, tt.expected, actual)
		}
	}
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Apply with a wrong number of arguments: expected a panic")
		}
	}()
	k.Imp().Apply(True)
}

func TestInverseImage(t *testing.T) {
	k := KleeneLogic()
	actual := k.Imp().InverseImage(True)
	expected := [][]TruthValue{
		{False, False},
		{False, Undetermined},
		{False, True},
		{Undetermined, True},
		{True, True},
	}
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("InverseImage(imp, T) mismatch (-expected +actual):\n%s", diff)
	}
	if diff := cmp.Diff([][]TruthValue{{True, False}}, k.Imp().InverseImage(False)); diff != "" {
		t.Errorf("InverseImage(imp, F) mismatch (-expected +actual):\n%s", diff)
	}
	l := LukasiewiczLogic()
	if n := len(l.Imp().InverseImage(True)); n != 6 {
		t.Errorf("InverseImage(Łukasiewicz imp, T): expected 6 inputs, actual %d", n)
	}
	if res := k.Conj().InverseImage(Undetermined); len(res) != 3 {
		t.Errorf("InverseImage(conj, U): expected 3 inputs, actual %v", res)
	}
}

func TestOperatorString(t *testing.T) {
	k := KleeneLogic()
	if actual, expected := k.Imp().String(), "  F U T\nF T T T\nU U U T\nT F U T"; actual != expected {
		t.Errorf("String(imp): expected\n%s\nactual\n%s", expected, actual)
	}
	if actual, expected := k.Neg().String(), "F |-> T\nU |-> U\nT |-> F"; actual != expected {
		t.Errorf("String(neg): expected\n%s\nactual\n%s", expected, actual)
	}
}

func TestLogic(t *testing.T) {
	k, l := KleeneLogic(), LukasiewiczLogic()
	if k.Equal(l) {
		t.Errorf("Equal(Kleene, Łukasiewicz): expected false")
	}
	if !k.Equal(KleeneLogic()) {
		t.Errorf("Equal(Kleene, Kleene): expected true")
	}
	if !k.Conj().Equal(l.Conj()) || !k.Disj().Equal(l.Disj()) || !k.Neg().Equal(l.Neg()) {
		t.Errorf("Kleene and Łukasiewicz logics should only differ on implication")
	}
	if _, err := NewLogic(k.Imp(), k.Imp(), k.Disj(), k.Conj()); !errors.Is(err, ErrInput) {
		t.Errorf("NewLogic with a binary negation: expected ErrInput, actual %v", err)
	}
	if _, err := NewLogic(k.Neg(), nil, k.Disj(), k.Conj()); err == nil {
		t.Errorf("NewLogic with a nil operator: expected an error")
	}
	m, err := NewLogic(k.Neg(), l.Imp(), k.Disj(), k.Conj())
	if err != nil || !m.Equal(l) {
		t.Errorf("NewLogic: expected the Łukasiewicz logic, actual %v (%v)", m, err)
	}
}
