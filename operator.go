// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package qcl

import "fmt"

// TruthValue is a value of our three-valued logic.
type TruthValue int

// Truth values are ordered False < Undetermined < True when indexing truth
// tables.
const (
	False        TruthValue = iota // F
	Undetermined                   // U
	True                           // T
)

var tvnames = [3]string{
	False:        "F",
	Undetermined: "U",
	True:         "T",
}

func (v TruthValue) String() string {
	if v < 0 || int(v) >= len(tvnames) {
		return fmt.Sprintf("TruthValue(%d)", int(v))
	}
	return tvnames[v]
}

// Operator is a logical operator of arity k, given by a truth table with 3^k
// entries. The entry for the input (v1, ..., vk) is at the index obtained by
// reading the tuple as a number in base 3, with vk the least significant digit.
type Operator struct {
	arity int
	table []TruthValue
}

// NewOperator returns the operator of the given arity with truth table table.
// We return an error if the size of the table is not 3^arity or if the table
// contains an invalid truth value.
func NewOperator(arity int, table []TruthValue) (*Operator, error) {
	if arity < 0 {
		return nil, Errorf("NewOperator", ErrInput, "negative arity (%d)", arity)
	}
	size := 1
	for i := 0; i < arity; i++ {
		size *= _TRUTHVALUES
	}
	if len(table) != size {
		return nil, Errorf("NewOperator", ErrInput, "truth table of operator with arity %d has %d entries, expected %d", arity, len(table), size)
	}
	for k, v := range table {
		if v < False || v > True {
			return nil, Errorf("NewOperator", ErrInput, "invalid truth value (%d) at index %d", int(v), k)
		}
	}
	op := &Operator{arity: arity, table: make([]TruthValue, size)}
	copy(op.table, table)
	return op, nil
}

// Arity returns the arity of op.
func (op *Operator) Arity() int {
	return op.arity
}

// Table returns a copy of the truth table of op.
func (op *Operator) Table() []TruthValue {
	res := make([]TruthValue, len(op.table))
	copy(res, op.table)
	return res
}

func (op *Operator) index(args []TruthValue) int {
	k := 0
	for _, v := range args {
		k = k*_TRUTHVALUES + int(v)
	}
	return k
}

func (op *Operator) input(k int) []TruthValue {
	res := make([]TruthValue, op.arity)
	for i := op.arity - 1; i >= 0; i-- {
		res[i] = TruthValue(k % _TRUTHVALUES)
		k /= _TRUTHVALUES
	}
	return res
}

// Apply returns the entry of the truth table for the given input. It panics if
// the number of arguments is not the arity of op.
func (op *Operator) Apply(args ...TruthValue) TruthValue {
	if len(args) != op.arity {
		panic(Errorf("Apply", ErrInvariant, "operator of arity %d applied to %d arguments", op.arity, len(args)))
	}
	return op.table[op.index(args)]
}

// InverseImage returns, in the order of the truth table, all the inputs that
// op maps to target.
func (op *Operator) InverseImage(target TruthValue) [][]TruthValue {
	var res [][]TruthValue
	for k, v := range op.table {
		if v == target {
			res = append(res, op.input(k))
		}
	}
	return res
}

// Copy returns a copy of op.
func (op *Operator) Copy() *Operator {
	return &Operator{arity: op.arity, table: op.Table()}
}

// Equal reports whether op and o have the same arity and the same truth table.
func (op *Operator) Equal(o *Operator) bool {
	if op == o {
		return true
	}
	if op == nil || o == nil || op.arity != o.arity {
		return false
	}
	for k := range op.table {
		if op.table[k] != o.table[k] {
			return false
		}
	}
	return true
}
