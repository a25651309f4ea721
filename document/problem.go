// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package document

import (
	"github.com/dalzilio/qcl"
)

// Propagate is the input of the propagate command: a fault tree and the
// probability that each wire fails.
type Propagate struct {
	Tree  *qcl.FaultTree
	Point []float64
}

type propagateNode struct {
	FT    *FaultTreeNode `yaml:"ft" validate:"-"`
	Point []Coordinate   `yaml:"point" validate:"required,dive"`
}

// DecodePropagate parses a propagate document, with fields ft and point. The
// point gives the failure probability of every wire of the tree, as a list of
// index/value pairs.
func DecodePropagate(data []byte) (*Propagate, error) {
	const op = "DecodePropagate"
	var node propagateNode
	if err := unmarshal(op, data, &node); err != nil {
		return nil, err
	}
	if err := check(op, &node); err != nil {
		return nil, err
	}
	if node.FT == nil {
		return nil, qcl.Errorf(op, qcl.ErrInput, "missing field %q", "ft")
	}
	t, err := node.FT.FaultTree()
	if err != nil {
		return nil, err
	}
	point, err := Dense(node.Point)
	if err != nil {
		return nil, err
	}
	for i, p := range point {
		if p > 1 {
			return nil, qcl.Errorf(op, qcl.ErrInput, "probability of wire %d is greater than 1 (%g)", i, p)
		}
	}
	if err := checkwires(op, t, len(point)); err != nil {
		return nil, err
	}
	return &Propagate{Tree: t, Point: point}, nil
}

// checkwires reports an error if a wire of t has no value in a point of size
// n.
func checkwires(op string, t *qcl.FaultTree, n int) error {
	for _, w := range t.Wires() {
		if w >= n {
			return qcl.Errorf(op, qcl.ErrInput, "wire %d is not in point (size %d)", w, n)
		}
	}
	return nil
}

// ******************************************************************************************************

// Splits is the input of the splits command.
type Splits struct {
	Tree *qcl.FaultTree
	// ConfFuncs gives, for every confidence variable of the proof obtained from
	// Tree, its value as a function of the resources allocated to the wires.
	// Variable 2i is the confidence that wire i works and 2i+1 the confidence
	// that it fails. Entries can be nil.
	ConfFuncs []*qcl.Expression
	Point     []float64 // resources already allocated to each wire
	Resources float64   // budget to split
}

// ConfFunc is one element of the conf_funcs array of a splits document. The
// function is given either as a serialized expression or in infix notation.
type ConfFunc struct {
	Index      int             `yaml:"index" validate:"gte=0"`
	Expression *ExpressionNode `yaml:"expression" validate:"-"`
	Infix      string          `yaml:"infix" validate:"required_without=Expression,excluded_with=Expression"`
}

// Function returns the confidence function described by c.
func (c *ConfFunc) Function() (*qcl.Expression, error) {
	if c.Expression != nil {
		return c.Expression.Expression()
	}
	return ParseInfix(c.Infix)
}

type splitsNode struct {
	FT        *FaultTreeNode `yaml:"ft" validate:"-"`
	ConfFuncs []ConfFunc     `yaml:"conf_funcs" validate:"required,dive"`
	Point     []Coordinate   `yaml:"point" validate:"required,dive"`
	Resources *float64       `yaml:"resources" validate:"required,gte=0"`
}

// DecodeSplits parses a splits document, with fields ft, conf_funcs, point and
// resources.
func DecodeSplits(data []byte) (*Splits, error) {
	const op = "DecodeSplits"
	var node splitsNode
	if err := unmarshal(op, data, &node); err != nil {
		return nil, err
	}
	if err := check(op, &node); err != nil {
		return nil, err
	}
	if node.FT == nil {
		return nil, qcl.Errorf(op, qcl.ErrInput, "missing field %q", "ft")
	}
	t, err := node.FT.FaultTree()
	if err != nil {
		return nil, err
	}
	point, err := Dense(node.Point)
	if err != nil {
		return nil, err
	}
	if err := checkwires(op, t, len(point)); err != nil {
		return nil, err
	}
	n := 0
	for _, c := range node.ConfFuncs {
		if c.Index >= n {
			n = c.Index + 1
		}
	}
	funcs := make([]*qcl.Expression, n)
	for _, c := range node.ConfFuncs {
		if funcs[c.Index] != nil {
			return nil, qcl.Errorf(op, qcl.ErrInput, "confidence function %d is defined twice", c.Index)
		}
		if funcs[c.Index], err = c.Function(); err != nil {
			return nil, err
		}
	}
	return &Splits{
		Tree:      t,
		ConfFuncs: funcs,
		Point:     point,
		Resources: *node.Resources,
	}, nil
}
