// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package document

import (
	"fmt"

	"github.com/dalzilio/qcl"
)

// ExpressionNode is the serialized form of a qcl.Expression.
type ExpressionNode struct {
	Type        string          `yaml:"type"`
	Index       *int            `yaml:"index"`
	WireIndex   *int            `yaml:"wire_index"`
	Name        *string         `yaml:"name"`
	Constant    *float64        `yaml:"constant"`
	Expression1 *ExpressionNode `yaml:"expression1"`
	Expression2 *ExpressionNode `yaml:"expression2"`
}

var expkinds = map[string]qcl.ExpKind{
	"var":   qcl.ExpVar,
	"const": qcl.ExpConst,
	"opp":   qcl.ExpNeg,
	"log":   qcl.ExpLog,
	"add":   qcl.ExpAdd,
	"sub":   qcl.ExpSub,
	"mul":   qcl.ExpMul,
	"div":   qcl.ExpDiv,
	"pow":   qcl.ExpPow,
}

// DecodeExpression parses a serialized expression.
func DecodeExpression(data []byte) (*qcl.Expression, error) {
	var node ExpressionNode
	if err := unmarshal("DecodeExpression", data, &node); err != nil {
		return nil, err
	}
	return node.Expression()
}

// Expression returns the expression described by n.
func (n *ExpressionNode) Expression() (*qcl.Expression, error) {
	return n.expression(0)
}

func experror(format string, a ...interface{}) error {
	return qcl.Errorf("DecodeExpression", qcl.ErrInput, format, a...)
}

func (n *ExpressionNode) expression(depth int) (*qcl.Expression, error) {
	if n == nil {
		return nil, experror("missing expression")
	}
	if MaxDepth > 0 && depth > MaxDepth {
		return nil, experror("expression deeper than %d", MaxDepth)
	}
	if n.Type == "" {
		return nil, experror("missing type in expression")
	}
	kind, ok := expkinds[n.Type]
	if !ok {
		return nil, experror("unknown expression type %q", n.Type)
	}
	switch kind {
	case qcl.ExpVar:
		return n.variable()
	case qcl.ExpConst:
		if n.Constant == nil {
			return nil, experror("missing constant in const expression")
		}
		return qcl.Const(*n.Constant), nil
	}
	if n.Expression1 == nil {
		return nil, experror("missing expression1 in %s expression", n.Type)
	}
	left, err := n.Expression1.expression(depth + 1)
	if err != nil {
		return nil, err
	}
	switch kind {
	case qcl.ExpNeg:
		return qcl.Neg(left), nil
	case qcl.ExpLog:
		return qcl.Log(left), nil
	}
	if n.Expression2 == nil {
		return nil, experror("missing expression2 in %s expression", n.Type)
	}
	right, err := n.Expression2.expression(depth + 1)
	if err != nil {
		return nil, err
	}
	switch kind {
	case qcl.ExpAdd:
		return qcl.Add(left, right), nil
	case qcl.ExpSub:
		return qcl.Sub(left, right), nil
	case qcl.ExpMul:
		return qcl.Mul(left, right), nil
	case qcl.ExpDiv:
		return qcl.Div(left, right), nil
	default:
		return qcl.Pow(left, right), nil
	}
}

// variable handles var nodes. A named variable keeps its index. Otherwise
// the variable stands for the resources of a wire and its index says if it is
// the positive (2w) or negative (2w+1) confidence of wire w.
func (n *ExpressionNode) variable() (*qcl.Expression, error) {
	if n.Index == nil {
		return nil, experror("missing index in variable")
	}
	idx := *n.Index
	if idx < 0 {
		return nil, experror("negative index in variable (%d)", idx)
	}
	if n.Name != nil {
		return qcl.Var(idx, *n.Name), nil
	}
	if n.WireIndex == nil {
		return nil, experror("neither name nor wire_index in variable %d", idx)
	}
	w := *n.WireIndex
	switch {
	case w < 0:
		return nil, experror("negative wire_index in variable (%d)", w)
	case idx == 2*w:
		return qcl.Var(w, fmt.Sprintf("%d+", w)), nil
	case idx == 2*w+1:
		return qcl.Var(w, fmt.Sprintf("%d-", w)), nil
	}
	return nil, experror("incompatible index (%d) and wire_index (%d)", idx, w)
}
