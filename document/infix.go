// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package document

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dalzilio/qcl"
	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
)

// ParseInfix returns the expression written in infix notation in input.
// Variables are written x_k, or xk, and stand for the variable of index k.
// Accepted operators are +, -, *, / and the power operator, written ^ or **,
// together with the unary minus and the function log (or ln) for the natural
// logarithm.
func ParseInfix(input string) (*qcl.Expression, error) {
	tree, err := parser.Parse(input)
	if err != nil {
		return nil, qcl.Errorf("ParseInfix", qcl.ErrInput, "%s", err)
	}
	return fromast(tree.Node, 0)
}

func infixerror(format string, a ...interface{}) error {
	return qcl.Errorf("ParseInfix", qcl.ErrInput, format, a...)
}

var infixops = map[string]func(a, b *qcl.Expression) *qcl.Expression{
	"+":  qcl.Add,
	"-":  qcl.Sub,
	"*":  qcl.Mul,
	"/":  qcl.Div,
	"^":  qcl.Pow,
	"**": qcl.Pow,
}

func fromast(node ast.Node, depth int) (*qcl.Expression, error) {
	if MaxDepth > 0 && depth > MaxDepth {
		return nil, infixerror("expression deeper than %d", MaxDepth)
	}
	switch n := node.(type) {
	case *ast.IntegerNode:
		return qcl.Const(float64(n.Value)), nil
	case *ast.FloatNode:
		return qcl.Const(n.Value), nil
	case *ast.IdentifierNode:
		return variable(n.Value)
	case *ast.UnaryNode:
		e, err := fromast(n.Node, depth+1)
		if err != nil {
			return nil, err
		}
		switch n.Operator {
		case "-":
			return qcl.Neg(e), nil
		case "+":
			return e, nil
		}
		return nil, infixerror("unsupported unary operator %q", n.Operator)
	case *ast.BinaryNode:
		op, ok := infixops[n.Operator]
		if !ok {
			return nil, infixerror("unsupported operator %q", n.Operator)
		}
		left, err := fromast(n.Left, depth+1)
		if err != nil {
			return nil, err
		}
		right, err := fromast(n.Right, depth+1)
		if err != nil {
			return nil, err
		}
		return op(left, right), nil
	case *ast.CallNode:
		callee, ok := n.Callee.(*ast.IdentifierNode)
		if !ok {
			return nil, infixerror("unsupported call %s", n.String())
		}
		return call(callee.Value, n.Arguments, depth)
	case *ast.BuiltinNode:
		return call(n.Name, n.Arguments, depth)
	case nil:
		return nil, infixerror("empty expression")
	}
	return nil, infixerror("unsupported expression %s", node.String())
}

func call(name string, args []ast.Node, depth int) (*qcl.Expression, error) {
	if name != "log" && name != "ln" {
		return nil, infixerror("unknown function %s", name)
	}
	if len(args) != 1 {
		return nil, infixerror("function %s expects one argument, not %d", name, len(args))
	}
	e, err := fromast(args[0], depth+1)
	if err != nil {
		return nil, err
	}
	return qcl.Log(e), nil
}

func variable(name string) (*qcl.Expression, error) {
	s, ok := strings.CutPrefix(name, "x")
	if ok {
		s = strings.TrimPrefix(s, "_")
	}
	k, err := strconv.Atoi(s)
	if !ok || err != nil || k < 0 || s == "" || s[0] == '+' {
		return nil, infixerror("unknown variable %s, expected x_k", name)
	}
	return qcl.Var(k, fmt.Sprintf("x_%d", k)), nil
}
