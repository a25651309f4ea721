// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package document

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dalzilio/qcl"
	"github.com/dalzilio/qcl/optimize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeExpression(t *testing.T) {
	tests := []struct {
		input    string
		expected *qcl.Expression
	}{
		{`{"type": "const", "constant": 0.5}`, qcl.Const(0.5)},
		{`{"type": "var", "index": 4, "name": "r"}`, qcl.Var(4, "r")},
		{`{"type": "var", "index": 6, "wire_index": 3}`, qcl.Var(3, "3+")},
		{`{"type": "var", "index": 7, "wire_index": 3}`, qcl.Var(3, "3-")},
		{`{"type": "opp", "expression1": {"type": "const", "constant": 2}}`, qcl.Neg(qcl.Const(2))},
		{`{"type": "log", "expression1": {"type": "var", "index": 0, "name": "x"}}`, qcl.Log(qcl.Var(0, "x"))},
		{
			`{"type": "sub", "expression1": {"type": "const", "constant": 1},
			  "expression2": {"type": "pow", "expression1": {"type": "const", "constant": 0.5},
			  "expression2": {"type": "add", "expression1": {"type": "var", "index": 0, "wire_index": 0},
			  "expression2": {"type": "const", "constant": 1}}}}`,
			qcl.Sub(qcl.Const(1), qcl.Pow(qcl.Const(0.5), qcl.Add(qcl.Var(0, "0+"), qcl.Const(1)))),
		},
		{
			"type: div\nexpression1:\n  type: var\n  index: 1\n  name: y\nexpression2:\n  type: const\n  constant: 4\n",
			qcl.Div(qcl.Var(1, "y"), qcl.Const(4)),
		},
		{
			`{"type": "mul", "expression1": {"type": "const", "constant": 2}, "expression2": {"type": "const", "constant": 3}}`,
			qcl.Mul(qcl.Const(2), qcl.Const(3)),
		},
	}
	for _, tt := range tests {
		e, err := DecodeExpression([]byte(tt.input))
		require.NoError(t, err, tt.input)
		assert.True(t, tt.expected.Equal(e), "expected %s, actual %s", tt.expected, e)
	}
}

func TestDecodeExpressionErrors(t *testing.T) {
	tests := []struct {
		input string
		msg   string
	}{
		{`{"constant": 0.5}`, "missing type"},
		{`{"type": "sqrt", "expression1": {"type": "const", "constant": 2}}`, "unknown expression type"},
		{`{"type": "const"}`, "missing constant"},
		{`{"type": "var", "name": "x"}`, "missing index"},
		{`{"type": "var", "index": 2}`, "neither name nor wire_index"},
		{`{"type": "var", "index": 5, "wire_index": 3}`, "incompatible index (5) and wire_index (3)"},
		{`{"type": "opp"}`, "missing expression1"},
		{`{"type": "add", "expression1": {"type": "const", "constant": 2}}`, "missing expression2"},
		{`{"type": "const", "constant": "two"}`, ""},
		{`{"type": "const", `, ""},
	}
	for _, tt := range tests {
		_, err := DecodeExpression([]byte(tt.input))
		require.Error(t, err, tt.input)
		assert.ErrorIs(t, err, qcl.ErrInput, tt.input)
		assert.Contains(t, err.Error(), tt.msg, tt.input)
	}
}

func TestDecodeDepth(t *testing.T) {
	save := MaxDepth
	defer func() { MaxDepth = save }()
	MaxDepth = 3
	nested := `{"type": "const", "constant": 1}`
	for i := 0; i < 5; i++ {
		nested = fmt.Sprintf(`{"type": "opp", "expression1": %s}`, nested)
	}
	_, err := DecodeExpression([]byte(nested))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deeper than 3")

	tree := `{"type": "wire", "index": 0}`
	for i := 0; i < 5; i++ {
		tree = fmt.Sprintf(`{"type": "or", "subtree1": %s, "subtree2": {"type": "wire", "index": 1}}`, tree)
	}
	_, err = DecodeFaultTree([]byte(tree))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deeper than 3")

	_, err = ParseInfix("- - - - - x_0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deeper than 3")
}

func TestDecodeFaultTree(t *testing.T) {
	input := `{
		"type": "or",
		"name": "top",
		"subtree1": {"type": "wire", "index": 0, "name": "pump"},
		"subtree2": {
			"type": "and",
			"subtree1": {"type": "wire", "index": 1},
			"subtree2": {"type": "pand", "subtree1": {"type": "wire", "index": 2}, "subtree2": {"type": "wire", "index": 3}}
		}
	}`
	ft, err := DecodeFaultTree([]byte(input))
	require.NoError(t, err)
	expected := qcl.Or(qcl.Wire(0), qcl.And(qcl.Wire(1), qcl.Pand(qcl.Wire(2), qcl.Wire(3))))
	assert.True(t, expected.Equal(ft), "expected %s, actual %s", expected, ft)

	errs := []struct {
		input string
		msg   string
	}{
		{`{"index": 0}`, "missing type"},
		{`{"type": "xor", "subtree1": {"type": "wire", "index": 0}, "subtree2": {"type": "wire", "index": 1}}`, "unknown fault tree type"},
		{`{"type": "wire"}`, "missing index"},
		{`{"type": "wire", "index": -1}`, "negative wire index"},
		{`{"type": "and", "subtree2": {"type": "wire", "index": 1}}`, "missing subtree1"},
		{`{"type": "and", "subtree1": {"type": "wire", "index": 1}}`, "missing subtree2"},
	}
	for _, tt := range errs {
		_, err := DecodeFaultTree([]byte(tt.input))
		require.Error(t, err, tt.input)
		assert.ErrorIs(t, err, qcl.ErrInput)
		assert.Contains(t, err.Error(), tt.msg, tt.input)
	}
}

func TestParseInfix(t *testing.T) {
	x0, x1 := qcl.Var(0, "x_0"), qcl.Var(1, "x_1")
	tests := []struct {
		input    string
		expected *qcl.Expression
	}{
		{"x_0", x0},
		{"x1", x1},
		{"2", qcl.Const(2)},
		{"0.25", qcl.Const(0.25)},
		{"-x_0", qcl.Neg(x0)},
		{"x_0 + x_1", qcl.Add(x0, x1)},
		{"x_0 - x_1", qcl.Sub(x0, x1)},
		{"x_0 * x_1 / 2", qcl.Div(qcl.Mul(x0, x1), qcl.Const(2))},
		{"x_0 + x_1 * 2", qcl.Add(x0, qcl.Mul(x1, qcl.Const(2)))},
		{"x_0 ** 2", qcl.Pow(x0, qcl.Const(2))},
		{"1 - 0.5 ^ (x_0 + 1)", qcl.Sub(qcl.Const(1), qcl.Pow(qcl.Const(0.5), qcl.Add(x0, qcl.Const(1))))},
		{"log(x_1)", qcl.Log(x1)},
		{"ln(1 + x_0)", qcl.Log(qcl.Add(qcl.Const(1), x0))},
	}
	for _, tt := range tests {
		e, err := ParseInfix(tt.input)
		require.NoError(t, err, tt.input)
		assert.True(t, tt.expected.Equal(e), "%s: expected %s, actual %s", tt.input, tt.expected, e)
	}
}

func TestParseInfixValue(t *testing.T) {
	e, err := ParseInfix("1 - 0.5 ^ (x_0 + 1)")
	require.NoError(t, err)
	assert.InDelta(t, 0.75, e.Eval([]float64{1}), 1e-12)
	assert.InDelta(t, 0.5, e.Eval([]float64{0}), 1e-12)
}

func TestParseInfixErrors(t *testing.T) {
	tests := []string{
		"",
		"x_0 +",
		"y_0",
		"x_a",
		"x_0 % 2",
		"x_0 == 1",
		"sqrt(x_0)",
		"log(x_0, 2)",
		`"text"`,
	}
	for _, input := range tests {
		_, err := ParseInfix(input)
		require.Error(t, err, input)
		assert.ErrorIs(t, err, qcl.ErrInput, input)
	}
}

func TestDecodePropagate(t *testing.T) {
	input := `
ft:
  type: and
  subtree1: {type: wire, index: 0}
  subtree2: {type: wire, index: 1}
point:
  - {index: 1, value: 0.2}
  - {index: 0, value: 0.5}
`
	p, err := DecodePropagate([]byte(input))
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.2}, p.Point)
	assert.InDelta(t, 0.1, p.Tree.PropagateProb(p.Point), 1e-12)

	errs := []struct {
		input string
		msg   string
	}{
		{`{"point": [{"index": 0, "value": 0.5}]}`, `missing field "ft"`},
		{`{"ft": {"type": "wire", "index": 0}}`, `missing field "point"`},
		{`{"ft": {"type": "wire", "index": 1}, "point": [{"index": 0, "value": 0.5}]}`, "wire 1 is not in point"},
		{`{"ft": {"type": "wire", "index": 0}, "point": [{"index": 0, "value": 1.5}]}`, "greater than 1"},
		{`{"ft": {"type": "wire", "index": 0}, "point": [{"index": 0, "value": -0.5}]}`, `"point[0].value"`},
		{`{"ft": {"type": "wire", "index": 0}, "point": [{"index": -1, "value": 0.5}]}`, `"point[0].index"`},
		{`{"ft": {"type": "wire", "index": 0}, "point": [{"index": 0, "value": 0.5}, {"index": 0, "value": 0.1}]}`, "twice"},
	}
	for _, tt := range errs {
		_, err := DecodePropagate([]byte(tt.input))
		require.Error(t, err, tt.input)
		assert.ErrorIs(t, err, qcl.ErrInput)
		assert.Contains(t, err.Error(), tt.msg, tt.input)
	}
}

const splitsInput = `{
	"ft": {"type": "or", "subtree1": {"type": "wire", "index": 0}, "subtree2": {"type": "wire", "index": 1}},
	"conf_funcs": [
		{"index": 0, "expression": {"type": "sub", "expression1": {"type": "const", "constant": 1},
			"expression2": {"type": "pow", "expression1": {"type": "const", "constant": 0.5},
			"expression2": {"type": "add", "expression1": {"type": "var", "index": 0, "wire_index": 0},
			"expression2": {"type": "const", "constant": 1}}}}},
		{"index": 2, "infix": "1 - 0.5 ^ (x_1 + 1)"}
	],
	"point": [{"index": 0, "value": 0}, {"index": 1, "value": 0}],
	"resources": 1
}`

func TestDecodeSplits(t *testing.T) {
	s, err := DecodeSplits([]byte(splitsInput))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, s.Point)
	assert.Equal(t, 1.0, s.Resources)
	require.Len(t, s.ConfFuncs, 3)
	assert.Nil(t, s.ConfFuncs[1])
	assert.InDelta(t, 0.75, s.ConfFuncs[0].Eval([]float64{1, 0}), 1e-12)
	assert.InDelta(t, 0.75, s.ConfFuncs[2].Eval([]float64{0, 1}), 1e-12)
	assert.True(t, qcl.Or(qcl.Wire(0), qcl.Wire(1)).Equal(s.Tree))

	// the decoded document drives the whole computation
	c, err := qcl.New(qcl.KleeneLogic())
	require.NoError(t, err)
	p := c.FromFaultTree(len(s.Point), s.Tree)
	require.NoError(t, c.Err())
	opt, err := optimize.New(optimize.GA)
	require.NoError(t, err)
	delta, err := opt.RepartitionProof(p, s.ConfFuncs, s.Point, s.Resources)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, delta[0], 0.02)
	assert.InDelta(t, 0.5, delta[1], 0.02)
}

func TestDecodeSplitsErrors(t *testing.T) {
	replace := func(old, new string) string {
		res := strings.Replace(splitsInput, old, new, 1)
		require.NotEqual(t, splitsInput, res, old)
		return res
	}
	tests := []struct {
		input string
		msg   string
	}{
		{replace(`"resources": 1`, `"resources": -1`), `"resources"`},
		{replace(`,
	"resources": 1`, ``), `missing field "resources"`},
		{replace(`{"index": 2, "infix": "1 - 0.5 ^ (x_1 + 1)"}`, `{"index": 2}`), `missing field "conf_funcs[1].infix"`},
		{replace(`{"index": 2, "infix"`, `{"index": 0, "infix"`), "defined twice"},
		{replace(`{"index": 2, "infix"`, `{"index": -2, "infix"`), `"conf_funcs[1].index"`},
		{replace(`(x_1 + 1)`, `(z + 1)`), "unknown variable"},
		{replace(`{"index": 1, "value": 0}`, `{"index": 0, "value": 1}`), "twice"},
		{replace(`"index": 1}}`, `"index": 2}}`), "wire 2 is not in point"},
	}
	for _, tt := range tests {
		_, err := DecodeSplits([]byte(tt.input))
		require.Error(t, err, tt.input)
		assert.ErrorIs(t, err, qcl.ErrInput)
		assert.Contains(t, err.Error(), tt.msg, tt.input)
	}
}

func TestConfFuncExclusive(t *testing.T) {
	input := strings.Replace(splitsInput,
		`{"index": 2, "infix": "1 - 0.5 ^ (x_1 + 1)"}`,
		`{"index": 2, "infix": "x_1", "expression": {"type": "const", "constant": 1}}`, 1)
	_, err := DecodeSplits([]byte(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be used together")
}

func TestDecodeParams(t *testing.T) {
	p, err := DecodeParams([]byte(`{"type": "gahc"}`))
	require.NoError(t, err)
	assert.Equal(t, optimize.GAHC, p.Algorithm)
	assert.Nil(t, p.Annealing)
	assert.Empty(t, p.Options())

	input := `
type: sahc
sa:
  max_step: 1000
  p_init: 0.7
  k0: 2
  lambda: 0.5
  function_constant: 0.5
  point:
    - index: 1
      value: 0.25
`
	p, err = DecodeParams([]byte(input))
	require.NoError(t, err)
	assert.Equal(t, optimize.SAHC, p.Algorithm)
	require.NotNil(t, p.Annealing)
	assert.Equal(t, optimize.SAParams{
		MaxStep:          1000,
		PInit:            0.7,
		K0:               2,
		Lambda:           0.5,
		FunctionConstant: 0.5,
		Start:            []float64{0, 0.25},
	}, *p.Annealing)
	opts := p.Options()
	require.Len(t, opts, 1)
	opt, err := optimize.New(p.Algorithm, opts...)
	require.NoError(t, err)
	assert.Equal(t, optimize.SAHC, opt.Algorithm())

	// an explicit lambda of 0 is kept, and an empty point is accepted
	p, err = DecodeParams([]byte(`{"type": "sa", "sa": {"max_step": 10, "p_init": 0.5, "lambda": 0, "function_constant": 0, "point": []}}`))
	require.NoError(t, err)
	require.NotNil(t, p.Annealing)
	assert.Zero(t, p.Annealing.Lambda)
	assert.Zero(t, p.Annealing.FunctionConstant)
	assert.Empty(t, p.Annealing.Start)
}

func TestDecodeParamsErrors(t *testing.T) {
	tests := []struct {
		input string
		msg   string
	}{
		{`{}`, `missing field "type"`},
		{`{"type": "newton"}`, `field "type" must be one of [ga gahc sa sahc]`},
		{`{"type": "sa"}`, `missing field "sa"`},
		{`{"type": "sahc"}`, `missing field "sa"`},
		{`{"type": "sa", "sa": {"max_step": 0, "p_init": 0.5}}`, `"sa.max_step"`},
		{`{"type": "sa", "sa": {"max_step": 10, "p_init": 1}}`, `"sa.p_init"`},
		{`{"type": "sa", "sa": {"max_step": 10, "p_init": 0.5, "k0": -1}}`, `"sa.k0"`},
		{`{"type": "sa", "sa": {"max_step": 10, "p_init": 0.5, "lambda": 0, "function_constant": 0.5, "point": [{"index": 0, "value": -1}]}}`, `"sa.point[0].value"`},
		{`{"type": "sa", "sa": {"max_step": 100, "p_init": 0.5}}`, `missing field "sa.lambda"`},
		{`{"type": "sa", "sa": {"max_step": 100, "p_init": 0.5, "function_constant": 0.5, "point": []}}`, `missing field "sa.lambda"`},
		{`{"type": "sa", "sa": {"max_step": 100, "p_init": 0.5, "lambda": 0.5, "point": []}}`, `missing field "sa.function_constant"`},
		{`{"type": "sahc", "sa": {"max_step": 100, "p_init": 0.5, "lambda": 0.5, "function_constant": 0.5}}`, `missing field "sa.point"`},
		{`{"type": [1, 2]}`, ""},
	}
	for _, tt := range tests {
		_, err := DecodeParams([]byte(tt.input))
		require.Error(t, err, tt.input)
		assert.ErrorIs(t, err, qcl.ErrInput, tt.input)
		assert.Contains(t, err.Error(), tt.msg, tt.input)
	}
}

func TestDense(t *testing.T) {
	p, err := Dense([]Coordinate{{Index: 3, Value: 1}, {Index: 1, Value: 2}})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 0, 1}, p)

	p, err = Dense(nil)
	require.NoError(t, err)
	assert.Empty(t, p)

	_, err = Dense([]Coordinate{{Index: -1}})
	assert.ErrorIs(t, err, qcl.ErrInput)
}

func TestDecodeTree(t *testing.T) {
	expected := qcl.Or(qcl.Wire(0), qcl.Wire(1))
	ft, err := DecodeTree([]byte(splitsInput))
	require.NoError(t, err)
	assert.True(t, expected.Equal(ft), "expected %s, actual %s", expected, ft)

	ft, err = DecodeTree([]byte(`{"type": "or", "subtree1": {"type": "wire", "index": 0}, "subtree2": {"type": "wire", "index": 1}}`))
	require.NoError(t, err)
	assert.True(t, expected.Equal(ft), "expected %s, actual %s", expected, ft)

	_, err = DecodeTree([]byte(`{"point": []}`))
	assert.ErrorIs(t, err, qcl.ErrInput)
}
