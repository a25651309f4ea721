// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/dalzilio/qcl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errs bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errs)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errs.String(), err
}

func writefile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const problem = `{
	"ft": {"type": "or", "subtree1": {"type": "wire", "index": 0}, "subtree2": {"type": "wire", "index": 1}},
	"conf_funcs": [
		{"index": 0, "infix": "1 - 0.5 ^ (x_0 + 1)"},
		{"index": 2, "infix": "1 - 0.5 ^ (x_1 + 1)"}
	],
	"point": [{"index": 0, "value": 0.5}, {"index": 1, "value": 0.5}],
	"resources": 1
}`

// splits parses the output of the splits command.
func splits(t *testing.T, out string) []float64 {
	t.Helper()
	require.True(t, strings.HasSuffix(out, " \n"), "unexpected output %q", out)
	var res []float64
	for k, f := range strings.Fields(out) {
		idx, val, ok := strings.Cut(f, "=")
		require.True(t, ok, f)
		assert.Equal(t, strconv.Itoa(k), idx)
		v, err := strconv.ParseFloat(val, 64)
		require.NoError(t, err)
		res = append(res, v)
	}
	return res
}

func TestPropagate(t *testing.T) {
	file := writefile(t, "ft.yaml", `
ft:
  type: or
  subtree1: {type: wire, index: 0}
  subtree2:
    type: and
    subtree1: {type: wire, index: 1}
    subtree2: {type: wire, index: 2}
point:
  - {index: 0, value: 0.5}
  - {index: 1, value: 0.5}
  - {index: 2, value: 0.4}
`)
	out, _, err := execute(t, "propagate", "-f", file)
	require.NoError(t, err)
	assert.Equal(t, "0.600000000000000\n", out)
}

func TestPropagateErrors(t *testing.T) {
	_, _, err := execute(t, "propagate")
	assert.ErrorContains(t, err, "no input file")

	_, _, err = execute(t, "propagate", "-f", filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	file := writefile(t, "bad.json", `{"ft": {"type": "wire", "index": 3}, "point": []}`)
	_, _, err = execute(t, "propagate", "-f", file)
	assert.ErrorIs(t, err, qcl.ErrInput)
}

func TestSplitsGradientAscent(t *testing.T) {
	file := writefile(t, "problem.json", problem)
	out, _, err := execute(t, "splits", "-f", file, "--algorithm", "ga", "--seed", "1")
	require.NoError(t, err)
	delta := splits(t, out)
	require.Len(t, delta, 2)
	assert.InDelta(t, 0.5, delta[0], 1e-9)
	assert.InDelta(t, 0.5, delta[1], 1e-9)
}

func TestSplitsHillClimbing(t *testing.T) {
	file := writefile(t, "problem.json", problem)
	out, _, err := execute(t, "splits", "-f", file, "--seed", "7", "--hc-iters", "50")
	require.NoError(t, err)
	delta := splits(t, out)
	require.Len(t, delta, 2)
	assert.InDelta(t, 1.0, delta[0]+delta[1], 1e-9)
}

func TestSplitsAnnealing(t *testing.T) {
	file := writefile(t, "problem.json", problem)
	params := writefile(t, "params.yaml", `
type: sa
sa:
  max_step: 500
  p_init: 0.5
  lambda: 0
  function_constant: 0.5
  point:
    - {index: 0, value: 0.5}
    - {index: 1, value: 0.5}
`)
	out1, _, err := execute(t, "splits", "-f", file, "-o", params, "--seed", "42")
	require.NoError(t, err)
	out2, _, err := execute(t, "splits", "-f", file, "-o", params, "--seed", "42")
	require.NoError(t, err)
	assert.Equal(t, out1, out2)
	delta := splits(t, out1)
	require.Len(t, delta, 2)
	assert.LessOrEqual(t, delta[0]+delta[1], 1+1e-9)
}

func TestSplitsMetrics(t *testing.T) {
	file := writefile(t, "problem.json", problem)
	metrics := filepath.Join(t.TempDir(), "qcl.prom")
	_, _, err := execute(t, "splits", "-f", file, "--algorithm", "gahc", "--seed", "3", "--metrics-file", metrics)
	require.NoError(t, err)
	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(data), `qcl_repartition_runs_total{algorithm="gahc"} 1`)
}

func TestSplitsErrors(t *testing.T) {
	file := writefile(t, "problem.json", problem)
	_, _, err := execute(t, "splits", "-f", file, "--algorithm", "newton")
	assert.ErrorIs(t, err, qcl.ErrInput)

	_, _, err = execute(t, "splits", "-f", file, "--algorithm", "sa")
	assert.ErrorContains(t, err, "no simulated annealing arguments")

	params := writefile(t, "params.json", `{"type": "sa", "sa": {"max_step": 0, "p_init": 0.5}}`)
	_, _, err = execute(t, "splits", "-f", file, "-o", params)
	assert.ErrorContains(t, err, "sa.max_step")

	// a confidence function that uses a resource that does not exist
	bad := writefile(t, "bad.json", strings.Replace(problem, "(x_1 + 1)", "(x_5 + 1)", 1))
	_, _, err = execute(t, "splits", "-f", bad, "--algorithm", "ga")
	assert.ErrorIs(t, err, qcl.ErrInput)
}

func TestCutsets(t *testing.T) {
	file := writefile(t, "tree.json", `{"type": "or", "subtree1": {"type": "wire", "index": 0},
		"subtree2": {"type": "and", "subtree1": {"type": "wire", "index": 1}, "subtree2": {"type": "wire", "index": 2}}}`)
	out, _, err := execute(t, "cutsets", "-f", file)
	require.NoError(t, err)
	assert.Equal(t, "0\n1 2\n", out)

	out, _, err = execute(t, "cutsets", "-f", file, "--limit", "1")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)

	// documents with an ft field are accepted too
	problemfile := writefile(t, "problem.json", problem)
	out, _, err = execute(t, "cutsets", "-f", problemfile)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n", out)
}

func TestDot(t *testing.T) {
	file := writefile(t, "problem.json", problem)
	out, _, err := execute(t, "dot", "-f", file)
	require.NoError(t, err)
	assert.Equal(t, "digraph G {\n0 [shape=box, label=\"OR\"];\n1 [shape=circle, label=\"0\"];\n2 [shape=circle, label=\"1\"];\n0 -> 1;\n0 -> 2;\n}\n", out)

	dot := filepath.Join(t.TempDir(), "proof.dot")
	out, _, err = execute(t, "dot", "-f", file, "--proof", "-o", dot)
	require.NoError(t, err)
	assert.Empty(t, out)
	data, err := os.ReadFile(dot)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "digraph G {\n"))
	assert.Contains(t, string(data), "conj_i")
}

func TestGlobalFlags(t *testing.T) {
	file := writefile(t, "problem.json", problem)
	_, _, err := execute(t, "--logic", "godel", "dot", "--proof", "-f", file)
	assert.ErrorContains(t, err, "unknown logic")

	_, _, err = execute(t, "--verbosity", "4", "cutsets", "-f", file)
	assert.ErrorContains(t, err, "verbosity")

	_, _, err = execute(t, "--log-format", "xml", "cutsets", "-f", file)
	assert.ErrorContains(t, err, "log format")

	_, logs, err := execute(t, "--verbosity", "2", "--log-format", "json", "cutsets", "-f", file)
	require.NoError(t, err)
	assert.Contains(t, logs, `"msg":"cut sets"`)
	assert.Contains(t, logs, `"run":"`)

	_, _, err = execute(t, "--maxdepth", "0", "--logic", "lukasiewicz", "dot", "--proof", "-f", file)
	assert.NoError(t, err)
}

func TestMaxdepth(t *testing.T) {
	file := writefile(t, "tree.json", `{"type": "or", "subtree1": {"type": "wire", "index": 0},
		"subtree2": {"type": "and", "subtree1": {"type": "wire", "index": 1},
			"subtree2": {"type": "and", "subtree1": {"type": "wire", "index": 2}, "subtree2": {"type": "wire", "index": 3}}}}`)
	_, _, err := execute(t, "--maxdepth", "1", "cutsets", "-f", file)
	assert.ErrorIs(t, err, qcl.ErrInput)
	assert.ErrorContains(t, err, "deeper than 1")

	out, _, err := execute(t, "--maxdepth", "3", "cutsets", "-f", file)
	require.NoError(t, err)
	assert.Equal(t, "0\n1 2 3\n", out)

	_, _, err = execute(t, "--maxdepth", "0", "cutsets", "-f", file)
	assert.NoError(t, err)

	_, _, err = execute(t, "--maxdepth", "-1", "cutsets", "-f", file)
	assert.ErrorContains(t, err, "maxdepth")
}

func TestFail(t *testing.T) {
	var buf bytes.Buffer
	fail(&buf, errors.New("boom"))
	assert.Equal(t, "qcl: error: boom\n", buf.String())
}
