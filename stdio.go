// Copyright 2021. Silvano DAL ZILIO.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package qcl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// String returns a fully parenthesized representation of e. Variables are
// printed using their index, as in x_3.
func (e *Expression) String() string {
	var sb strings.Builder
	e.write(&sb)
	return sb.String()
}

func (e *Expression) write(sb *strings.Builder) {
	switch e.kind {
	case ExpVar:
		fmt.Fprintf(sb, "x_%d", e.index)
	case ExpConst:
		fmt.Fprintf(sb, "%f", e.value)
	case ExpNeg:
		sb.WriteString("- (")
		e.left.write(sb)
		sb.WriteString(")")
	case ExpLog:
		sb.WriteString("log (")
		e.left.write(sb)
		sb.WriteString(")")
	default:
		sb.WriteString("(")
		e.left.write(sb)
		sb.WriteString(") ")
		sb.WriteString(expsymbols[e.kind])
		sb.WriteString(" (")
		e.right.write(sb)
		sb.WriteString(")")
	}
}

// String returns a fully parenthesized representation of f, using the names of
// the variables.
func (f *Formula) String() string {
	var sb strings.Builder
	f.write(&sb)
	return sb.String()
}

func (f *Formula) write(sb *strings.Builder) {
	if f.kind == FmlVar {
		sb.WriteString(f.name)
		return
	}
	sb.WriteString("(")
	f.left.write(sb)
	sb.WriteString(") ")
	sb.WriteString(fmlsymbols[f.kind])
	sb.WriteString(" (")
	f.right.write(sb)
	sb.WriteString(")")
}

// String returns the truth table of op. Binary operators are printed as a
// matrix, where rows give the value of the first argument; other operators are
// printed with one line per input.
func (op *Operator) String() string {
	switch op.arity {
	case 0:
		return op.table[0].String()
	case 2:
		var sb strings.Builder
		sb.WriteString(" ")
		for i := 0; i < _TRUTHVALUES; i++ {
			fmt.Fprintf(&sb, " %s", TruthValue(i))
		}
		for i := 0; i < _TRUTHVALUES; i++ {
			fmt.Fprintf(&sb, "\n%s", TruthValue(i))
			for j := 0; j < _TRUTHVALUES; j++ {
				fmt.Fprintf(&sb, " %s", op.table[_TRUTHVALUES*i+j])
			}
		}
		return sb.String()
	}
	lines := make([]string, len(op.table))
	for k, v := range op.table {
		in := op.input(k)
		args := make([]string, len(in))
		for i, a := range in {
			args[i] = a.String()
		}
		lines[k] = strings.Join(args, ", ") + " |-> " + v.String()
	}
	return strings.Join(lines, "\n")
}

func (l *Logic) String() string {
	return fmt.Sprintf("neg:\n%s\nimp:\n%s\ndisj:\n%s\nconj:\n%s", l.neg, l.imp, l.disj, l.conj)
}

// String returns a representation of s of the form
//
//	a : ( pos , neg ), ... |- c : ( p1 | p2 , n1 | n2 )
func (s *Sequent) String() string {
	var sb strings.Builder
	for k, h := range s.hyps {
		if k > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s : ( %s , %s )", h.Formula, h.Pos, h.Neg)
	}
	fmt.Fprintf(&sb, " |- %s : ( %s , %s )", s.ccl, joinexp(s.posCfds), joinexp(s.negCfds))
	return sb.String()
}

func joinexp(es []*Expression) string {
	res := make([]string, len(es))
	for k, e := range es {
		res[k] = e.String()
	}
	return strings.Join(res, " | ")
}

// String returns a representation of p. An axiom is printed as its conclusion
// and other proofs as [ p1; ...; pk ] |= conclusion.
func (p *Proof) String() string {
	if p.kind == ProofAxiom {
		return p.conclusion.String()
	}
	children := make([]string, len(p.children))
	for k, c := range p.children {
		children[k] = c.String()
	}
	return "[ " + strings.Join(children, "; ") + " ] |= " + p.conclusion.String()
}

// String returns a representation of t such as OR( 3, AND( 1, 2 ) ).
func (t *FaultTree) String() string {
	if t.kind == FtWire {
		return fmt.Sprintf("%d", t.index)
	}
	return fmt.Sprintf("%s( %s, %s )", ftsymbols[t.kind], t.left, t.right)
}

// ******************************************************************************************************

func openout(filename string) (*os.File, func() error, error) {
	if filename == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	out, err := os.Create(filename)
	if err != nil {
		return nil, nil, err
	}
	return out, out.Close, nil
}

// PrintDot prints a graph-like description of the fault tree t using the DOT
// format.
func (t *FaultTree) PrintDot() error {
	return t.printDot(bufio.NewWriter(os.Stdout))
}

// FPrintDot writes the DOT description of t in file filename. We use the
// standard output if filename is "-".
func (t *FaultTree) FPrintDot(filename string) error {
	out, closer, err := openout(filename)
	if err != nil {
		return err
	}
	defer closer()
	return t.printDot(bufio.NewWriter(out))
}

// WriteDot writes the DOT description of t on w.
func (t *FaultTree) WriteDot(w io.Writer) error {
	return t.printDot(bufio.NewWriter(w))
}

func (t *FaultTree) printDot(w *bufio.Writer) error {
	fmt.Fprintln(w, "digraph G {")
	counter := 0
	var walk func(*FaultTree) int
	walk = func(n *FaultTree) int {
		id := counter
		counter++
		if n.kind == FtWire {
			fmt.Fprintf(w, "%d [shape=circle, label=\"%d\"];\n", id, n.index)
			return id
		}
		fmt.Fprintf(w, "%d [shape=box, label=\"%s\"];\n", id, ftsymbols[n.kind])
		l := walk(n.left)
		r := walk(n.right)
		fmt.Fprintf(w, "%d -> %d;\n", id, l)
		fmt.Fprintf(w, "%d -> %d;\n", id, r)
		return id
	}
	walk(t)
	fmt.Fprintln(w, "}")
	return w.Flush()
}

// FPrintDot writes a DOT description of the proof tree p in file filename,
// where each node is labelled with its rule and its conclusion formula. We use
// the standard output if filename is "-".
func (p *Proof) FPrintDot(filename string) error {
	out, closer, err := openout(filename)
	if err != nil {
		return err
	}
	defer closer()
	return p.printDot(bufio.NewWriter(out))
}

// WriteDot writes the DOT description of p on w.
func (p *Proof) WriteDot(w io.Writer) error {
	return p.printDot(bufio.NewWriter(w))
}

func (p *Proof) printDot(w *bufio.Writer) error {
	fmt.Fprintln(w, "digraph G {")
	counter := 0
	var walk func(*Proof) int
	walk = func(n *Proof) int {
		id := counter
		counter++
		fmt.Fprintf(w, "%d %s\n", id, prooflabel(n))
		for _, c := range n.children {
			fmt.Fprintf(w, "%d -> %d [dir=back];\n", id, walk(c))
		}
		return id
	}
	walk(p)
	fmt.Fprintln(w, "}")
	return w.Flush()
}

func prooflabel(p *Proof) string {
	s := p.conclusion
	return fmt.Sprintf(`[shape=box, label=<
	<FONT POINT-SIZE="10">%s</FONT><BR/>
	<FONT POINT-SIZE="14">%s</FONT><BR/>
	<FONT POINT-SIZE="10">%d | %d</FONT>
>];`, p.kind, dotescape(s.ccl.String()), len(s.posCfds), len(s.negCfds))
}

func dotescape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
