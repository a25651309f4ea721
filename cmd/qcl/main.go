// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Command qcl computes the confidence that a fault does not propagate through
// a fault tree and how to split a budget of resources between its wires.
//
// Usage:
//
//	qcl propagate -f problem.json
//	qcl splits -f problem.json -o params.json
//	qcl cutsets -f tree.json
//	qcl dot -f tree.json [--proof] [-o out.dot]
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fail(os.Stderr, err)
		os.Exit(1)
	}
}

// fail prints err on w, in color when w is a terminal.
func fail(w io.Writer, err error) {
	c := color.New(color.FgRed, color.Bold)
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	c.Fprint(w, "qcl: error: ")
	fmt.Fprintln(w, err)
}
