// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dalzilio/qcl"
	"github.com/dalzilio/qcl/document"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// globals holds the flags shared by all the commands.
type globals struct {
	verbosity int
	logFormat string
	logic     string
	maxdepth  int
	logger    *slog.Logger
}

var levels = []slog.Level{slog.LevelError, slog.LevelWarn, slog.LevelInfo, slog.LevelDebug}

func newRootCmd() *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:           "qcl",
		Short:         "Confidence calculus for fault trees",
		Long:          "qcl computes the confidence that a fault does not propagate through a fault tree,\nand how to split a budget of resources between the wires of the tree to maximize it.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.setup(cmd.ErrOrStderr())
		},
	}
	flags := root.PersistentFlags()
	flags.IntVarP(&g.verbosity, "verbosity", "v", 0, "log level, from 0 (errors only) to 3 (debug)")
	flags.StringVar(&g.logFormat, "log-format", "text", "format of log messages (text or json)")
	flags.StringVar(&g.logic, "logic", "kleene", "three-valued logic used in proofs (kleene or lukasiewicz)")
	flags.IntVar(&g.maxdepth, "maxdepth", 10000, "maximal depth of fault trees, 0 for no limit")

	root.AddCommand(
		newPropagateCmd(g),
		newSplitsCmd(g),
		newCutsetsCmd(g),
		newDotCmd(g),
	)
	return root
}

// setup builds the logger and bounds the depth of decoded documents; every log
// line carries the identifier of the run.
func (g *globals) setup(w io.Writer) error {
	if g.maxdepth < 0 {
		return fmt.Errorf("maxdepth must be positive or 0, not %d", g.maxdepth)
	}
	document.MaxDepth = g.maxdepth
	if g.verbosity < 0 || g.verbosity >= len(levels) {
		return fmt.Errorf("verbosity must be between 0 and %d", len(levels)-1)
	}
	opts := &slog.HandlerOptions{Level: levels[g.verbosity]}
	var h slog.Handler
	switch g.logFormat {
	case "text":
		h = slog.NewTextHandler(w, opts)
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		return fmt.Errorf("unknown log format %q", g.logFormat)
	}
	g.logger = slog.New(h).With("run", uuid.NewString())
	return nil
}

// calculus returns a proof calculus for the logic selected on the command
// line.
func (g *globals) calculus() (*qcl.Calculus, error) {
	var l *qcl.Logic
	switch g.logic {
	case "kleene":
		l = qcl.KleeneLogic()
	case "lukasiewicz":
		l = qcl.LukasiewiczLogic()
	default:
		return nil, fmt.Errorf("unknown logic %q", g.logic)
	}
	return qcl.New(l, qcl.Maxdepth(g.maxdepth), qcl.Logger(g.logger))
}

// proof translates t into a proof whose hypotheses are the n wires.
func (g *globals) proof(n int, t *qcl.FaultTree) (*qcl.Proof, error) {
	c, err := g.calculus()
	if err != nil {
		return nil, err
	}
	p := c.FromFaultTree(n, t)
	if err := c.Err(); err != nil {
		return nil, err
	}
	g.logger.Debug("proof built", "depth", p.Depth(), "candidates", len(p.Conclusion().PosCfds()))
	return p, nil
}

func readfile(name string) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("no input file, use -f")
	}
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}
