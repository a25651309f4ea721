// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/dalzilio/qcl/document"
	"github.com/dalzilio/qcl/optimize"
	"github.com/spf13/cobra"
)

type splitsFlags struct {
	file      string
	params    string
	algorithm string
	seed      uint64
	hcStep    float64
	hcIters   int
	stepCoef  float64
	metrics   string
}

func newSplitsCmd(g *globals) *cobra.Command {
	f := &splitsFlags{}
	cmd := &cobra.Command{
		Use:   "splits",
		Short: "Best way to split a budget of resources between the wires of a fault tree",
		Long: `splits reads a document with a fault tree (field ft), the confidence functions
of the wires (field conf_funcs), the resources already allocated to each wire
(field point) and a budget (field resources). It prints, for each wire i, the
additional resources that should be allocated to it, as i=value.

The optimisation algorithm and its parameters are read from the document given
with -o. Without one, gradient ascent followed by hill climbing is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplits(cmd, g, f, cmd.Flags().Changed("seed"))
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&f.file, "file", "f", "", "input document (JSON or YAML), - for stdin")
	flags.StringVarP(&f.params, "params", "o", "", "optimisation parameters document (JSON or YAML)")
	flags.StringVar(&f.algorithm, "algorithm", "", "override the algorithm of the parameters (ga, gahc, sa or sahc)")
	flags.Uint64Var(&f.seed, "seed", 0, "seed of the random generator, defaults to the current time")
	flags.Float64Var(&f.hcStep, "hc-step", 0, "hill climbing step size, 0 for resources / 100")
	flags.IntVar(&f.hcIters, "hc-iters", 100, "number of hill climbing iterations")
	flags.Float64Var(&f.stepCoef, "step", 0, "gradient ascent step size, 0 for resources / 100")
	flags.StringVar(&f.metrics, "metrics-file", "", "write optimizer metrics in Prometheus text format to this file")
	return cmd
}

func runSplits(cmd *cobra.Command, g *globals, f *splitsFlags, seeded bool) error {
	data, err := readfile(f.file)
	if err != nil {
		return err
	}
	doc, err := document.DecodeSplits(data)
	if err != nil {
		return err
	}
	params := &document.Params{Algorithm: optimize.GAHC}
	if f.params != "" {
		pdata, err := readfile(f.params)
		if err != nil {
			return err
		}
		if params, err = document.DecodeParams(pdata); err != nil {
			return err
		}
	}
	if f.algorithm != "" {
		if params.Algorithm, err = optimize.ParseAlgorithm(f.algorithm); err != nil {
			return err
		}
	}
	if !seeded {
		f.seed = uint64(time.Now().UnixNano())
	}

	opts := append(params.Options(),
		optimize.Seed(f.seed),
		optimize.Logger(g.logger),
		optimize.StepCoef(f.stepCoef),
		optimize.HillClimbing(f.hcStep, f.hcIters),
	)
	var metrics *optimize.Metrics
	if f.metrics != "" {
		metrics = optimize.NewMetrics()
		opts = append(opts, optimize.Instrument(metrics))
	}
	opt, err := optimize.New(params.Algorithm, opts...)
	if err != nil {
		return err
	}

	p, err := g.proof(len(doc.Point), doc.Tree)
	if err != nil {
		return err
	}
	g.logger.Info("splits", "file", f.file, "algorithm", params.Algorithm, "seed", f.seed, "resources", doc.Resources)
	delta, err := opt.RepartitionProof(p, doc.ConfFuncs, doc.Point, doc.Resources)
	if err != nil {
		return err
	}
	if metrics != nil {
		if err := metrics.WriteTextfile(f.metrics); err != nil {
			return err
		}
	}

	var sb strings.Builder
	for i, d := range delta {
		if d < 0 {
			return fmt.Errorf("negative split (%d coordinate): %f", i, d)
		}
		fmt.Fprintf(&sb, "%d=%.15f ", i, d)
	}
	fmt.Fprintln(cmd.OutOrStdout(), sb.String())
	return nil
}
