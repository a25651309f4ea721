// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"

	"github.com/dalzilio/qcl/document"
	"github.com/spf13/cobra"
)

func newPropagateCmd(g *globals) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "propagate",
		Short: "Probability that a fault propagates to the root of a fault tree",
		Long: `propagate reads a document with a fault tree (field ft) and the failure
probability of each wire (field point, a list of index/value pairs) and prints
the probability that a fault reaches the root, assuming independent wires.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readfile(file)
			if err != nil {
				return err
			}
			doc, err := document.DecodePropagate(data)
			if err != nil {
				return err
			}
			g.logger.Info("propagate", "file", file, "tree", doc.Tree.String(), "wires", len(doc.Point))
			fmt.Fprintf(cmd.OutOrStdout(), "%.15f\n", doc.Tree.PropagateProb(doc.Point))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "input document (JSON or YAML), - for stdin")
	return cmd
}
