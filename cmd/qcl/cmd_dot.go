// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"github.com/dalzilio/qcl/document"
	"github.com/spf13/cobra"
)

func newDotCmd(g *globals) *cobra.Command {
	var file, output string
	var proof bool
	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Graphviz drawing of a fault tree or of its proof",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readfile(file)
			if err != nil {
				return err
			}
			t, err := document.DecodeTree(data)
			if err != nil {
				return err
			}
			if !proof {
				if output != "" {
					return t.FPrintDot(output)
				}
				return t.WriteDot(cmd.OutOrStdout())
			}
			wires := t.Wires()
			p, err := g.proof(wires[len(wires)-1]+1, t)
			if err != nil {
				return err
			}
			if output != "" {
				return p.FPrintDot(output)
			}
			return p.WriteDot(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "input document (JSON or YAML), - for stdin")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, defaults to stdout")
	cmd.Flags().BoolVar(&proof, "proof", false, "draw the proof obtained from the tree instead of the tree")
	return cmd
}
