// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dalzilio/qcl"
	"github.com/dalzilio/qcl/document"
	"github.com/spf13/cobra"
)

func newCutsetsCmd(g *globals) *cobra.Command {
	var file string
	var limit int
	cmd := &cobra.Command{
		Use:   "cutsets",
		Short: "Minimal cut sets of a fault tree",
		Long: `cutsets prints the minimal sets of wires whose joint failure makes a fault
propagate to the root of the tree, one set per line. The input is a fault tree
or a document with a field ft.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readfile(file)
			if err != nil {
				return err
			}
			t, err := document.DecodeTree(data)
			if err != nil {
				return err
			}
			cuts := qcl.MinimalCutSets(t, limit)
			g.logger.Info("cut sets", "file", file, "count", len(cuts))
			w := cmd.OutOrStdout()
			for _, cut := range cuts {
				s := make([]string, len(cut))
				for k, i := range cut {
					s[k] = strconv.Itoa(i)
				}
				fmt.Fprintln(w, strings.Join(s, " "))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "input document (JSON or YAML), - for stdin")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximal number of cut sets, 0 for all")
	return cmd
}
