// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/socnet/matrix"
)

func newWalksCmd(a *app) *cobra.Command {
	var (
		length     int
		total      bool
		omitWeight bool
		inverse    bool
	)
	cmd := &cobra.Command{
		Use:   "walks",
		Short: "Print walk counts (A^L, or A + … + A^L with --total) or the inverse adjacency matrix",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()
			e, err := a.engine()
			if err != nil {
				return err
			}
			var opts []matrix.Option
			if omitWeight {
				opts = append(opts, matrix.WithOmitWeights())
			}

			var (
				m     *matrix.Dense
				names []int
			)
			switch {
			case inverse:
				m, names, err = e.InverseAdjacencyMatrix(ctx, opts...)
			case total:
				m, names, err = e.TotalWalksMatrix(ctx, length, opts...)
			default:
				m, names, err = e.WalksMatrix(ctx, length, opts...)
			}
			if err != nil {
				return err
			}

			if inverse {
				length = 0
			}
			res := newWalksResult(length, m, names)
			if a.jsonOut {
				return writeJSON(out(cmd), res)
			}

			return printMatrix(out(cmd), res)
		}),
	}
	f := cmd.Flags()
	f.IntVarP(&length, "length", "l", 2, "walk length L")
	f.BoolVar(&total, "total", false, "sum walks of length 1..L")
	f.BoolVar(&omitWeight, "omit-weights", false, "count arcs as 1")
	f.BoolVar(&inverse, "inverse", false, "print the inverse adjacency matrix instead")

	return cmd
}
