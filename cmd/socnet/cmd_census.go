// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/socnet/triad"
)

func newCensusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "census",
		Short: "Print the 16-type triad census",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()
			e, err := a.engine()
			if err != nil {
				return err
			}
			c, err := e.TriadCensus(ctx)
			if err != nil {
				return err
			}
			if a.jsonOut {
				return writeJSON(out(cmd), censusMap(c))
			}

			return printCensus(out(cmd), c)
		}),
	}
}

// censusOrder lists the MAN labels in census order.
func censusOrder() []string { return triad.Names[:] }
