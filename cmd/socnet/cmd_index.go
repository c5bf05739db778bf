// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/socnet/centrality"
)

func newIndexCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "index CODE...",
		Short: "Print per-vertex values of centrality/prestige indices (DC DP CC IRCC BC SC EC PC IC PP PRP)",
		Args:  cobra.MinimumNArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			indices := make([]centrality.Index, len(args))
			for i, code := range args {
				idx, ok := indexByCode(code)
				if !ok {
					return fmt.Errorf("index: unknown code %q", code)
				}
				indices[i] = idx
			}

			ctx, cancel := a.context(cmd)
			defer cancel()
			e, err := a.engine()
			if err != nil {
				return err
			}
			reports := make([]*centrality.Report, 0, len(indices))
			for _, idx := range indices {
				var r *centrality.Report
				if isPrestige(idx) {
					r, err = e.Prestige(ctx, idx)
				} else {
					r, err = e.Centrality(ctx, idx)
				}
				if err != nil {
					return err
				}
				reports = append(reports, r)
			}

			if a.jsonOut {
				docs := make([]reportJSON, len(reports))
				for i, r := range reports {
					docs[i] = toJSON(r)
				}

				return writeJSON(out(cmd), docs)
			}
			for i, r := range reports {
				if i > 0 {
					fmt.Fprintln(out(cmd))
				}
				if err := printReport(out(cmd), r); err != nil {
					return err
				}
			}

			return nil
		}),
	}
}
