// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// pathResult is the JSON form of "socnet path".
type pathResult struct {
	From      int     `json:"from"`
	To        int     `json:"to"`
	Reachable bool    `json:"reachable"`
	Distance  float64 `json:"distance,omitempty"`
	Geodesics float64 `json:"geodesics,omitempty"`
	Route     []int   `json:"route,omitempty"`
}

func newPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path FROM TO",
		Short: "Print the distance, geodesic count and one shortest path between two vertices",
		Args:  cobra.ExactArgs(2),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			var ends [2]int
			for i, s := range args {
				v, err := strconv.Atoi(s)
				if err != nil {
					return fmt.Errorf("path: vertex %q: %w", s, err)
				}
				ends[i] = v
			}

			ctx, cancel := a.context(cmd)
			defer cancel()
			e, err := a.engine()
			if err != nil {
				return err
			}
			res := pathResult{From: ends[0], To: ends[1]}
			d, ok, err := e.Distance(ctx, res.From, res.To)
			if err != nil {
				return err
			}
			if ok {
				res.Reachable, res.Distance = true, d
				if res.Geodesics, err = e.PathCount(ctx, res.From, res.To); err != nil {
					return err
				}
				if res.Route, err = e.ShortestPath(ctx, res.From, res.To); err != nil {
					return err
				}
			}

			if a.jsonOut {
				return writeJSON(out(cmd), res)
			}
			if !res.Reachable {
				_, err = fmt.Fprintf(out(cmd), "%d does not reach %d\n", res.From, res.To)
				return err
			}
			hops := make([]string, len(res.Route))
			for i, v := range res.Route {
				hops[i] = strconv.Itoa(v)
			}
			_, err = fmt.Fprintf(out(cmd), "distance %s, %s geodesics: %s\n",
				num(res.Distance), num(res.Geodesics), strings.Join(hops, " → "))

			return err
		}),
	}
}
