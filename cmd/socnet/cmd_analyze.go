// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/socnet/centrality"
)

// analysisResult is the JSON form of "socnet analyze".
type analysisResult struct {
	Relation          int            `json:"relation"`
	Vertices          int            `json:"vertices"`
	Arcs              int            `json:"arcs"`
	Density           float64        `json:"density"`
	Symmetric         bool           `json:"symmetric"`
	Connectedness     string         `json:"connectedness"`
	Diameter          float64        `json:"diameter"`
	AverageDistance   float64        `json:"average_distance"`
	Indices           []indexSummary `json:"indices,omitempty"`
	Census            map[string]int `json:"census,omitempty"`
	AverageClustering *float64       `json:"average_clustering,omitempty"`
	Walks             *walksResult   `json:"walks,omitempty"`
}

func newAnalyzeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Summarize the network and compute the profile's indices",
		Args:  cobra.NoArgs,
		RunE:  a.run(a.analyze),
	}
}

func (a *app) analyze(cmd *cobra.Command, _ []string) error {
	ctx, cancel := a.context(cmd)
	defer cancel()
	e, err := a.engine()
	if err != nil {
		return err
	}

	snap, err := e.Snapshot(ctx)
	if err != nil {
		return err
	}
	res := analysisResult{
		Relation:  e.Relation(),
		Vertices:  snap.Len(),
		Arcs:      snap.ArcCount(),
		Density:   snap.Density(),
		Symmetric: snap.IsSymmetric(),
	}
	conn, err := e.Connectedness(ctx)
	if err != nil {
		return err
	}
	res.Connectedness = conn.String()
	if res.Diameter, err = e.Diameter(ctx); err != nil {
		return err
	}
	if res.AverageDistance, err = e.AverageDistance(ctx); err != nil {
		return err
	}

	for _, code := range a.profile.Analysis.Indices {
		idx, _ := indexByCode(code)
		var r *centrality.Report
		if isPrestige(idx) {
			r, err = e.Prestige(ctx, idx)
		} else {
			r, err = e.Centrality(ctx, idx)
		}
		switch {
		case err == nil:
			res.Indices = append(res.Indices, summarize(r))
		case errors.Is(err, centrality.ErrUndefinedIndex), errors.Is(err, centrality.ErrSingularMatrix):
			a.logger.Warn("index skipped", slog.String("index", code), slog.String("reason", err.Error()))
			res.Indices = append(res.Indices, indexSummary{Code: code, ArgMax: -1, Error: err.Error()})
		default:
			return err
		}
	}

	if a.profile.Analysis.Census {
		c, err := e.TriadCensus(ctx)
		if err != nil {
			return err
		}
		res.Census = censusMap(c)
	}
	if a.profile.Analysis.Clustering {
		cl, err := e.AverageClusteringCoefficient(ctx)
		if err != nil {
			return err
		}
		res.AverageClustering = &cl
	}
	if l := a.profile.Analysis.Walks; l > 0 {
		m, names, err := e.TotalWalksMatrix(ctx, l)
		if err != nil {
			return err
		}
		res.Walks = newWalksResult(l, m, names)
	}
	a.logger.Debug("analysis finished", slog.Any("cache", e.CacheStats()))

	if a.jsonOut {
		return writeJSON(out(cmd), res)
	}

	return printAnalysis(cmd, res)
}

func printAnalysis(cmd *cobra.Command, res analysisResult) error {
	w := out(cmd)
	tw := newTable(w)
	fmt.Fprintf(tw, "relation\t%d\t\n", res.Relation)
	fmt.Fprintf(tw, "vertices\t%s\t\n", humanize.Comma(int64(res.Vertices)))
	fmt.Fprintf(tw, "arcs\t%s\t\n", humanize.Comma(int64(res.Arcs)))
	fmt.Fprintf(tw, "density\t%s\t\n", num(res.Density))
	fmt.Fprintf(tw, "symmetric\t%t\t\n", res.Symmetric)
	fmt.Fprintf(tw, "connectedness\t%s\t\n", res.Connectedness)
	fmt.Fprintf(tw, "diameter\t%s\t\n", num(res.Diameter))
	fmt.Fprintf(tw, "average distance\t%s\t\n", num(res.AverageDistance))
	if res.AverageClustering != nil {
		fmt.Fprintf(tw, "average clustering\t%s\t\n", num(*res.AverageClustering))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(res.Indices) > 0 {
		fmt.Fprintln(w)
		if err := printIndexSummaries(w, res.Indices); err != nil {
			return err
		}
	}
	if res.Census != nil {
		fmt.Fprintln(w)
		tw = newTable(w)
		fmt.Fprintln(tw, "TRIAD\tCOUNT\t")
		for _, label := range censusOrder() {
			fmt.Fprintf(tw, "%s\t%s\t\n", label, humanize.Comma(int64(res.Census[label])))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	if res.Walks != nil {
		fmt.Fprintf(w, "\nwalks of length 1..%d\n", res.Walks.Length)

		return printMatrix(w, res.Walks)
	}

	return nil
}
