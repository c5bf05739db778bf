// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/socnet/centrality"
	"github.com/katalvlaran/socnet/matrix"
	"github.com/katalvlaran/socnet/triad"
)

// writeJSON encodes v indented.
func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// newTable returns an aligned writer; callers must Flush.
func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// num formats a float compactly; NaN prints as "-".
func num(f float64) string {
	if math.IsNaN(f) {
		return "-"
	}
	if math.IsInf(f, 1) {
		return "inf"
	}

	return strconv.FormatFloat(f, 'g', 6, 64)
}

// indexSummary is the one-line view of a Report.
type indexSummary struct {
	Code   string  `json:"code"`
	Group  float64 `json:"group,omitempty"`
	Mean   float64 `json:"mean"`
	Max    float64 `json:"max"`
	ArgMax int     `json:"argmax"`
	Error  string  `json:"error,omitempty"`
}

func summarize(r *centrality.Report) indexSummary {
	s := indexSummary{Code: r.Index.String(), Mean: r.Stats.Mean, Max: r.Stats.Max, ArgMax: -1}
	if !math.IsNaN(r.Group) {
		s.Group = r.Group
	}
	if r.Stats.ArgMax >= 0 {
		s.ArgMax = r.Names[r.Stats.ArgMax]
	}

	return s
}

// printIndexSummaries prints one row per index.
func printIndexSummaries(w io.Writer, rows []indexSummary) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "INDEX\tGROUP\tMEAN\tMAX\tTOP\t")
	for _, r := range rows {
		if r.Error != "" {
			fmt.Fprintf(tw, "%s\t-\t-\t-\t-\t%s\n", r.Code, r.Error)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t\n", r.Code, num(r.Group), num(r.Mean), num(r.Max), r.ArgMax)
	}

	return tw.Flush()
}

// printReport prints every vertex of one report.
func printReport(w io.Writer, r *centrality.Report) error {
	fmt.Fprintf(w, "%s  group=%s  mean=%s  variance=%s  classes=%d\n",
		r.Index, num(r.Group), num(r.Stats.Mean), num(r.Stats.Variance), r.Stats.Classes)
	tw := newTable(w)
	fmt.Fprintln(tw, "VERTEX\tRAW\tSTD\t")
	for i, name := range r.Names {
		fmt.Fprintf(tw, "%d\t%s\t%s\t\n", name, num(r.Raw[i]), num(r.Std[i]))
	}

	return tw.Flush()
}

// censusMap keys a census by MAN label.
func censusMap(c triad.Census) map[string]int {
	out := make(map[string]int, len(c))
	for t, v := range c {
		out[triad.Type(t).String()] = v
	}

	return out
}

// printCensus prints the census in canonical order with grouped digits.
func printCensus(w io.Writer, c triad.Census) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "TRIAD\tCOUNT\t")
	for t, v := range c {
		fmt.Fprintf(tw, "%s\t%s\t\n", triad.Type(t), humanize.Comma(int64(v)))
	}
	fmt.Fprintf(tw, "total\t%s\t\n", humanize.Comma(int64(c.Total())))

	return tw.Flush()
}

// reportJSON is the wire form of a Report; undefined group indices are
// omitted since JSON has no NaN.
type reportJSON struct {
	Code  string           `json:"code"`
	Names []int            `json:"names"`
	Raw   []float64        `json:"raw"`
	Std   []float64        `json:"std"`
	Stats centrality.Stats `json:"stats"`
	Group *float64         `json:"group,omitempty"`
}

func toJSON(r *centrality.Report) reportJSON {
	j := reportJSON{Code: r.Index.String(), Names: r.Names, Raw: r.Raw, Std: r.Std, Stats: r.Stats}
	if !math.IsNaN(r.Group) {
		g := r.Group
		j.Group = &g
	}

	return j
}

// walksResult is a named square matrix.
type walksResult struct {
	Length int         `json:"length,omitempty"`
	Names  []int       `json:"names"`
	Matrix [][]float64 `json:"matrix"`
}

func newWalksResult(length int, m *matrix.Dense, names []int) *walksResult {
	rows := make([][]float64, m.Rows())
	for i := range rows {
		rows[i] = m.Row(i)
	}

	return &walksResult{Length: length, Names: names, Matrix: rows}
}

// printMatrix prints res with vertex names as row and column headers.
func printMatrix(w io.Writer, res *walksResult) error {
	tw := newTable(w)
	header := make([]string, len(res.Names))
	for j, n := range res.Names {
		header[j] = strconv.Itoa(n)
	}
	fmt.Fprintf(tw, "\t%s\t\n", strings.Join(header, "\t"))
	for i, row := range res.Matrix {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = num(v)
		}
		fmt.Fprintf(tw, "%d\t%s\t\n", res.Names[i], strings.Join(cells, "\t"))
	}

	return tw.Flush()
}
