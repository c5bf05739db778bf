// SPDX-License-Identifier: MIT

package triad

import (
	"context"
	"errors"
	"fmt"
	"math/bits"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/socnet/core"
)

// Sentinel errors.
var (
	// ErrNilSnapshot indicates a nil *core.Snapshot.
	ErrNilSnapshot = errors.New("triad: snapshot is nil")

	// ErrOverflow indicates a triple count that does not fit in uint64.
	ErrOverflow = errors.New("triad: triple count overflows uint64")
)

// Type is one of the 16 MAN triad classes, in census order.
type Type int

const (
	T003 Type = iota
	T012
	T102
	T021D
	T021U
	T021C
	T111D
	T111U
	T030T
	T030C
	T201
	T120D
	T120U
	T120C
	T210
	T300
)

// Names lists the MAN labels in census order.
var Names = [16]string{
	"003", "012", "102", "021D", "021U", "021C", "111D", "111U",
	"030T", "030C", "201", "120D", "120U", "120C", "210", "300",
}

// String returns the MAN label.
func (t Type) String() string {
	if t < 0 || int(t) >= len(Names) {
		return "?"
	}

	return Names[t]
}

// codeTable maps a 6-bit arc code to a 1-based Type.
var codeTable = [64]uint8{
	1, 2, 2, 3, 2, 4, 6, 8, 2, 6, 5, 7, 3, 8, 7, 11,
	2, 6, 4, 8, 5, 9, 9, 13, 6, 10, 9, 14, 7, 14, 12, 15,
	2, 5, 6, 7, 6, 9, 10, 14, 4, 9, 9, 12, 8, 13, 14, 15,
	3, 7, 8, 11, 7, 12, 14, 15, 8, 14, 13, 15, 11, 15, 15, 16,
}

// Census holds the number of triples of each Type.
type Census [16]int

// Total returns Σ census.
func (c Census) Total() int {
	sum := 0
	for _, v := range c {
		sum += v
	}

	return sum
}

// Options configures CensusOf.
type Options struct {
	Workers  int
	Progress core.Progress
}

// Option mutates Options.
type Option func(*Options)

// WithWorkers sets the worker count; values below 1 are clamped to 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.Workers = n
	}
}

// WithProgress installs a progress sink; nil restores the no-op sink.
func WithProgress(p core.Progress) Option {
	return func(o *Options) {
		if p == nil {
			p = core.NopProgress{}
		}
		o.Progress = p
	}
}

// Classify returns the Type of the triple (v, u, w) in snap.
func Classify(snap *core.Snapshot, v, u, w int) Type {
	return Type(codeTable[code(snap, v, u, w)] - 1)
}

// code packs the six arcs of a triple: v→u=1, u→v=2, v→w=4, w→v=8,
// u→w=16, w→u=32.
func code(snap *core.Snapshot, v, u, w int) int {
	c := 0
	if snap.HasArc(v, u) {
		c |= 1
	}
	if snap.HasArc(u, v) {
		c |= 2
	}
	if snap.HasArc(v, w) {
		c |= 4
	}
	if snap.HasArc(w, v) {
		c |= 8
	}
	if snap.HasArc(u, w) {
		c |= 16
	}
	if snap.HasArc(w, u) {
		c |= 32
	}

	return c
}

// CensusOf counts every triple i<j<k of snap by Type.
//
// Implementation:
//   - Stage 1: Outer vertices i are dealt to workers in stride; each worker
//     keeps its own Census.
//   - Stage 2: For every j>i and k>j, classify through codeTable.
//   - Stage 3: Sum worker censuses in worker order.
//
// Errors:
//   - ErrNilSnapshot, ctx.Err() on cancellation.
//
// Complexity:
//   - Time O(n³ log d), Space O(workers).
func CensusOf(ctx context.Context, snap *core.Snapshot, opts ...Option) (Census, error) {
	var out Census
	if snap == nil {
		return out, ErrNilSnapshot
	}
	o := Options{Workers: runtime.GOMAXPROCS(0), Progress: core.NopProgress{}}
	for _, opt := range opts {
		opt(&o)
	}
	n := snap.Len()
	workers := o.Workers
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	o.Progress.OnStatus(fmt.Sprintf("triad census over %d vertices", n))
	parts := make([]Census, workers)
	var done atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			part := &parts[w]
			for i := w; i < n; i += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				for j := i + 1; j < n; j++ {
					for k := j + 1; k < n; k++ {
						part[codeTable[code(snap, i, j, k)]-1]++
					}
				}
				o.Progress.OnProgress(int(done.Add(1)))
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Census{}, err
	}
	for _, p := range parts {
		for t, v := range p {
			out[t] += v
		}
	}

	return out, nil
}

// Triples returns C(n,3), the number of unordered vertex triples, computed
// iteratively with overflow checks.
func Triples(n int) (uint64, error) {
	if n < 3 {
		return 0, nil
	}
	m := uint64(n)
	hi, lo := bits.Mul64(m, m-1)
	if hi != 0 {
		return 0, ErrOverflow
	}
	hi, lo = bits.Mul64(lo/2, m-2)
	if hi != 0 {
		return 0, ErrOverflow
	}

	return lo / 3, nil
}
