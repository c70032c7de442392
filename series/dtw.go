// SPDX-License-Identifier: MIT

package series

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"

	"github.com/katalvlaran/mds/mds"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrEmptySequence indicates an empty input sequence.
	ErrEmptySequence = errors.New("series: sequences must be non-empty")

	// ErrBadOptions indicates a window below -1, a negative or non-finite
	// slope penalty, or a negative worker count.
	ErrBadOptions = errors.New("series: invalid options")

	// ErrNonFinite indicates a NaN or ±Inf sample.
	ErrNonFinite = errors.New("series: non-finite sample")
)

// NoWindow disables the Sakoe–Chiba band.
const NoWindow = -1

// Options configures DTW.
//   - Window: maximum |i - j| (Sakoe–Chiba band); NoWindow for none.
//   - SlopePenalty: extra cost of a non-diagonal step (≥ 0).
//   - Workers: pool size for Distances; 0 means GOMAXPROCS.
type Options struct {
	Window       int
	SlopePenalty float64
	Workers      int
}

// DefaultOptions returns an unconstrained DTW without penalty.
func DefaultOptions() Options {
	return Options{Window: NoWindow}
}

func (o Options) validate() error {
	switch {
	case o.Window < NoWindow:
		return fmt.Errorf("%w: window %d", ErrBadOptions, o.Window)
	case o.SlopePenalty < 0 || math.IsNaN(o.SlopePenalty) || math.IsInf(o.SlopePenalty, 0):
		return fmt.Errorf("%w: slope penalty %g", ErrBadOptions, o.SlopePenalty)
	case o.Workers < 0:
		return fmt.Errorf("%w: workers %d", ErrBadOptions, o.Workers)
	}

	return nil
}

// DTW returns the dynamic time warping distance between a and b.
//
// Errors: ErrEmptySequence, ErrNonFinite, ErrBadOptions.
func DTW(a, b []float64, opts Options) (float64, error) {
	if err := opts.validate(); err != nil {
		return 0, err
	}
	if err := checkSequence(a); err != nil {
		return 0, err
	}
	if err := checkSequence(b); err != nil {
		return 0, err
	}

	return warp(a, b, opts), nil
}

// Distances returns the symmetric DTW distance matrix of seqs, row i for
// seqs[i]. Pairs are computed concurrently; ctx cancels pending work.
//
// Errors: ErrEmptySequence and ErrNonFinite (naming the sequence),
// ErrBadOptions, or ctx.Err().
func Distances(ctx context.Context, seqs [][]float64, opts Options) (mds.DistanceMatrix, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if len(seqs) == 0 {
		return nil, ErrEmptySequence
	}
	for i, s := range seqs {
		if err := checkSequence(s); err != nil {
			return nil, fmt.Errorf("sequence %d: %w", i, err)
		}
	}

	n := len(seqs)
	buf := make([]float64, n*n)
	out := make(mds.DistanceMatrix, n)
	for i := range out {
		out[i] = buf[i*n : (i+1)*n : (i+1)*n]
	}

	workers := opts.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n-1; i++ {
		i := i
		g.Go(func() error {
			// Row i owns the cells (i,j) and (j,i) for j > i.
			for j := i + 1; j < n; j++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				d := warp(seqs[i], seqs[j], opts)
				out[i][j], out[j][i] = d, d
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func checkSequence(s []float64) error {
	if len(s) == 0 {
		return ErrEmptySequence
	}
	for i, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("sample %d: %w", i, ErrNonFinite)
		}
	}

	return nil
}

// warp runs the two-row recurrence on validated input. The shorter sequence
// indexes the columns.
func warp(a, b []float64, opts Options) float64 {
	if len(b) > len(a) {
		a, b = b, a
	}
	n, m := len(a), len(b)

	band := n // wide enough to never cut
	if opts.Window != NoWindow {
		band = max(opts.Window, n-m)
	}
	p := opts.SlopePenalty
	inf := math.Inf(1)

	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if i-j > band || j-i > band {
				curr[j] = inf
				continue
			}
			best := min(prev[j]+p, curr[j-1]+p, prev[j-1])
			curr[j] = math.Abs(a[i-1]-b[j-1]) + best
		}
		prev, curr = curr, prev
	}

	return prev[m]
}
