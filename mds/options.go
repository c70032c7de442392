// SPDX-License-Identifier: MIT

// Package mds: functional configuration for the embedder.
//   - Option / Options with documented defaults.
//   - WithX constructors panic only on nonsensical values (programmer error).
//   - No global state; options are resolved per call.

package mds

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDimensions is the number of output axes when none is requested.
	DefaultDimensions = 2

	// DefaultSymmetryTolerance is the relative tolerance for the symmetry check:
	// |D[i][j] - D[j][i]| must not exceed eps * max(1, max|D|).
	DefaultSymmetryTolerance = 1e-9

	// DefaultCheckSymmetry enables the symmetry check.
	DefaultCheckSymmetry = true
)

// ---------- Internal panic messages ----------

const (
	panicDimensionsInvalid = "mds: WithDimensions: k must be >= 1"
	panicToleranceInvalid  = "mds: WithSymmetryTolerance: eps must be finite, non-negative"
	panicRankTolInvalid    = "mds: WithStrictRank: tol must be finite, in [0, 1)"
)

// Option mutates internal options. Applied in order; last writer wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	dimensions    int     // >= 1; DefaultDimensions
	symmetryEps   float64 // >= 0; DefaultSymmetryTolerance
	checkSymmetry bool    // DefaultCheckSymmetry
	strictRank    bool    // count only significant components as usable
	rankTol       float64 // relative cut-off for strictRank
}

// WithDimensions sets the number of output coordinate axes k.
// Panics when k < 1; the upper bound (k ≤ N) depends on the input and is
// reported as an InvalidInputError at call time.
func WithDimensions(k int) Option {
	if k < 1 {
		panic(panicDimensionsInvalid)
	}

	return func(o *Options) { o.dimensions = k }
}

// WithSymmetryTolerance sets the relative tolerance of the symmetry check.
func WithSymmetryTolerance(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) {
		o.symmetryEps = eps
		o.checkSymmetry = true
	}
}

// WithoutSymmetryCheck accepts asymmetric input as-is. The SVD still runs on
// the double-centered matrix; results for asymmetric data are well-defined but
// carry no isometry guarantee.
func WithoutSymmetryCheck() Option {
	return func(o *Options) { o.checkSymmetry = false }
}

// WithStrictRank counts a component as usable only when its singular value
// exceeds tol * S[0]. Requesting more axes than usable components then fails
// with ErrInsufficientRank instead of returning zero-variance axes.
func WithStrictRank(tol float64) Option {
	if tol < 0 || tol >= 1 || math.IsNaN(tol) {
		panic(panicRankTolInvalid)
	}

	return func(o *Options) {
		o.strictRank = true
		o.rankTol = tol
	}
}

// Dimensions reports the resolved number of output axes.
func (o Options) Dimensions() int { return o.dimensions }

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		dimensions:    DefaultDimensions,
		symmetryEps:   DefaultSymmetryTolerance,
		checkSymmetry: DefaultCheckSymmetry,
	}
}

// gatherOptions applies user setters on top of defaults.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// NewOptions resolves option setters against documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}
