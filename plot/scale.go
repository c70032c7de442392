// SPDX-License-Identifier: MIT

package plot

import (
	"math"
	"strconv"
)

// linearScale maps the domain [d0, d1] onto the range [r0, r1]. d0 may be
// greater than d1 (reversed axis).
type linearScale struct {
	d0, d1 float64
	r0, r1 float64
}

// at maps v into the range. A zero-width domain maps everything to r0.
func (s linearScale) at(v float64) float64 {
	span := s.d1 - s.d0
	if span == 0 {
		return s.r0
	}

	return s.r0 + (v-s.d0)/span*(s.r1-s.r0)
}

// ticks returns about m round values inside the domain, ascending, and the
// step between them. Steps are 1, 2 or 5 times a power of ten.
func (s linearScale) ticks(m int) ([]float64, float64) {
	lo, hi := math.Min(s.d0, s.d1), math.Max(s.d0, s.d1)
	if m <= 0 {
		return nil, 0
	}
	if hi == lo {
		return []float64{lo}, 0
	}

	span := hi - lo
	step := math.Pow(10, math.Floor(math.Log10(span/float64(m))))
	switch r := float64(m) / span * step; {
	case r <= 0.15:
		step *= 10
	case r <= 0.35:
		step *= 5
	case r <= 0.75:
		step *= 2
	}

	first, last := math.Ceil(lo/step), math.Floor(hi/step)
	out := make([]float64, 0, int(last-first)+1)
	for i := first; i <= last; i++ {
		out = append(out, i*step)
	}

	return out, step
}

// formatTick prints v with just enough decimals for the given step.
func formatTick(v, step float64) string {
	prec := 0
	if step > 0 {
		prec = int(math.Max(0, -math.Floor(math.Log10(step)+0.01)))
	}
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == 0 {
		return strconv.FormatFloat(0, 'f', prec, 64)
	}

	return s
}

// extent returns min and max of vs; vs must be non-empty.
func extent(vs []float64) (lo, hi float64) {
	lo, hi = vs[0], vs[0]
	for _, v := range vs[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	return lo, hi
}

// scales builds the x and y scales for the given output ranges.
// The y domain is [max, min] so larger values land nearer r0 (the top).
func scales(xs, ys []float64, p Params, xr, yr [2]float64) (x, y linearScale) {
	xLo, xHi := extent(xs)
	yLo, yHi := extent(ys)
	x = linearScale{d0: xLo, d1: xHi, r0: xr[0], r1: xr[1]}
	y = linearScale{d0: yHi, d1: yLo, r0: yr[0], r1: yr[1]}
	if p.ReverseX {
		x.d0, x.d1 = x.d1, x.d0
	}
	if p.ReverseY {
		y.d0, y.d1 = y.d1, y.d0
	}

	return x, y
}

// num formats an SVG coordinate rounded to two decimals.
func num(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		v = 0 // drop negative zero
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}
