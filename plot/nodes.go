// SPDX-License-Identifier: MIT

package plot

import (
	"fmt"
	"math"
)

const (
	opLayout      = "Layout"
	opMoveToFront = "MoveToFront"
)

// Node is one item placed on the canvas, in canvas coordinates.
type Node struct {
	Index     int // position in the caller's xs/ys/labels
	X, Y      float64
	Label     Label
	Highlight bool
}

// Layout validates the series and places every item on a Width×Height
// canvas. Nodes come back in draw order: input order, with highlighted items
// moved to the end.
func Layout(xs, ys []float64, labels []Label, p Params) ([]Node, error) {
	p, err := p.withDefaults()
	if err != nil {
		return nil, plotErrorf(opLayout, err)
	}
	nodes, err := place(xs, ys, labels, p,
		[2]float64{p.Padding, p.Width - p.Padding},
		[2]float64{p.Padding, p.Height - p.Padding})
	if err != nil {
		return nil, plotErrorf(opLayout, err)
	}

	return nodes, nil
}

// MoveToFront moves the node at position i to the end of the draw list so
// it renders above every other node. The relative order of the rest is kept.
func MoveToFront(nodes []Node, i int) error {
	if i < 0 || i >= len(nodes) {
		return plotErrorf(opMoveToFront, fmt.Errorf("%d of %d: %w", i, len(nodes), ErrOutOfRange))
	}
	n := nodes[i]
	copy(nodes[i:], nodes[i+1:])
	nodes[len(nodes)-1] = n

	return nil
}

// validateSeries checks lengths and finiteness of the input series.
func validateSeries(xs, ys []float64, labels []Label) error {
	if len(xs) == 0 && len(ys) == 0 && len(labels) == 0 {
		return ErrEmpty
	}
	if len(xs) != len(ys) || len(xs) != len(labels) {
		return fmt.Errorf("%d xs, %d ys, %d labels: %w", len(xs), len(ys), len(labels), ErrLengthMismatch)
	}
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsInf(xs[i], 0) || math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
			return fmt.Errorf("item %d: %w", i, ErrNonFinite)
		}
	}

	return nil
}

// place maps the series into the given x and y output ranges and applies the
// highlight list.
func place(xs, ys []float64, labels []Label, p Params, xr, yr [2]float64) ([]Node, error) {
	if err := validateSeries(xs, ys, labels); err != nil {
		return nil, err
	}
	xScale, yScale := scales(xs, ys, p, xr, yr)

	nodes := make([]Node, len(xs))
	for i := range xs {
		nodes[i] = Node{Index: i, X: xScale.at(xs[i]), Y: yScale.at(ys[i]), Label: labels[i]}
	}

	for _, h := range p.Highlight {
		if h < 0 || h >= len(nodes) {
			return nil, fmt.Errorf("highlight %d of %d: %w", h, len(nodes), ErrOutOfRange)
		}
		pos := position(nodes, h)
		nodes[pos].Highlight = true
		if err := MoveToFront(nodes, pos); err != nil {
			return nil, err
		}
	}

	return nodes, nil
}

// position finds the current draw position of the item with the given index.
func position(nodes []Node, index int) int {
	for pos, n := range nodes {
		if n.Index == index {
			return pos
		}
	}

	return -1
}
