// SPDX-License-Identifier: MIT

package plot_test

import (
	"testing"

	"github.com/katalvlaran/mds/plot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	diagXs = []float64{0, 1, 2}
	diagYs = []float64{0, 1, 2}
)

func positions(nodes []plot.Node) [][2]float64 {
	out := make([][2]float64, len(nodes))
	for i, n := range nodes {
		out[i] = [2]float64{n.X, n.Y}
	}

	return out
}

func TestLayout_Scales(t *testing.T) {
	for _, tc := range []struct {
		name string
		p    plot.Params
		want [][2]float64
	}{
		{name: "default", p: plot.Params{}, want: [][2]float64{{32, 568}, {400, 300}, {768, 32}}},
		{name: "reverseX", p: plot.Params{ReverseX: true}, want: [][2]float64{{768, 568}, {400, 300}, {32, 32}}},
		{name: "reverseY", p: plot.Params{ReverseY: true}, want: [][2]float64{{32, 32}, {400, 300}, {768, 568}}},
		{name: "custom", p: plot.Params{Width: 200, Height: 100, Padding: 10}, want: [][2]float64{{10, 90}, {100, 50}, {190, 10}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			nodes, err := plot.Layout(diagXs, diagYs, plot.Labels("a", "b", "c"), tc.p)
			require.NoError(t, err)
			got := positions(nodes)
			require.Len(t, got, len(tc.want))
			for i := range got {
				assert.InDelta(t, tc.want[i][0], got[i][0], 1e-9, "x of %d", i)
				assert.InDelta(t, tc.want[i][1], got[i][1], 1e-9, "y of %d", i)
			}
		})
	}
}

func TestLayout_DegenerateDomain(t *testing.T) {
	nodes, err := plot.Layout([]float64{5, 5}, []float64{-1, -1}, plot.Labels("a", "b"), plot.Params{})
	require.NoError(t, err)
	for _, n := range nodes {
		assert.Equal(t, 32.0, n.X)
		assert.Equal(t, 32.0, n.Y)
	}
}

func TestLayout_HighlightDrawnLast(t *testing.T) {
	nodes, err := plot.Layout(diagXs, diagYs, plot.Labels("a", "b", "c"), plot.Params{Highlight: []int{0}})
	require.NoError(t, err)
	require.Len(t, nodes, 3)
	assert.Equal(t, []int{1, 2, 0}, []int{nodes[0].Index, nodes[1].Index, nodes[2].Index})
	assert.True(t, nodes[2].Highlight)
	assert.False(t, nodes[0].Highlight)
	assert.Equal(t, "a", nodes[2].Label.Text)
}

func TestLayout_Errors(t *testing.T) {
	labels := plot.Labels("a", "b", "c")
	for _, tc := range []struct {
		name   string
		xs, ys []float64
		labels []plot.Label
		p      plot.Params
		want   error
	}{
		{name: "empty", want: plot.ErrEmpty},
		{name: "short ys", xs: diagXs, ys: diagYs[:2], labels: labels, want: plot.ErrLengthMismatch},
		{name: "short labels", xs: diagXs, ys: diagYs, labels: labels[:1], want: plot.ErrLengthMismatch},
		{name: "nan", xs: []float64{0, nan()}, ys: []float64{0, 1}, labels: labels[:2], want: plot.ErrNonFinite},
		{name: "highlight", xs: diagXs, ys: diagYs, labels: labels, p: plot.Params{Highlight: []int{3}}, want: plot.ErrOutOfRange},
		{name: "tiny canvas", xs: diagXs, ys: diagYs, labels: labels, p: plot.Params{Width: 60}, want: plot.ErrInvalidParams},
		{name: "negative radius", xs: diagXs, ys: diagYs, labels: labels, p: plot.Params{PointRadius: -1}, want: plot.ErrInvalidParams},
	} {
		t.Run(tc.name, func(t *testing.T) {
			nodes, err := plot.Layout(tc.xs, tc.ys, tc.labels, tc.p)
			assert.Nil(t, nodes)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestMoveToFront(t *testing.T) {
	nodes := []plot.Node{{Index: 0}, {Index: 1}, {Index: 2}, {Index: 3}}

	require.NoError(t, plot.MoveToFront(nodes, 1))
	assert.Equal(t, []plot.Node{{Index: 0}, {Index: 2}, {Index: 3}, {Index: 1}}, nodes)

	require.NoError(t, plot.MoveToFront(nodes, 3), "already last")
	assert.Equal(t, 1, nodes[3].Index)

	assert.ErrorIs(t, plot.MoveToFront(nodes, 4), plot.ErrOutOfRange)
	assert.ErrorIs(t, plot.MoveToFront(nodes, -1), plot.ErrOutOfRange)
	assert.ErrorIs(t, plot.MoveToFront(nil, 0), plot.ErrOutOfRange)
}
