// SPDX-License-Identifier: MIT

package plot_test

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/mds/plot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nan() float64 { return math.NaN() }

func renderSVG(t *testing.T, labels []plot.Label, p plot.Params) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, plot.WriteSVG(&buf, diagXs, diagYs, labels, p))

	return buf.String()
}

func TestWriteSVG_Points(t *testing.T) {
	out := renderSVG(t, plot.Labels("a", "b", "<c&d>"), plot.Params{})

	assert.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg"`))
	assert.Contains(t, out, `width="800" height="600"`)
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
	assert.Equal(t, 3, strings.Count(out, "<circle"))
	assert.Equal(t, 3, strings.Count(out, `<text class="label"`))
	assert.NotContains(t, out, "<image")
	assert.NotContains(t, out, `class="axis"`)

	assert.Contains(t, out, `<circle class="datapoint" r="3" cx="32" cy="568"/>`)
	assert.Contains(t, out, `<text class="label" text-anchor="middle" x="32" y="562">a</text>`)
	assert.Contains(t, out, ">&lt;c&amp;d&gt;</text>")
}

func TestWriteSVG_Images(t *testing.T) {
	labels := []plot.Label{
		{Text: "a.png"},
		{Text: "b", Image: "img/b.png"},
		{Text: "c", Image: "img/c.png", Link: "https://example.com/c"},
	}
	out := renderSVG(t, labels, plot.Params{ShowImage: true, Highlight: []int{1}})

	assert.Equal(t, 3, strings.Count(out, "<image"))
	assert.Equal(t, 3, strings.Count(out, `class="dataimageborder"`))
	assert.NotContains(t, out, "<circle")
	assert.Contains(t, out, `xlink:href="a.png" width="50" height="50"`, "text doubles as href")
	assert.Contains(t, out, `xlink:href="img/b.png" width="80" height="80"`, "highlight enlarges")
	assert.Equal(t, 2, strings.Count(out, `style="visibility:hidden;`))
	assert.Contains(t, out, `<a xlink:href="https://example.com/c"><g class="node" data-index="2">`)

	// The highlighted item is the last group in the document.
	assert.Greater(t, strings.Index(out, `data-index="1"`), strings.Index(out, `data-index="2"`))
}

func TestWriteSVG_Axis(t *testing.T) {
	out := renderSVG(t, plot.Labels("a", "b", "c"), plot.Params{IncludeAxis: true})

	assert.Equal(t, 2, strings.Count(out, `<g class="axis"`))
	assert.Contains(t, out, `<g class="axis" transform="translate(0,574)">`)
	assert.Contains(t, out, `<g class="axis" transform="translate(26,0)">`)
	for _, tick := range []string{">0.0<", ">0.5<", ">1.0<", ">1.5<", ">2.0<"} {
		assert.Equal(t, 2, strings.Count(out, tick), tick)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteSVG_Errors(t *testing.T) {
	err := plot.WriteSVG(failingWriter{}, diagXs, diagYs, plot.Labels("a", "b", "c"), plot.Params{})
	assert.ErrorContains(t, err, "disk full")

	var buf bytes.Buffer
	err = plot.WriteSVG(&buf, diagXs, diagYs, plot.Labels("a"), plot.Params{})
	assert.ErrorIs(t, err, plot.ErrLengthMismatch)
	assert.Zero(t, buf.Len(), "nothing written on invalid input")
}
