// SPDX-License-Identifier: MIT

package plot

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

const opWriteSVG = "WriteSVG"

// WriteSVG writes a standalone SVG scatter plot of (xs[i], ys[i]) captioned by
// labels[i]. Each item is a <g> holding either a circle and a text label, or
// (ShowImage) a border rect and an image. Highlighted items are drawn last,
// images enlarged to the border size with the border visible.
//
// Errors: ErrEmpty, ErrLengthMismatch, ErrNonFinite, ErrOutOfRange,
// ErrInvalidParams, or the first write error from w.
func WriteSVG(w io.Writer, xs, ys []float64, labels []Label, p Params) error {
	p, err := p.withDefaults()
	if err != nil {
		return plotErrorf(opWriteSVG, err)
	}
	xr := [2]float64{p.Padding, p.Width - p.Padding}
	yr := [2]float64{p.Padding, p.Height - p.Padding}
	nodes, err := place(xs, ys, labels, p, xr, yr)
	if err != nil {
		return plotErrorf(opWriteSVG, err)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="%s" height="%s">`+"\n",
		num(p.Width), num(p.Height))

	if p.IncludeAxis {
		xScale, yScale := scales(xs, ys, p, xr, yr)
		writeBottomAxis(bw, xScale, p)
		writeLeftAxis(bw, yScale, p)
	}
	for _, n := range nodes {
		writeNode(bw, n, p)
	}
	bw.WriteString("</svg>\n")

	if err = bw.Flush(); err != nil {
		return plotErrorf(opWriteSVG, err)
	}

	return nil
}

// writeNode emits one item group.
func writeNode(w *bufio.Writer, n Node, p Params) {
	x, y := num(n.X), num(n.Y)
	if n.Label.Link != "" {
		fmt.Fprintf(w, `<a xlink:href="%s">`, esc(n.Label.Link))
	}
	fmt.Fprintf(w, `<g class="node" data-index="%d">`, n.Index)

	if p.ShowImage {
		style, size := hiddenBorderStyle, imageSize
		if n.Highlight {
			style, size = borderStyle, rectSize
		}
		fmt.Fprintf(w, `<rect class="dataimageborder" width="%d" height="%d" x="%s" y="%s" style="%s"/>`,
			rectSize, rectSize, x, y, style)
		fmt.Fprintf(w, `<image class="dataimage" xlink:href="%s" width="%d" height="%d" x="%s" y="%s"/>`,
			esc(n.Label.href()), size, size, x, y)
	} else {
		class := "datapoint"
		if n.Highlight {
			class += " highlight"
		}
		fmt.Fprintf(w, `<circle class="%s" r="%s" cx="%s" cy="%s"/>`, class, num(p.PointRadius), x, y)
		fmt.Fprintf(w, `<text class="label" text-anchor="middle" x="%s" y="%s">%s</text>`,
			x, num(n.Y-2*p.PointRadius), esc(n.Label.Text))
	}

	w.WriteString("</g>")
	if n.Label.Link != "" {
		w.WriteString("</a>")
	}
	w.WriteString("\n")
}

// writeBottomAxis draws the x axis just below the plotting area.
func writeBottomAxis(w *bufio.Writer, s linearScale, p Params) {
	fmt.Fprintf(w, `<g class="axis" transform="translate(0,%s)">`, num(p.Height-p.Padding+2*p.PointRadius))
	fmt.Fprintf(w, `<path class="domain" d="M%s,6V0H%sV6"/>`, num(s.r0), num(s.r1))
	ticks, step := s.ticks(p.XTicks)
	for _, t := range ticks {
		fmt.Fprintf(w, `<g class="tick" transform="translate(%s,0)"><line y2="6"/><text y="9" dy=".71em" text-anchor="middle">%s</text></g>`,
			num(s.at(t)), formatTick(t, step))
	}
	w.WriteString("</g>\n")
}

// writeLeftAxis draws the y axis just left of the plotting area.
func writeLeftAxis(w *bufio.Writer, s linearScale, p Params) {
	fmt.Fprintf(w, `<g class="axis" transform="translate(%s,0)">`, num(p.Padding-2*p.PointRadius))
	fmt.Fprintf(w, `<path class="domain" d="M-6,%sH0V%sH-6"/>`, num(s.r0), num(s.r1))
	ticks, step := s.ticks(p.YTicks)
	for _, t := range ticks {
		fmt.Fprintf(w, `<g class="tick" transform="translate(0,%s)"><line x2="-6"/><text x="-9" dy=".32em" text-anchor="end">%s</text></g>`,
			num(s.at(t)), formatTick(t, step))
	}
	w.WriteString("</g>\n")
}

// esc escapes s for use in SVG text and attribute values.
func esc(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s)) // strings.Builder never fails

	return b.String()
}
