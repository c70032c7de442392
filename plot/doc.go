// SPDX-License-Identifier: MIT

// Package plot draws two-dimensional scatter plots of embedded items.
//
// 🚀 What it renders
//
//   - WriteSVG: a standalone SVG document, one <g> per item, with either a
//     circle plus a text label or (ShowImage) a thumbnail inside a border rect.
//   - RenderText: a character-grid scatter plot framed for a terminal.
//
// ✨ Layout rules
//
//   - x maps [min(xs), max(xs)] onto [Padding, Width-Padding].
//   - y maps [max(ys), min(ys)] onto [Padding, Height-Padding], so larger
//     values are drawn higher. ReverseX / ReverseY flip either domain.
//   - A degenerate domain (all values equal) maps every item to the start of
//     the range.
//   - IncludeAxis adds a bottom and a left axis with round tick values.
//   - Highlighted items are moved to the end of the draw list (MoveToFront)
//     and drawn in their emphasized state.
//
// ⚙️ Usage
//
//	xs, ys := emb.XY()
//	err := plot.WriteSVG(f, xs, ys, plot.Labels("a", "b", "c"), plot.Params{IncludeAxis: true})
//
// The package never mutates its inputs and keeps no global state.
package plot
