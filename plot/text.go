// SPDX-License-Identifier: MIT

package plot

import (
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

const opRenderText = "RenderText"

const (
	blankCell     = ' '
	anonymousMark = '•'
	collisionMark = '*'
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	frameStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	highlightStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

// RenderText draws the scatter plot on a Columns×Rows character grid inside a
// rounded frame, followed by a legend of markers, labels and coordinates.
// Each item is marked by the first letter of its label ('•' when empty);
// items sharing a cell with a different marker show '*'.
func RenderText(xs, ys []float64, labels []Label, p Params) (string, error) {
	p, err := p.withDefaults()
	if err != nil {
		return "", plotErrorf(opRenderText, err)
	}
	nodes, err := place(xs, ys, labels, p,
		[2]float64{0, float64(p.Columns - 1)},
		[2]float64{0, float64(p.Rows - 1)})
	if err != nil {
		return "", plotErrorf(opRenderText, err)
	}

	grid := make([][]rune, p.Rows)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(string(blankCell), p.Columns))
	}
	for _, n := range nodes {
		row, col := int(math.Round(n.Y)), int(math.Round(n.X))
		switch cell, m := grid[row][col], marker(n.Label); {
		case cell == blankCell || cell == m:
			grid[row][col] = m
		default:
			grid[row][col] = collisionMark
		}
	}

	lines := make([]string, p.Rows)
	for r, cells := range grid {
		lines[r] = string(cells)
	}

	legend := make([]string, len(nodes))
	for _, n := range nodes {
		entry := fmt.Sprintf("%c %s (%.3f, %.3f)", marker(n.Label), n.Label.Text, xs[n.Index], ys[n.Index])
		if n.Highlight {
			entry = highlightStyle.Render(entry)
		}
		legend[n.Index] = entry
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(p.Title),
		frameStyle.Render(strings.Join(lines, "\n")),
		strings.Join(legend, "\n"),
	), nil
}

// marker is the grid character for a label.
func marker(l Label) rune {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(l.Text))
	if r == utf8.RuneError || unicode.IsSpace(r) {
		return anonymousMark
	}

	return unicode.ToUpper(r)
}
