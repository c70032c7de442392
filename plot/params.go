// SPDX-License-Identifier: MIT

package plot

import "fmt"

// Defaults applied to zero-valued Params fields.
const (
	DefaultPadding     = 32
	DefaultWidth       = 800
	DefaultHeight      = 600
	DefaultPointRadius = 3
	DefaultTicks       = 7
	DefaultColumns     = 64
	DefaultRows        = 20
	DefaultTitle       = "MDS embedding"

	imageSize = 50
	rectSize  = 80
)

const (
	borderStyle       = "fill:rgb(255,255,255);stroke-width:4;stroke:rgb(255,255,0)"
	hiddenBorderStyle = "visibility:hidden;" + borderStyle
)

// Label is the caption of one item. Image, when set, is the thumbnail href
// used in ShowImage mode; otherwise Text is used as the href. Link, when set,
// makes the item a hyperlink.
type Label struct {
	Text  string `json:"text" yaml:"text"`
	Image string `json:"image,omitempty" yaml:"image,omitempty"`
	Link  string `json:"link,omitempty" yaml:"link,omitempty"`
}

// href is the image reference for ShowImage mode.
func (l Label) href() string {
	if l.Image != "" {
		return l.Image
	}

	return l.Text
}

// Labels wraps plain strings as text-only labels.
func Labels(texts ...string) []Label {
	out := make([]Label, len(texts))
	for i, t := range texts {
		out[i] = Label{Text: t}
	}

	return out
}

// Params controls layout. Zero values select the documented defaults, so
// Params{} is a valid configuration.
type Params struct {
	Padding     float64 `json:"padding" yaml:"padding"`
	Width       float64 `json:"width" yaml:"width"`
	Height      float64 `json:"height" yaml:"height"`
	PointRadius float64 `json:"pointRadius" yaml:"pointRadius"`
	XTicks      int     `json:"xTicks" yaml:"xTicks"`
	YTicks      int     `json:"yTicks" yaml:"yTicks"`
	ReverseX    bool    `json:"reverseX" yaml:"reverseX"`
	ReverseY    bool    `json:"reverseY" yaml:"reverseY"`
	IncludeAxis bool    `json:"includeAxis" yaml:"includeAxis"`
	ShowImage   bool    `json:"showImage" yaml:"showImage"`

	// Highlight lists item indices drawn last and emphasized.
	Highlight []int `json:"highlight,omitempty" yaml:"highlight,omitempty"`

	// Terminal rendering.
	Columns int    `json:"columns" yaml:"columns"`
	Rows    int    `json:"rows" yaml:"rows"`
	Title   string `json:"title" yaml:"title"`
}

// withDefaults fills zero fields and rejects values that leave no drawing area.
func (p Params) withDefaults() (Params, error) {
	if p.Padding == 0 {
		p.Padding = DefaultPadding
	}
	if p.Width == 0 {
		p.Width = DefaultWidth
	}
	if p.Height == 0 {
		p.Height = DefaultHeight
	}
	if p.PointRadius == 0 {
		p.PointRadius = DefaultPointRadius
	}
	if p.XTicks == 0 {
		p.XTicks = DefaultTicks
	}
	if p.YTicks == 0 {
		p.YTicks = DefaultTicks
	}
	if p.Columns == 0 {
		p.Columns = DefaultColumns
	}
	if p.Rows == 0 {
		p.Rows = DefaultRows
	}
	if p.Title == "" {
		p.Title = DefaultTitle
	}

	switch {
	case p.Padding < 0 || p.PointRadius < 0 || p.XTicks < 0 || p.YTicks < 0:
		return p, fmt.Errorf("negative padding, radius or ticks: %w", ErrInvalidParams)
	case p.Width <= 2*p.Padding || p.Height <= 2*p.Padding:
		return p, fmt.Errorf("%gx%g canvas with padding %g: %w", p.Width, p.Height, p.Padding, ErrInvalidParams)
	case p.Columns < 2 || p.Rows < 2:
		return p, fmt.Errorf("%dx%d text grid: %w", p.Columns, p.Rows, ErrInvalidParams)
	}

	return p, nil
}
