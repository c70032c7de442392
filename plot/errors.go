// SPDX-License-Identifier: MIT

package plot

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when there is nothing to draw.
	ErrEmpty = errors.New("plot: no points")

	// ErrLengthMismatch is returned when xs, ys and labels differ in length.
	ErrLengthMismatch = errors.New("plot: xs, ys and labels must have equal length")

	// ErrNonFinite is returned when a coordinate is NaN or ±Inf.
	ErrNonFinite = errors.New("plot: non-finite coordinate")

	// ErrOutOfRange is returned for an item index outside the draw list.
	ErrOutOfRange = errors.New("plot: index out of range")

	// ErrInvalidParams is returned for negative sizes or a padding that leaves
	// no drawing area.
	ErrInvalidParams = errors.New("plot: invalid parameters")
)

// plotErrorf wraps err with an operation tag.
func plotErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
