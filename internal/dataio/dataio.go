// SPDX-License-Identifier: MIT

// Package dataio reads distance matrices and point sets from CSV, JSON and
// YAML files and writes embeddings as JSON or CSV.
package dataio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/mds/mds"
)

// Format is a file encoding.
type Format string

// Supported formats.
const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	// ErrUnknownFormat is returned for an unsupported file extension or format name.
	ErrUnknownFormat = errors.New("dataio: unknown format")

	// ErrLabelCount is returned when labels and rows differ in number.
	ErrLabelCount = errors.New("dataio: label count does not match rows")

	// ErrNoData is returned when a file holds no numeric rows.
	ErrNoData = errors.New("dataio: no data")
)

// Dataset is what a reader produced. Exactly one of Distances, Points and
// Sequences is set. Labels is nil when the file carried none.
type Dataset struct {
	Labels    []string
	Distances mds.DistanceMatrix
	Points    [][]float64
	Sequences [][]float64
}

// Len is the number of items.
func (d Dataset) Len() int {
	switch {
	case d.Distances != nil:
		return len(d.Distances)
	case d.Points != nil:
		return len(d.Points)
	default:
		return len(d.Sequences)
	}
}

// ItemLabels returns the labels, or the item indices when there are none.
func (d Dataset) ItemLabels() []string {
	if d.Labels != nil {
		return d.Labels
	}
	out := make([]string, d.Len())
	for i := range out {
		out[i] = strconv.Itoa(i)
	}

	return out
}

// ParseFormat resolves a format name (csv, json, yaml, yml).
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), ".")) {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// ReadDistances loads a distance matrix. CSV files may start with a header
// row of labels; JSON and YAML files hold {labels, distances} or a bare
// array of rows. Shape and value checks are left to the embedder.
func ReadDistances(path string) (Dataset, error) {
	return readFile(path, kindDistances)
}

// ReadPoints loads a point set. CSV rows may start with a label column;
// JSON and YAML files hold {labels, points} or a bare array of rows.
func ReadPoints(path string) (Dataset, error) {
	return readFile(path, kindPoints)
}

// ReadSequences loads time series of possibly different lengths, laid out
// like points: CSV rows with an optional label column, or {labels, sequences}.
func ReadSequences(path string) (Dataset, error) {
	return readFile(path, kindSequences)
}

// kind selects which matrix a document carries.
type kind int

const (
	kindDistances kind = iota
	kindPoints
	kindSequences
)

func (k kind) String() string {
	switch k {
	case kindPoints:
		return "points"
	case kindSequences:
		return "sequences"
	default:
		return "distances"
	}
}

func readFile(path string, k kind) (Dataset, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Dataset{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("open %s: %w", k, err)
	}
	defer f.Close()

	var ds Dataset
	switch format {
	case FormatCSV:
		ds, err = decodeCSV(f, k)
	default:
		ds, err = decodeDocument(f, format, k)
	}
	if err != nil {
		return Dataset{}, fmt.Errorf("read %s from %s: %w", k, path, err)
	}

	return ds, nil
}

// build assembles a Dataset and checks label count.
func build(labels []string, rows [][]float64, k kind) (Dataset, error) {
	if len(rows) == 0 {
		return Dataset{}, ErrNoData
	}
	if labels != nil && len(labels) != len(rows) {
		return Dataset{}, fmt.Errorf("%w: %d labels, %d rows", ErrLabelCount, len(labels), len(rows))
	}
	switch k {
	case kindPoints:
		return Dataset{Labels: labels, Points: rows}, nil
	case kindSequences:
		return Dataset{Labels: labels, Sequences: rows}, nil
	default:
		return Dataset{Labels: labels, Distances: mds.DistanceMatrix(rows)}, nil
	}
}
