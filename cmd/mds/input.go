// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/mds/internal/dataio"
	"github.com/katalvlaran/mds/mds"
	"github.com/katalvlaran/mds/series"
	"github.com/spf13/cobra"
)

// inputFlags describes where the distances come from.
type inputFlags struct {
	path         string
	points       bool
	sequences    bool
	window       int
	slopePenalty float64
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.path, "input", "i", "", "input file (.csv, .json, .yaml)")
	cmd.Flags().BoolVar(&f.points, "points", false, "input holds point coordinates; distances are Euclidean")
	cmd.Flags().BoolVar(&f.sequences, "sequences", false, "input holds time series; distances are DTW")
	cmd.Flags().IntVar(&f.window, "window", series.NoWindow, "DTW Sakoe-Chiba band (-1: none)")
	cmd.Flags().Float64Var(&f.slopePenalty, "slope-penalty", 0, "DTW cost of a non-diagonal step")
	cmd.MarkFlagsMutuallyExclusive("points", "sequences")
	_ = cmd.MarkFlagRequired("input")
}

// load reads the input and returns item labels and their distance matrix.
func (f *inputFlags) load(ctx context.Context) ([]string, mds.DistanceMatrix, error) {
	switch {
	case f.points:
		ds, err := dataio.ReadPoints(f.path)
		if err != nil {
			return nil, nil, err
		}
		d, err := mds.EuclideanDistances(ds.Points)
		if err != nil {
			return nil, nil, fmt.Errorf("distances from points: %w", err)
		}

		return ds.ItemLabels(), d, nil

	case f.sequences:
		ds, err := dataio.ReadSequences(f.path)
		if err != nil {
			return nil, nil, err
		}
		opts := series.Options{Window: f.window, SlopePenalty: f.slopePenalty}
		d, err := series.Distances(ctx, ds.Sequences, opts)
		if err != nil {
			return nil, nil, fmt.Errorf("distances from sequences: %w", err)
		}

		return ds.ItemLabels(), d, nil

	default:
		ds, err := dataio.ReadDistances(f.path)
		if err != nil {
			return nil, nil, err
		}

		return ds.ItemLabels(), ds.Distances, nil
	}
}

// openOutput returns stdout when path is empty, otherwise a created file.
// The returned close function must always be called.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}

	return f, f.Close, nil
}
