// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/katalvlaran/mds/internal/dataio"
	"github.com/katalvlaran/mds/mds"
	"github.com/spf13/cobra"
)

func embedCmd(a *app) *cobra.Command {
	var (
		in         inputFlags
		dims       int
		format     string
		output     string
		strictRank float64
		noSymCheck bool
	)

	cmd := &cobra.Command{
		Use:   "embed",
		Short: "Compute a classic MDS embedding",
		Long: `Compute a classic MDS embedding of a distance matrix (or of a point set with
--points, or of time series with --sequences) and write labels, coordinates
and stress as JSON or CSV.

Input formats are chosen by extension: .csv, .json, .yaml/.yml.`,
		Example: `  mds embed --input cities.csv --dims 2
  mds embed --input points.json --points --format csv --output out.csv
  mds embed --input signals.csv --sequences --window 5`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dims == 0 {
				dims = a.cfg.Dimensions
			}
			if format == "" {
				format = a.cfg.OutputFormat
			}
			outFormat, err := dataio.ParseOutputFormat(format)
			if err != nil {
				return err
			}

			opts := a.cfg.MDSOptions()
			if noSymCheck {
				opts = append(opts, mds.WithoutSymmetryCheck())
			}
			if cmd.Flags().Changed("strict-rank") {
				if strictRank < 0 || strictRank >= 1 {
					return fmt.Errorf("--strict-rank %g: want 0 <= tol < 1", strictRank)
				}
				opts = append(opts, mds.WithStrictRank(strictRank))
			}

			labels, d, err := in.load(cmd.Context())
			if err != nil {
				return err
			}

			start := time.Now()
			emb, err := mds.Embed(d, dims, opts...)
			if err != nil {
				a.logger.Error().Err(err).Str("input", in.path).Int("items", len(d)).Int("dims", dims).Msg("embedding failed")

				return fmt.Errorf("embed: %w", err)
			}
			stress, err := mds.Stress(d, emb)
			if err != nil {
				return fmt.Errorf("stress: %w", err)
			}
			a.logger.Info().
				Str("input", in.path).
				Int("items", emb.Len()).
				Int("dims", emb.Dims()).
				Float64("stress", stress).
				Dur("took", time.Since(start)).
				Msg("embedded")

			w, closeOut, err := openOutput(cmd, output)
			if err != nil {
				return err
			}
			if err = dataio.WriteEmbedding(w, outFormat, labels, emb, stress); err != nil {
				_ = closeOut()

				return fmt.Errorf("write embedding: %w", err)
			}

			return closeOut()
		},
	}

	in.register(cmd)
	cmd.Flags().IntVarP(&dims, "dims", "k", 0, "output dimensions (default: MDS_DIMENSIONS or 2)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: json, csv (default: MDS_OUTPUT_FORMAT or json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().Float64Var(&strictRank, "strict-rank", 0, "fail when fewer than k singular values exceed tol*S[0]")
	cmd.Flags().BoolVar(&noSymCheck, "no-symmetry-check", false, "accept asymmetric input")

	return cmd
}
