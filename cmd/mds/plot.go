// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/mds/internal/config"
	"github.com/katalvlaran/mds/mds"
	"github.com/katalvlaran/mds/plot"
	"github.com/spf13/cobra"
)

const (
	plotFormatSVG  = "svg"
	plotFormatText = "text"
)

func plotCmd(a *app) *cobra.Command {
	var (
		in         inputFlags
		paramsPath string
		format     string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Embed in two dimensions and draw a scatter plot",
		Long: `Embed the input in two dimensions and draw a scatter plot, either as an SVG
document or as text for the terminal. Layout parameters (size, padding,
ticks, reverseX/reverseY, includeAxis, showImage, highlight) are read from a
YAML file.`,
		Example: `  mds plot --input cities.csv --params params.yaml --output cities.svg
  mds plot --input points.csv --points --format text`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != plotFormatSVG && format != plotFormatText {
				return fmt.Errorf("--format %q: want svg or text", format)
			}
			params, err := config.LoadPlotParams(paramsPath)
			if err != nil {
				return err
			}

			texts, d, err := in.load(cmd.Context())
			if err != nil {
				return err
			}
			emb, err := mds.Embed(d, min(2, len(d)), a.cfg.MDSOptions()...)
			if err != nil {
				return fmt.Errorf("embed: %w", err)
			}
			xs, ys := emb.XY()
			labels := plot.Labels(texts...)
			a.logger.Debug().Str("input", in.path).Int("items", emb.Len()).Str("format", format).Msg("plotting")

			w, closeOut, err := openOutput(cmd, output)
			if err != nil {
				return err
			}
			if format == plotFormatText {
				var out string
				if out, err = plot.RenderText(xs, ys, labels, params); err == nil {
					_, err = fmt.Fprintln(w, out)
				}
			} else {
				err = plot.WriteSVG(w, xs, ys, labels, params)
			}
			if err != nil {
				_ = closeOut()

				return fmt.Errorf("plot: %w", err)
			}
			a.logger.Info().Str("input", in.path).Int("items", emb.Len()).Msg("plotted")

			return closeOut()
		},
	}

	in.register(cmd)
	cmd.Flags().StringVarP(&paramsPath, "params", "p", "", "YAML file with plot parameters")
	cmd.Flags().StringVarP(&format, "format", "f", plotFormatSVG, "output format: svg, text")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}
