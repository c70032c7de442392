// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/mds/plot"
	"gopkg.in/yaml.v3"
)

// LoadPlotParams reads plot.Params from a YAML file. An empty path yields the
// zero Params (all defaults). Unknown keys are rejected.
//
// Example file:
//
//	width: 1024
//	height: 768
//	includeAxis: true
//	reverseY: true
func LoadPlotParams(path string) (plot.Params, error) {
	if path == "" {
		return plot.Params{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return plot.Params{}, fmt.Errorf("open plot params: %w", err)
	}
	defer f.Close()

	return DecodePlotParams(f)
}

// DecodePlotParams decodes YAML plot parameters from r.
func DecodePlotParams(r io.Reader) (plot.Params, error) {
	var p plot.Params
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return plot.Params{}, fmt.Errorf("decode plot params: %w", err)
	}

	return p, nil
}
