// SPDX-License-Identifier: MIT

// Package config provides the mds CLI configuration: an optional .env file,
// MDS_* environment variables and YAML plot-parameter files.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/mds/mds"
)

// LogFormat is the log output format.
type LogFormat string

// Log formats.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// Output formats for embeddings.
const (
	OutputJSON = "json"
	OutputCSV  = "csv"
)

// Defaults; env.go struct tags must stay in sync with these.
const (
	DefaultLogLevel          = "INFO"
	DefaultLogFormat         = LogFormatPretty
	DefaultOutputFormat      = OutputJSON
	DefaultDimensions        = mds.DefaultDimensions
	DefaultSymmetryTolerance = mds.DefaultSymmetryTolerance
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the resolved CLI configuration.
type Config struct {
	LogLevel          string
	LogFormat         LogFormat
	Dimensions        int
	SymmetryTolerance float64
	CheckSymmetry     bool
	OutputFormat      string
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		LogLevel:          DefaultLogLevel,
		LogFormat:         DefaultLogFormat,
		Dimensions:        DefaultDimensions,
		SymmetryTolerance: DefaultSymmetryTolerance,
		CheckSymmetry:     true,
		OutputFormat:      DefaultOutputFormat,
	}
}

// Validate rejects values the embedder or the writers cannot use.
func (c Config) Validate() error {
	switch {
	case c.Dimensions < 1:
		return fmt.Errorf("%w: dimensions %d, want >= 1", ErrInvalidConfig, c.Dimensions)
	case c.SymmetryTolerance < 0 || math.IsNaN(c.SymmetryTolerance) || math.IsInf(c.SymmetryTolerance, 0):
		return fmt.Errorf("%w: symmetry tolerance %g, want >= 0", ErrInvalidConfig, c.SymmetryTolerance)
	case c.OutputFormat != OutputJSON && c.OutputFormat != OutputCSV:
		return fmt.Errorf("%w: output format %q, want json or csv", ErrInvalidConfig, c.OutputFormat)
	case c.LogFormat != LogFormatPretty && c.LogFormat != LogFormatJSON:
		return fmt.Errorf("%w: log format %q, want pretty or json", ErrInvalidConfig, c.LogFormat)
	}

	return nil
}

// MDSOptions translates the configuration into embedder options. The number
// of dimensions is passed separately to mds.Embed.
func (c Config) MDSOptions() []mds.Option {
	if !c.CheckSymmetry {
		return []mds.Option{mds.WithoutSymmetryCheck()}
	}

	return []mds.Option{mds.WithSymmetryTolerance(c.SymmetryTolerance)}
}

// LoadConfig loads an optional .env file, then MDS_* environment variables,
// and validates the result. Variables already present in the environment win
// over the .env file.
func LoadConfig(envPath string) (Config, error) {
	if err := LoadDotEnv(envPath); err != nil {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	env, err := LoadFromEnv()
	if err != nil {
		return Config{}, err
	}

	cfg := env.ToConfig()
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// parseLogFormat maps a free-form string onto a LogFormat.
func parseLogFormat(s string) LogFormat {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return LogFormatJSON
	case "pretty", "text", "console", "":
		return LogFormatPretty
	default:
		return LogFormat(s)
	}
}
