// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every variable name.
const EnvPrefix = "MDS"

// EnvConfig holds environment-based configuration.
// Field names map to environment variables with the MDS_ prefix.
type EnvConfig struct {
	// LogLevel is the log verbosity level.
	// Env: MDS_LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: MDS_LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// Dimensions is the default number of output axes.
	// Env: MDS_DIMENSIONS (default: 2)
	Dimensions int `envconfig:"DIMENSIONS" default:"2"`

	// SymmetryTolerance is the relative tolerance of the symmetry check.
	// Env: MDS_SYMMETRY_TOLERANCE (default: 1e-9)
	SymmetryTolerance float64 `envconfig:"SYMMETRY_TOLERANCE" default:"1e-9"`

	// CheckSymmetry enables the symmetry check.
	// Env: MDS_CHECK_SYMMETRY (default: true)
	CheckSymmetry bool `envconfig:"CHECK_SYMMETRY" default:"true"`

	// OutputFormat is the embedding output format (json or csv).
	// Env: MDS_OUTPUT_FORMAT (default: json)
	OutputFormat string `envconfig:"OUTPUT_FORMAT" default:"json"`
}

// LoadFromEnv reads MDS_* variables.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("process env: %w", err)
	}

	return cfg, nil
}

// ToConfig normalizes the raw values.
func (e EnvConfig) ToConfig() Config {
	return Config{
		LogLevel:          strings.ToUpper(strings.TrimSpace(e.LogLevel)),
		LogFormat:         parseLogFormat(e.LogFormat),
		Dimensions:        e.Dimensions,
		SymmetryTolerance: e.SymmetryTolerance,
		CheckSymmetry:     e.CheckSymmetry,
		OutputFormat:      strings.ToLower(strings.TrimSpace(e.OutputFormat)),
	}
}
