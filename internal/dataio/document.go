// SPDX-License-Identifier: MIT

package dataio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// document is the object form of a JSON or YAML input file.
type document struct {
	Labels    []string    `json:"labels" yaml:"labels"`
	Distances [][]float64 `json:"distances" yaml:"distances"`
	Points    [][]float64 `json:"points" yaml:"points"`
	Sequences [][]float64 `json:"sequences" yaml:"sequences"`
}

// decodeDocument reads {labels, distances|points|sequences} or a bare array of rows.
func decodeDocument(r io.Reader, format Format, k kind) (Dataset, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Dataset{}, err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Dataset{}, ErrNoData
	}

	unmarshal := json.Unmarshal
	if format == FormatYAML {
		unmarshal = yaml.Unmarshal
	}

	if isArray(raw, format) {
		var rows [][]float64
		if err = unmarshal(raw, &rows); err != nil {
			return Dataset{}, fmt.Errorf("%s: %w", format, err)
		}

		return build(nil, rows, k)
	}

	var doc document
	if err = unmarshal(raw, &doc); err != nil {
		return Dataset{}, fmt.Errorf("%s: %w", format, err)
	}
	rows := doc.Distances
	switch k {
	case kindPoints:
		rows = doc.Points
	case kindSequences:
		rows = doc.Sequences
	}
	if rows == nil {
		return Dataset{}, fmt.Errorf("%s: missing %q key: %w", format, k.String(), ErrNoData)
	}

	return build(doc.Labels, rows, k)
}

// isArray reports whether a trimmed document is a top-level sequence. YAML
// is parsed into a node tree so comments and flow or block style don't matter.
func isArray(raw []byte, format Format) bool {
	if format != FormatYAML {
		return raw[0] == '['
	}
	var root yaml.Node
	if err := yaml.Unmarshal(raw, &root); err != nil {
		return false
	}

	return root.Kind == yaml.DocumentNode && len(root.Content) > 0 && root.Content[0].Kind == yaml.SequenceNode
}
