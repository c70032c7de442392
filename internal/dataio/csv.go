// SPDX-License-Identifier: MIT

package dataio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// decodeCSV reads numeric rows. For distances, a first record containing any
// non-numeric field is a label header. For points and sequences, a
// non-numeric first field of every record is that item's label.
func decodeCSV(r io.Reader, k kind) (Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	var (
		labels []string
		rows   [][]float64
		line   int
	)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Dataset{}, fmt.Errorf("csv: %w", err)
		}
		line++

		if k == kindDistances && line == 1 && !allNumeric(record) {
			labels = trimAll(record)
			continue
		}
		rowLabels := k == kindPoints || k == kindSequences
		if rowLabels && len(record) > 0 && !isNumeric(record[0]) {
			if line > 1 && labels == nil {
				return Dataset{}, fmt.Errorf("csv record %d: label column missing on earlier rows", line)
			}
			labels = append(labels, strings.TrimSpace(record[0]))
			record = record[1:]
		} else if rowLabels && labels != nil {
			return Dataset{}, fmt.Errorf("csv record %d: %w", line, ErrLabelCount)
		}

		row, err := parseRow(record)
		if err != nil {
			return Dataset{}, fmt.Errorf("csv record %d: %w", line, err)
		}
		rows = append(rows, row)
	}

	return build(labels, rows, k)
}

// parseRow converts fields to floats.
func parseRow(fields []string) ([]float64, error) {
	row := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i+1, err)
		}
		row[i] = v
	}

	return row, nil
}

func isNumeric(s string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)

	return err == nil
}

func allNumeric(fields []string) bool {
	for _, f := range fields {
		if !isNumeric(f) {
			return false
		}
	}

	return true
}

func trimAll(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = strings.TrimSpace(f)
	}

	return out
}
