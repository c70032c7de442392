// SPDX-License-Identifier: MIT

package dataio

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/mds/mds"
)

// Item is one embedded item in JSON output.
type Item struct {
	Label       string    `json:"label"`
	Coordinates []float64 `json:"coordinates"`
}

// Result is the JSON output document.
type Result struct {
	Dimensions int     `json:"dimensions"`
	Stress     float64 `json:"stress"`
	Items      []Item  `json:"items"`
}

// ParseOutputFormat resolves a format name WriteEmbedding supports (json, csv).
func ParseOutputFormat(name string) (Format, error) {
	f, err := ParseFormat(name)
	if err != nil {
		return "", err
	}
	if f != FormatJSON && f != FormatCSV {
		return "", fmt.Errorf("%w: %q for output, want json or csv", ErrUnknownFormat, name)
	}

	return f, nil
}

// WriteEmbedding writes labels and coordinates in the given format. JSON
// carries stress as well; CSV has a header "label,dim1,...,dimk".
func WriteEmbedding(w io.Writer, format Format, labels []string, emb mds.Embedding, stress float64) error {
	if len(labels) != emb.Len() {
		return fmt.Errorf("%w: %d labels, %d rows", ErrLabelCount, len(labels), emb.Len())
	}

	switch format {
	case FormatJSON:
		res := Result{Dimensions: emb.Dims(), Stress: stress, Items: make([]Item, emb.Len())}
		for i, row := range emb {
			res.Items[i] = Item{Label: labels[i], Coordinates: row}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(res)

	case FormatCSV:
		cw := csv.NewWriter(w)
		header := make([]string, 1+emb.Dims())
		header[0] = "label"
		for a := 1; a < len(header); a++ {
			header[a] = "dim" + strconv.Itoa(a)
		}
		if err := cw.Write(header); err != nil {
			return err
		}
		record := make([]string, len(header))
		for i, row := range emb {
			record[0] = labels[i]
			for a, v := range row {
				record[a+1] = strconv.FormatFloat(v, 'g', -1, 64)
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
		cw.Flush()

		return cw.Error()

	default:
		return fmt.Errorf("%w: %q for output", ErrUnknownFormat, format)
	}
}
