// SPDX-License-Identifier: MIT

package dataio_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/mds/internal/dataio"
	"github.com/katalvlaran/mds/mds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

var triangle = mds.DistanceMatrix{
	{0, 3, 4},
	{3, 0, 5},
	{4, 5, 0},
}

func TestReadDistances_Formats(t *testing.T) {
	for _, tc := range []struct {
		name, file, content string
		labels              []string
	}{
		{name: "csv header", file: "d.csv", content: "a, b, c\n0,3,4\n3,0,5\n4,5,0\n", labels: []string{"a", "b", "c"}},
		{name: "csv bare", file: "d.csv", content: "# triangle\n0,3,4\n3,0,5\n4,5,0\n"},
		{name: "json object", file: "d.json", content: `{"labels":["a","b","c"],"distances":[[0,3,4],[3,0,5],[4,5,0]]}`, labels: []string{"a", "b", "c"}},
		{name: "json array", file: "d.json", content: `[[0,3,4],[3,0,5],[4,5,0]]`},
		{name: "yaml object", file: "d.yaml", content: "labels: [a, b, c]\ndistances:\n  - [0, 3, 4]\n  - [3, 0, 5]\n  - [4, 5, 0]\n", labels: []string{"a", "b", "c"}},
		{name: "yml block array", file: "d.yml", content: "- [0, 3, 4]\n- [3, 0, 5]\n- [4, 5, 0]\n"},
		{name: "yaml commented block array", file: "d.yaml", content: "# triangle\n# 3-4-5\n- [0, 3, 4]\n- [3, 0, 5]\n- [4, 5, 0]\n"},
		{name: "yaml commented flow array", file: "d.yaml", content: "# triangle\n[[0, 3, 4], [3, 0, 5], [4, 5, 0]]\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ds, err := dataio.ReadDistances(writeFile(t, tc.file, tc.content))
			require.NoError(t, err)
			assert.Equal(t, triangle, ds.Distances)
			assert.Nil(t, ds.Points)
			assert.Equal(t, tc.labels, ds.Labels)
			assert.Equal(t, 3, ds.Len())
		})
	}
}

func TestReadPoints_Formats(t *testing.T) {
	want := [][]float64{{0, 0}, {3, 0}, {0, 4}}
	for _, tc := range []struct {
		name, file, content string
		labels              []string
	}{
		{name: "csv labels", file: "p.csv", content: "a,0,0\nb,3,0\nc,0,4\n", labels: []string{"a", "b", "c"}},
		{name: "csv bare", file: "p.csv", content: "0,0\n3,0\n0,4\n"},
		{name: "json", file: "p.json", content: `{"labels":["a","b","c"],"points":[[0,0],[3,0],[0,4]]}`, labels: []string{"a", "b", "c"}},
		{name: "yaml", file: "p.yaml", content: "points: [[0, 0], [3, 0], [0, 4]]\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ds, err := dataio.ReadPoints(writeFile(t, tc.file, tc.content))
			require.NoError(t, err)
			assert.Equal(t, want, ds.Points)
			assert.Nil(t, ds.Distances)
			assert.Equal(t, tc.labels, ds.Labels)
		})
	}
}

func TestRead_Errors(t *testing.T) {
	for _, tc := range []struct {
		name, file, content string
		points              bool
		want                error
	}{
		{name: "extension", file: "d.txt", content: "0", want: dataio.ErrUnknownFormat},
		{name: "empty csv", file: "d.csv", content: "", want: dataio.ErrNoData},
		{name: "empty json", file: "d.json", content: "  ", want: dataio.ErrNoData},
		{name: "missing key", file: "d.json", content: `{"points":[[0]]}`, want: dataio.ErrNoData},
		{name: "label count", file: "d.yaml", content: "labels: [a]\ndistances: [[0, 1], [1, 0]]\n", want: dataio.ErrLabelCount},
		{name: "mixed point labels", file: "p.csv", content: "a,0,0\n3,0\n", points: true, want: dataio.ErrLabelCount},
	} {
		t.Run(tc.name, func(t *testing.T) {
			read := dataio.ReadDistances
			if tc.points {
				read = dataio.ReadPoints
			}
			_, err := read(writeFile(t, tc.file, tc.content))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := dataio.ReadDistances(writeFile(t, "d.csv", "0,1\n1,x\n"))
	assert.ErrorContains(t, err, "csv record 2")

	_, err = dataio.ReadDistances(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]dataio.Format{
		"csv": dataio.FormatCSV, ".JSON": dataio.FormatJSON, "yml": dataio.FormatYAML, "yaml": dataio.FormatYAML,
	} {
		got, err := dataio.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := dataio.ParseFormat("xml")
	assert.ErrorIs(t, err, dataio.ErrUnknownFormat)
}

func TestParseOutputFormat(t *testing.T) {
	got, err := dataio.ParseOutputFormat("CSV")
	require.NoError(t, err)
	assert.Equal(t, dataio.FormatCSV, got)

	for _, name := range []string{"yaml", "yml", "xml"} {
		_, err = dataio.ParseOutputFormat(name)
		assert.ErrorIs(t, err, dataio.ErrUnknownFormat, name)
	}
}

func TestDataset_ItemLabels(t *testing.T) {
	assert.Equal(t, []string{"0", "1", "2"}, dataio.Dataset{Distances: triangle}.ItemLabels())
	assert.Equal(t, []string{"x"}, dataio.Dataset{Labels: []string{"x"}, Points: [][]float64{{1}}}.ItemLabels())
}

func TestWriteEmbedding_JSON(t *testing.T) {
	var buf bytes.Buffer
	emb := mds.Embedding{{1, 2}, {-1.5, 0}}
	require.NoError(t, dataio.WriteEmbedding(&buf, dataio.FormatJSON, []string{"a", "b"}, emb, 0.25))

	var res dataio.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
	assert.Equal(t, dataio.Result{
		Dimensions: 2,
		Stress:     0.25,
		Items: []dataio.Item{
			{Label: "a", Coordinates: []float64{1, 2}},
			{Label: "b", Coordinates: []float64{-1.5, 0}},
		},
	}, res)
}

func TestWriteEmbedding_CSV(t *testing.T) {
	var buf bytes.Buffer
	emb := mds.Embedding{{1, 2}, {-1.5, 0}}
	require.NoError(t, dataio.WriteEmbedding(&buf, dataio.FormatCSV, []string{"a", "b,c"}, emb, 0))

	assert.Equal(t, "label,dim1,dim2\na,1,2\n\"b,c\",-1.5,0\n", buf.String())
}

func TestWriteEmbedding_Errors(t *testing.T) {
	var buf bytes.Buffer
	emb := mds.Embedding{{1}}
	assert.ErrorIs(t, dataio.WriteEmbedding(&buf, dataio.FormatCSV, nil, emb, 0), dataio.ErrLabelCount)
	assert.ErrorIs(t, dataio.WriteEmbedding(&buf, dataio.FormatYAML, []string{"a"}, emb, 0), dataio.ErrUnknownFormat)
	assert.Zero(t, buf.Len())
}

func TestRoundTrip_CSVToEmbedding(t *testing.T) {
	path := writeFile(t, "square.csv", strings.Join([]string{
		"nw,ne,se,sw",
		"0,1,1.4142135623730951,1",
		"1,0,1,1.4142135623730951",
		"1.4142135623730951,1,0,1",
		"1,1.4142135623730951,1,0",
	}, "\n"))
	ds, err := dataio.ReadDistances(path)
	require.NoError(t, err)

	emb, err := mds.Embed(ds.Distances, 2)
	require.NoError(t, err)
	stress, err := mds.Stress(ds.Distances, emb)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dataio.WriteEmbedding(&buf, dataio.FormatJSON, ds.ItemLabels(), emb, stress))
	assert.Contains(t, buf.String(), `"label": "sw"`)
}

func TestReadSequences(t *testing.T) {
	ds, err := dataio.ReadSequences(writeFile(t, "s.csv", "up,0,1,2,3\nflat,1,1\ndown,3,2,1\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"up", "flat", "down"}, ds.Labels)
	assert.Equal(t, [][]float64{{0, 1, 2, 3}, {1, 1}, {3, 2, 1}}, ds.Sequences)
	assert.Nil(t, ds.Points)
	assert.Equal(t, 3, ds.Len())

	ds, err = dataio.ReadSequences(writeFile(t, "s.yaml", "sequences:\n  - [0, 1]\n  - [2]\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 1}, {2}}, ds.Sequences)
	assert.Equal(t, []string{"0", "1"}, ds.ItemLabels())
}
