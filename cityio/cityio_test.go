package cityio_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/greedytsp/cityio"
	"github.com/katalvlaran/greedytsp/geometry"
	"github.com/katalvlaran/greedytsp/tsp"
)

const squareTSP = `NAME: square4
COMMENT : unit square
TYPE : TSP
DIMENSION: 4
EDGE_WEIGHT_TYPE : EUC_2D
NODE_COORD_SECTION
1 0 0
2 1 0
3 1 1
4 0 1
EOF
`

func solveSquare(t *testing.T) tsp.Result {
	t.Helper()
	inst, err := cityio.ReadTSPLIB(strings.NewReader(squareTSP))
	require.NoError(t, err)
	res, err := tsp.Solve(context.Background(), inst.Cities)
	require.NoError(t, err)
	return res
}

func TestReadTSPLIB(t *testing.T) {
	inst, err := cityio.ReadTSPLIB(strings.NewReader(squareTSP))
	require.NoError(t, err)

	assert.Equal(t, "square4", inst.Name)
	assert.Equal(t, "unit square", inst.Comment)
	require.Len(t, inst.Cities, 4)
	assert.Equal(t, geometry.NewCity("3", 1, 1), inst.Cities[2])
}

func TestReadTSPLIB_Variants(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{
			name: "no dimension, no weight type, ends at input end",
			in:   "NAME: x\nNODE_COORD_SECTION\na 1 2\nb 3 4\n",
			want: 2,
		},
		{
			name: "stops after DIMENSION rows",
			in:   "DIMENSION : 2\nNODE_COORD_SECTION\na 1 2\nb 3 4\ntrailing junk here\n",
			want: 2,
		},
		{
			name: "scientific notation and blank lines",
			in:   "DIMENSION: 2\n\nNODE_COORD_SECTION\n1 1.5e+02 -2\n\n2 0 0\nEOF\n",
			want: 2,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			inst, err := cityio.ReadTSPLIB(strings.NewReader(tc.in))
			require.NoError(t, err)
			assert.Len(t, inst.Cities, tc.want)
		})
	}
}

func TestReadTSPLIB_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"geo weights", "EDGE_WEIGHT_TYPE: GEO\nNODE_COORD_SECTION\n1 0 0\n", cityio.ErrUnsupportedWeightType},
		{"explicit matrix", "EDGE_WEIGHT_TYPE : EXPLICIT\n", cityio.ErrUnsupportedWeightType},
		{"no coordinate section", "NAME: x\nDIMENSION: 2\nEOF\n", cityio.ErrMalformed},
		{"short section", "DIMENSION: 3\nNODE_COORD_SECTION\n1 0 0\n2 1 1\nEOF\n", cityio.ErrMalformed},
		{"bad dimension", "DIMENSION: many\n", cityio.ErrMalformed},
		{"bad coordinate", "NODE_COORD_SECTION\n1 zero 0\n", cityio.ErrMalformed},
		{"missing coordinate", "NODE_COORD_SECTION\n1 0\n", cityio.ErrMalformed},
		{"stray header", "NAME x\n", cityio.ErrMalformed},
		{"atsp", "TYPE: ATSP\n", cityio.ErrMalformed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cityio.ReadTSPLIB(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestTSPLIB_WriteThenRead(t *testing.T) {
	in := &cityio.Instance{
		Name: "tri",
		Cities: []geometry.City{
			geometry.NewCity("p", 0.1, -3),
			geometry.NewCity("q", 1e6, 2.5),
			geometry.NewCity("r", 7, 7),
		},
	}
	var buf bytes.Buffer
	require.NoError(t, cityio.WriteTSPLIB(&buf, in))

	out, err := cityio.ReadTSPLIB(&buf)
	require.NoError(t, err)
	assert.Equal(t, in.Name, out.Name)
	assert.Equal(t, in.Cities, out.Cities)
}

func TestReadCSV(t *testing.T) {
	cities, err := cityio.ReadCSV(strings.NewReader("y,label,x,note\n2,A,1,first\n4,B,3,\n"))
	require.NoError(t, err)
	assert.Equal(t, []geometry.City{geometry.NewCity("A", 1, 2), geometry.NewCity("B", 3, 4)}, cities)

	var buf bytes.Buffer
	require.NoError(t, cityio.WriteCSV(&buf, cities))
	assert.Equal(t, "label,x,y\nA,1,2\nB,3,4\n", buf.String())
}

func TestReadCSV_Errors(t *testing.T) {
	for name, in := range map[string]string{
		"empty":          "",
		"missing column": "label,x\nA,1\n",
		"bad number":     "label,x,y\nA,one,2\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := cityio.ReadCSV(strings.NewReader(in))
			assert.ErrorIs(t, err, cityio.ErrMalformed)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "pts.csv")
	tspPath := filepath.Join(dir, "anon.tsp")
	require.NoError(t, os.WriteFile(csvPath, []byte("label,x,y\nA,0,0\nB,1,1\n"), 0o644))
	require.NoError(t, os.WriteFile(tspPath, []byte("NODE_COORD_SECTION\n1 0 0\n2 3 4\nEOF\n"), 0o644))

	inst, err := cityio.LoadFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t, "pts", inst.Name)
	assert.Len(t, inst.Cities, 2)

	inst, err = cityio.LoadFile(tspPath)
	require.NoError(t, err)
	assert.Equal(t, "anon", inst.Name, "name falls back to the file name")
	assert.Len(t, inst.Cities, 2)

	_, err = cityio.LoadFile(filepath.Join(dir, "missing.tsp"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, cityio.WriteText(&buf, solveSquare(t)))
	assert.Equal(t, "Path: 1 4 3 2 1\nLength: 4.000000\n", buf.String())
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, cityio.WriteYAML(&buf, "square4", solveSquare(t)))

	var doc struct {
		Name       string  `yaml:"name"`
		State      string  `yaml:"state"`
		Length     float64 `yaml:"length"`
		Iterations int     `yaml:"iterations"`
		Tour       []struct {
			ID string `yaml:"id"`
		} `yaml:"tour"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "square4", doc.Name)
	assert.Equal(t, "complete", doc.State)
	assert.InDelta(t, 4.0, doc.Length, 1e-9)
	assert.Equal(t, 2, doc.Iterations)
	require.Len(t, doc.Tour, 4)
	assert.Equal(t, "1", doc.Tour[0].ID)
}

func TestWriteTour(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, cityio.WriteTour(&buf, "square4", solveSquare(t)))

	out := buf.String()
	assert.Contains(t, out, "TYPE : TOUR\n")
	assert.Contains(t, out, "DIMENSION : 4\n")
	assert.True(t, strings.HasSuffix(out, "TOUR_SECTION\n1\n4\n3\n2\n-1\nEOF\n"), out)
}

// TestWriteGeoJSON: the LineString closes the ring back to its first city.
func TestWriteGeoJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, cityio.WriteGeoJSON(&buf, "square4", solveSquare(t)))

	var f struct {
		Type     string `json:"type"`
		ID       string `json:"id"`
		Geometry struct {
			Type        string      `json:"type"`
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Length float64  `json:"length"`
			Cities []string `json:"cities"`
		} `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &f))

	assert.Equal(t, "Feature", f.Type)
	assert.Equal(t, "square4", f.ID)
	assert.Equal(t, "LineString", f.Geometry.Type)
	require.Len(t, f.Geometry.Coordinates, 5)
	assert.Equal(t, f.Geometry.Coordinates[0], f.Geometry.Coordinates[4])
	assert.InDelta(t, 4.0, f.Properties.Length, 1e-9)
	assert.Equal(t, []string{"1", "4", "3", "2"}, f.Properties.Cities)
}

func TestWrite_Dispatch(t *testing.T) {
	res := solveSquare(t)
	for _, format := range cityio.Formats {
		var buf bytes.Buffer
		require.NoError(t, cityio.Write(&buf, format, "sq", res), format)
		assert.NotEmpty(t, buf.String(), format)
	}

	err := cityio.Write(&bytes.Buffer{}, "svg", "sq", res)
	assert.ErrorIs(t, err, cityio.ErrUnknownFormat)
}
