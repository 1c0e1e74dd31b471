package cityio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/greedytsp/tsp"
)

// Output format names accepted by Write.
const (
	FormatText    = "text"
	FormatYAML    = "yaml"
	FormatTour    = "tour"
	FormatGeoJSON = "geojson"
)

// Formats lists the output format names in display order.
var Formats = []string{FormatText, FormatYAML, FormatTour, FormatGeoJSON}

// Write renders res in the named format. name labels the tour where the
// format has room for it.
func Write(w io.Writer, format, name string, res tsp.Result) error {
	switch format {
	case FormatText:
		return WriteText(w, res)
	case FormatYAML:
		return WriteYAML(w, name, res)
	case FormatTour:
		return WriteTour(w, name, res)
	case FormatGeoJSON:
		return WriteGeoJSON(w, name, res)
	default:
		return fmt.Errorf("Write: %q (want one of %s): %w", format, strings.Join(Formats, ", "), ErrUnknownFormat)
	}
}

// WriteText prints the visiting order, closed back to the first city,
// followed by the tour length:
//
//	Path: A D C B A
//	Length: 4.000000
func WriteText(w io.Writer, res tsp.Result) error {
	labels := res.Labels()
	if len(labels) > 0 {
		labels = append(labels, labels[0])
	}
	_, err := fmt.Fprintf(w, "Path: %s\nLength: %.6f\n", strings.Join(labels, " "), res.Length)

	return err
}

// tourDoc is the YAML shape of a solved tour.
type tourDoc struct {
	Name       string       `yaml:"name,omitempty"`
	State      string       `yaml:"state"`
	Length     float64      `yaml:"length"`
	Iterations int          `yaml:"iterations"`
	Tour       []cityRecord `yaml:"tour"`
}

type cityRecord struct {
	ID string  `yaml:"id"`
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
}

// WriteYAML writes res as a YAML document.
func WriteYAML(w io.Writer, name string, res tsp.Result) error {
	doc := tourDoc{
		Name:       name,
		State:      res.State.String(),
		Length:     res.Length,
		Iterations: res.Iterations,
		Tour:       make([]cityRecord, len(res.Tour)),
	}
	for i, c := range res.Tour {
		doc.Tour[i] = cityRecord{ID: c.ID, X: c.X, Y: c.Y}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("WriteYAML: %w", err)
	}

	return enc.Close()
}

// WriteTour writes res as a TSPLIB TOUR file. The section lists labels in
// visiting order and is terminated by -1.
func WriteTour(w io.Writer, name string, res tsp.Result) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s : %s\n", keyName, name)
	fmt.Fprintf(bw, "%s : length %.6f\n", keyComment, res.Length)
	fmt.Fprintf(bw, "%s : TOUR\n", keyType)
	fmt.Fprintf(bw, "%s : %d\n", keyDimension, len(res.Tour))
	fmt.Fprintln(bw, "TOUR_SECTION")
	for _, c := range res.Tour {
		fmt.Fprintln(bw, c.ID)
	}
	fmt.Fprintln(bw, "-1")
	fmt.Fprintln(bw, keyEOF)

	return bw.Flush()
}

// WriteGeoJSON writes res as a GeoJSON Feature whose geometry is the closed
// tour: a LineString that repeats the first city at the end. Properties
// carry the length and the labels in visiting order.
func WriteGeoJSON(w io.Writer, name string, res tsp.Result) error {
	flat := make([]float64, 0, 2*(len(res.Tour)+1))
	for _, c := range res.Tour {
		flat = append(flat, c.X, c.Y)
	}
	if len(res.Tour) > 0 {
		flat = append(flat, res.Tour[0].X, res.Tour[0].Y)
	}

	feature := &geojson.Feature{
		ID:       name,
		Geometry: geom.NewLineStringFlat(geom.XY, flat),
		Properties: map[string]interface{}{
			"length": res.Length,
			"cities": res.Labels(),
		},
	}

	data, err := json.Marshal(feature)
	if err != nil {
		return fmt.Errorf("WriteGeoJSON: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)

	return err
}
