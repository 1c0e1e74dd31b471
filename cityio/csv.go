package cityio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/jszwec/csvutil"

	"github.com/katalvlaran/greedytsp/geometry"
)

// cityRow is the CSV shape of a city.
type cityRow struct {
	Label string  `csv:"label"`
	X     float64 `csv:"x"`
	Y     float64 `csv:"y"`
}

// ReadCSV decodes cities from CSV with a "label,x,y" header. Extra columns
// are ignored; column order follows the header.
func ReadCSV(r io.Reader) ([]geometry.City, error) {
	dec, err := csvutil.NewDecoder(csv.NewReader(r))
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("ReadCSV: empty input: %w", ErrMalformed)
		}
		return nil, fmt.Errorf("ReadCSV: header: %v: %w", err, ErrMalformed)
	}
	if !hasColumns(dec.Header(), "label", "x", "y") {
		return nil, fmt.Errorf("ReadCSV: header %v lacks label,x,y: %w", dec.Header(), ErrMalformed)
	}

	var cities []geometry.City
	for {
		var row cityRow
		if err = dec.Decode(&row); err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ReadCSV: row %d: %v: %w", len(cities)+1, err, ErrMalformed)
		}
		cities = append(cities, geometry.NewCity(row.Label, row.X, row.Y))
	}

	return cities, nil
}

func hasColumns(header []string, want ...string) bool {
	seen := make(map[string]bool, len(header))
	for _, h := range header {
		seen[h] = true
	}
	for _, w := range want {
		if !seen[w] {
			return false
		}
	}
	return true
}

// WriteCSV encodes cities with a "label,x,y" header.
func WriteCSV(w io.Writer, cities []geometry.City) error {
	rows := make([]cityRow, len(cities))
	for i, c := range cities {
		rows[i] = cityRow{Label: c.ID, X: c.X, Y: c.Y}
	}

	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)
	if len(rows) == 0 {
		if err := enc.EncodeHeader(cityRow{}); err != nil {
			return fmt.Errorf("WriteCSV: %w", err)
		}
	} else if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}
	cw.Flush()

	return cw.Error()
}
