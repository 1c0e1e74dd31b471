package cityio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/greedytsp/geometry"
)

// TSPLIB keywords understood by the reader.
const (
	keyName       = "NAME"
	keyComment    = "COMMENT"
	keyType       = "TYPE"
	keyDimension  = "DIMENSION"
	keyWeightType = "EDGE_WEIGHT_TYPE"
	keyCoords     = "NODE_COORD_SECTION"
	keyEOF        = "EOF"

	weightEuc2D = "EUC_2D"
)

// Instance is a named list of cities.
type Instance struct {
	Name    string
	Comment string
	Cities  []geometry.City
}

// ReadTSPLIB parses a TSPLIB problem file.
//
// Header lines are accepted as "KEY: value" and "KEY : value". The
// coordinate section ends at EOF, at end of input, or after DIMENSION rows
// when DIMENSION is given. Unknown header keys are ignored.
//
// Errors: ErrUnsupportedWeightType, ErrMalformed.
func ReadTSPLIB(r io.Reader) (*Instance, error) {
	var (
		inst      = &Instance{}
		dimension = -1
		inCoords  bool
		lineNo    int
		sc        = bufio.NewScanner(r)
	)

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == keyEOF {
			break
		}

		if inCoords {
			if dimension >= 0 && len(inst.Cities) == dimension {
				break
			}
			c, err := parseCoordLine(line)
			if err != nil {
				return nil, fmt.Errorf("ReadTSPLIB: line %d: %w", lineNo, err)
			}
			inst.Cities = append(inst.Cities, c)
			continue
		}

		if line == keyCoords {
			inCoords = true
			continue
		}

		key, val, ok := splitHeader(line)
		if !ok {
			return nil, fmt.Errorf("ReadTSPLIB: line %d: unexpected %q: %w", lineNo, line, ErrMalformed)
		}
		switch key {
		case keyName:
			inst.Name = val
		case keyComment:
			inst.Comment = val
		case keyDimension:
			d, err := strconv.Atoi(val)
			if err != nil || d < 0 {
				return nil, fmt.Errorf("ReadTSPLIB: line %d: bad dimension %q: %w", lineNo, val, ErrMalformed)
			}
			dimension = d
		case keyWeightType:
			if val != weightEuc2D {
				return nil, fmt.Errorf("ReadTSPLIB: %q: %w", val, ErrUnsupportedWeightType)
			}
		case keyType:
			if val != "TSP" {
				return nil, fmt.Errorf("ReadTSPLIB: problem type %q: %w", val, ErrMalformed)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadTSPLIB: %w", err)
	}

	if !inCoords {
		return nil, fmt.Errorf("ReadTSPLIB: no %s: %w", keyCoords, ErrMalformed)
	}
	if dimension >= 0 && len(inst.Cities) != dimension {
		return nil, fmt.Errorf("ReadTSPLIB: got %d coordinates, DIMENSION=%d: %w",
			len(inst.Cities), dimension, ErrMalformed)
	}

	return inst, nil
}

// splitHeader splits "KEY: value" or "KEY : value".
func splitHeader(line string) (key, val string, ok bool) {
	i := strings.IndexByte(line, ':')
	if i < 0 {
		return "", "", false
	}
	key = strings.TrimSpace(line[:i])
	val = strings.TrimSpace(line[i+1:])

	return key, val, key != ""
}

// parseCoordLine reads "label x y".
func parseCoordLine(line string) (geometry.City, error) {
	f := strings.Fields(line)
	if len(f) != 3 {
		return geometry.City{}, fmt.Errorf("want \"label x y\", got %q: %w", line, ErrMalformed)
	}
	x, err := strconv.ParseFloat(f[1], 64)
	if err != nil {
		return geometry.City{}, fmt.Errorf("x %q: %w", f[1], ErrMalformed)
	}
	y, err := strconv.ParseFloat(f[2], 64)
	if err != nil {
		return geometry.City{}, fmt.Errorf("y %q: %w", f[2], ErrMalformed)
	}

	return geometry.NewCity(f[0], x, y), nil
}

// WriteTSPLIB writes inst as an EUC_2D TSPLIB problem file.
func WriteTSPLIB(w io.Writer, inst *Instance) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s : %s\n", keyName, inst.Name)
	if inst.Comment != "" {
		fmt.Fprintf(bw, "%s : %s\n", keyComment, inst.Comment)
	}
	fmt.Fprintf(bw, "%s : TSP\n", keyType)
	fmt.Fprintf(bw, "%s : %d\n", keyDimension, len(inst.Cities))
	fmt.Fprintf(bw, "%s : %s\n", keyWeightType, weightEuc2D)
	fmt.Fprintln(bw, keyCoords)
	for _, c := range inst.Cities {
		fmt.Fprintf(bw, "%s %s %s\n", c.ID, formatCoord(c.X), formatCoord(c.Y))
	}
	fmt.Fprintln(bw, keyEOF)

	return bw.Flush()
}

// formatCoord prints the shortest representation that parses back exactly.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
