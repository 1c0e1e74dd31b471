package cityio

import "errors"

var (
	// ErrMalformed is returned when an input file does not follow its format.
	ErrMalformed = errors.New("cityio: malformed input")

	// ErrUnsupportedWeightType is returned for TSPLIB files whose
	// EDGE_WEIGHT_TYPE is not EUC_2D.
	ErrUnsupportedWeightType = errors.New("cityio: unsupported edge weight type")

	// ErrUnknownFormat is returned when an output format name is not recognised.
	ErrUnknownFormat = errors.New("cityio: unknown format")
)
