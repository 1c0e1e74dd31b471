package main

import (
	"io"
	"math"
	"os"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/greedytsp/cityio"
	"github.com/katalvlaran/greedytsp/geometry"
	"github.com/katalvlaran/greedytsp/instance"
)

// Instance kinds understood by generate and bench.
const (
	kindUniform   = "uniform"
	kindCircle    = "circle"
	kindGrid      = "grid"
	kindClustered = "clustered"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a synthetic instance as TSPLIB or CSV",
	RunE: func(cmd *cobra.Command, _ []string) error {
		flags := cmd.Flags()
		spec := genSpec{
			Kind:     cfg.Generate.Kind,
			N:        cfg.Generate.N,
			Clusters: cfg.Generate.Clusters,
			Seed:     cfg.Generate.Seed,
		}
		if flags.Changed("kind") {
			spec.Kind, _ = flags.GetString("kind")
		}
		if flags.Changed("n") {
			spec.N, _ = flags.GetInt("n")
		}
		if flags.Changed("clusters") {
			spec.Clusters, _ = flags.GetInt("clusters")
		}
		if flags.Changed("seed") {
			spec.Seed, _ = flags.GetInt64("seed")
		}
		format, _ := flags.GetString("format")

		cities, err := generateCities(spec)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if path, _ := flags.GetString("output"); path != "" {
			f, err := os.Create(path)
			if err != nil {
				return eris.Wrap(err, "generate: create output")
			}
			defer f.Close() //nolint:errcheck
			out = f
		}

		zap.L().Info("generated instance",
			zap.String("kind", spec.Kind),
			zap.Int("cities", len(cities)),
			zap.Int64("seed", spec.Seed),
		)
		return writeInstance(out, format, spec.name(), cities)
	},
}

// genSpec describes one synthetic instance.
type genSpec struct {
	Kind     string
	N        int
	Clusters int
	Seed     int64
}

func (s genSpec) name() string {
	return s.Kind + strconv.Itoa(s.N) + "-s" + strconv.FormatInt(s.Seed, 10)
}

// generateCities builds the instance described by s with TSPLIB-style
// labels. A grid holds exactly N cities: the smallest near-square lattice
// that fits N, filled row by row.
func generateCities(s genSpec) ([]geometry.City, error) {
	opts := []instance.Option{instance.WithSeed(s.Seed), instance.WithTSPLIBIDs()}

	var (
		cities []geometry.City
		err    error
	)
	switch s.Kind {
	case kindUniform:
		cities, err = instance.Uniform(s.N, opts...)
	case kindCircle:
		cities, err = instance.Circle(s.N, opts...)
	case kindClustered:
		cities, err = instance.Clustered(s.N, s.Clusters, opts...)
	case kindGrid:
		if s.N < instance.MinGridCities {
			return nil, eris.Errorf("generate: grid needs at least %d cities, got %d", instance.MinGridCities, s.N)
		}
		rows := int(math.Ceil(math.Sqrt(float64(s.N))))
		cols := (s.N + rows - 1) / rows
		cities, err = instance.Grid(rows, cols, opts...)
		if err == nil {
			cities = cities[:s.N]
		}
	default:
		return nil, eris.Errorf("generate: unknown kind %q (want uniform, circle, grid, clustered)", s.Kind)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "generate %s", s.Kind)
	}
	return cities, nil
}

// writeInstance writes cities as TSPLIB ("tsp") or CSV ("csv").
func writeInstance(w io.Writer, format, name string, cities []geometry.City) error {
	switch format {
	case "tsp":
		return cityio.WriteTSPLIB(w, &cityio.Instance{Name: name, Comment: "generated by greedytsp", Cities: cities})
	case "csv":
		return cityio.WriteCSV(w, cities)
	default:
		return eris.Wrapf(cityio.ErrUnknownFormat, "generate: format %q (want tsp, csv)", format)
	}
}

func init() {
	generateCmd.Flags().String("kind", kindUniform, "instance kind (uniform, circle, grid, clustered)")
	generateCmd.Flags().Int("n", 40, "number of cities")
	generateCmd.Flags().Int("clusters", 4, "cluster count for kind=clustered")
	generateCmd.Flags().Int64("seed", 1, "random seed")
	generateCmd.Flags().String("format", "tsp", "file format (tsp, csv)")
	generateCmd.Flags().StringP("output", "o", "", "write to this file instead of stdout")

	rootCmd.AddCommand(generateCmd)
}
