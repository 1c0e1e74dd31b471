package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/montanaflynn/stats"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/greedytsp/tsp"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Solve many generated instances and summarize length and time",
	RunE: func(cmd *cobra.Command, _ []string) error {
		flags := cmd.Flags()
		p := benchParams{
			Spec: genSpec{
				Kind:     cfg.Generate.Kind,
				N:        cfg.Bench.N,
				Clusters: cfg.Generate.Clusters,
				Seed:     cfg.Bench.Seed,
			},
			Trials:      cfg.Bench.Trials,
			Concurrency: cfg.Bench.Concurrency,
		}
		if flags.Changed("kind") {
			p.Spec.Kind, _ = flags.GetString("kind")
		}
		if flags.Changed("n") {
			p.Spec.N, _ = flags.GetInt("n")
		}
		if flags.Changed("seed") {
			p.Spec.Seed, _ = flags.GetInt64("seed")
		}
		if flags.Changed("trials") {
			p.Trials, _ = flags.GetInt("trials")
		}
		if flags.Changed("concurrency") {
			p.Concurrency, _ = flags.GetInt("concurrency")
		}

		sum, err := runBench(cmd.Context(), p)
		if err != nil {
			return err
		}
		formatBenchSummary(cmd.OutOrStdout(), sum)
		return nil
	},
}

// benchParams configures a benchmark run. Trial i uses seed Spec.Seed+i.
type benchParams struct {
	Spec        genSpec
	Trials      int
	Concurrency int
}

// trialResult is one solved instance.
type trialResult struct {
	Length float64
	Millis float64
}

// benchSummary aggregates trial results.
type benchSummary struct {
	Kind       string
	Cities     int
	Trials     int
	MeanLength float64
	P50Length  float64
	P90Length  float64
	StdLength  float64
	MeanMillis float64
	P90Millis  float64
	MaxMillis  float64
}

// runBench solves Trials independent instances, at most Concurrency at a
// time. Each solve runs on its own engine.
func runBench(ctx context.Context, p benchParams) (benchSummary, error) {
	if p.Trials < 1 || p.Concurrency < 1 {
		return benchSummary{}, eris.Errorf("bench: trials and concurrency must be >= 1, got %d and %d", p.Trials, p.Concurrency)
	}

	zap.L().Info("bench starting",
		zap.String("kind", p.Spec.Kind),
		zap.Int("cities", p.Spec.N),
		zap.Int("trials", p.Trials),
		zap.Int("concurrency", p.Concurrency),
	)

	results := make([]trialResult, p.Trials)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.Concurrency)

	for i := 0; i < p.Trials; i++ {
		i := i
		spec := p.Spec
		spec.Seed += int64(i)
		g.Go(func() error {
			cities, err := generateCities(spec)
			if err != nil {
				return err
			}

			start := time.Now()
			res, err := tsp.Solve(gctx, cities)
			if err != nil {
				return eris.Wrapf(err, "bench: trial %d", i)
			}
			results[i] = trialResult{
				Length: res.Length,
				Millis: float64(time.Since(start).Microseconds()) / 1000.0,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return benchSummary{}, err
	}

	sum, err := summarize(results)
	if err != nil {
		return benchSummary{}, err
	}
	sum.Kind = p.Spec.Kind
	sum.Cities = p.Spec.N
	return sum, nil
}

// summarize computes length and timing statistics over results.
func summarize(results []trialResult) (benchSummary, error) {
	lengths := make(stats.Float64Data, len(results))
	millis := make(stats.Float64Data, len(results))
	for i, r := range results {
		lengths[i] = r.Length
		millis[i] = r.Millis
	}

	var (
		s   = benchSummary{Trials: len(results)}
		err error
	)
	if s.MeanLength, err = stats.Mean(lengths); err != nil {
		return s, eris.Wrap(err, "bench: mean length")
	}
	if s.P50Length, err = stats.Percentile(lengths, 50); err != nil {
		return s, eris.Wrap(err, "bench: percentile 50 length")
	}
	if s.P90Length, err = stats.Percentile(lengths, 90); err != nil {
		return s, eris.Wrap(err, "bench: percentile 90 length")
	}
	if s.StdLength, err = stats.StandardDeviation(lengths); err != nil {
		return s, eris.Wrap(err, "bench: stddev length")
	}
	if s.MeanMillis, err = stats.Mean(millis); err != nil {
		return s, eris.Wrap(err, "bench: mean time")
	}
	if s.P90Millis, err = stats.Percentile(millis, 90); err != nil {
		return s, eris.Wrap(err, "bench: percentile 90 time")
	}
	if s.MaxMillis, err = stats.Max(millis); err != nil {
		return s, eris.Wrap(err, "bench: max time")
	}
	return s, nil
}

// formatBenchSummary prints a human-readable report.
func formatBenchSummary(w io.Writer, s benchSummary) {
	fmt.Fprintf(w, "%s x %s trials, %s cities each\n",
		s.Kind, humanize.Comma(int64(s.Trials)), humanize.Comma(int64(s.Cities)))
	fmt.Fprintf(w, "length  mean %.3f  p50 %.3f  p90 %.3f  stddev %.3f\n",
		s.MeanLength, s.P50Length, s.P90Length, s.StdLength)
	fmt.Fprintf(w, "time    mean %.3fms  p90 %.3fms  max %.3fms\n",
		s.MeanMillis, s.P90Millis, s.MaxMillis)
}

func init() {
	benchCmd.Flags().String("kind", kindUniform, "instance kind (uniform, circle, grid, clustered)")
	benchCmd.Flags().Int("n", 100, "cities per instance")
	benchCmd.Flags().Int64("seed", 1, "seed of the first trial")
	benchCmd.Flags().Int("trials", 20, "number of instances")
	benchCmd.Flags().Int("concurrency", 4, "instances solved at once")

	rootCmd.AddCommand(benchCmd)
}
