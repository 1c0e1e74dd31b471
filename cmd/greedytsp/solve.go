package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/greedytsp/cityio"
	"github.com/katalvlaran/greedytsp/tsp"
)

var solveCmd = &cobra.Command{
	Use:   "solve <file>",
	Short: "Build a tour for a TSPLIB or CSV instance",
	Long:  "Reads cities from a TSPLIB .tsp file (EUC_2D) or a label,x,y CSV file and prints the greedy insertion tour.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := solveParamsFromFlags(cmd)
		if err != nil {
			return err
		}

		inst, err := cityio.LoadFile(args[0])
		if err != nil {
			return eris.Wrap(err, "solve: load instance")
		}

		out := cmd.OutOrStdout()
		if path, _ := cmd.Flags().GetString("output"); path != "" {
			f, err := os.Create(path)
			if err != nil {
				return eris.Wrap(err, "solve: create output")
			}
			defer f.Close() //nolint:errcheck
			out = f
		}

		_, err = runSolve(cmd.Context(), inst, params, out, cmd.ErrOrStderr())
		return err
	},
}

// solveParams collects everything runSolve needs beyond the instance.
type solveParams struct {
	Format          string
	Start           int
	CheckInvariants bool
	TimeLimit       time.Duration
	Trace           bool
}

// solveParamsFromFlags starts from the loaded config and applies any flag
// the user set explicitly.
func solveParamsFromFlags(cmd *cobra.Command) (solveParams, error) {
	p := solveParams{
		Format:          cfg.Output.Format,
		Start:           cfg.Solve.Start,
		CheckInvariants: cfg.Solve.CheckInvariants,
		TimeLimit:       cfg.Solve.TimeLimit,
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		p.Format, _ = flags.GetString("format")
	}
	if flags.Changed("start") {
		p.Start, _ = flags.GetInt("start")
	}
	if flags.Changed("check-invariants") {
		p.CheckInvariants, _ = flags.GetBool("check-invariants")
	}
	if flags.Changed("time-limit") {
		p.TimeLimit, _ = flags.GetDuration("time-limit")
	}
	p.Trace, _ = flags.GetBool("trace")

	if p.Start < 0 {
		return p, eris.Errorf("solve: --start must be >= 0, got %d", p.Start)
	}
	return p, nil
}

// runSolve solves inst and renders the result to out. Trace lines and the
// timing summary go to diag.
func runSolve(ctx context.Context, inst *cityio.Instance, p solveParams, out, diag io.Writer) (tsp.Result, error) {
	if p.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.TimeLimit)
		defer cancel()
	}

	log := zap.L().With(zap.String("instance", inst.Name))

	opts := []tsp.Option{
		tsp.WithStart(p.Start),
		tsp.WithLogger(log),
		tsp.WithInvariantChecks(p.CheckInvariants),
	}
	if p.Trace {
		opts = append(opts, tsp.WithObserver(func(s tsp.Step) {
			fmt.Fprintf(diag, "#%d insert %s between %s and %s (distance %.6f, tour %d, remaining %d)\n",
				s.Iteration, s.City.ID, s.EdgeStart.ID, s.EdgeEnd.ID, s.Distance, s.TourSize, s.Remaining)
		}))
	}

	start := time.Now()
	res, err := tsp.Solve(ctx, inst.Cities, opts...)
	elapsed := time.Since(start)
	if err != nil {
		log.Error("solve failed",
			zap.String("state", res.State.String()),
			zap.Int("iterations", res.Iterations),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		return res, eris.Wrap(err, "solve")
	}

	log.Info("solve complete",
		zap.Int("cities", len(res.Tour)),
		zap.Float64("length", res.Length),
		zap.Int("iterations", res.Iterations),
		zap.Duration("elapsed", elapsed),
	)
	fmt.Fprintf(diag, "%s: %s cities, length %s, %s\n",
		inst.Name, humanize.Comma(int64(len(res.Tour))), humanize.Commaf(math.Round(res.Length*1e3)/1e3), elapsed.Round(time.Microsecond))

	if err := cityio.Write(out, p.Format, inst.Name, res); err != nil {
		return res, eris.Wrap(err, "solve: write result")
	}
	return res, nil
}

func init() {
	solveCmd.Flags().String("format", "text", "output format (text, yaml, tour, geojson)")
	solveCmd.Flags().StringP("output", "o", "", "write the result to this file instead of stdout")
	solveCmd.Flags().Int("start", 0, "index of the anchor city")
	solveCmd.Flags().Bool("check-invariants", false, "verify tour coverage after every insertion")
	solveCmd.Flags().Duration("time-limit", 0, "stop after this long (0 = no limit)")
	solveCmd.Flags().Bool("trace", false, "print every insertion to stderr")

	rootCmd.AddCommand(solveCmd)
}
