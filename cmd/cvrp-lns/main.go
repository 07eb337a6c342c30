// Command cvrp-lns solves a Capacitated Vehicle Routing Problem instance
// with the adaptive LNS engine and prints a single JSON result record to
// stdout.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/cvrp-lns/cvrpcfg"
	"github.com/katalvlaran/cvrp-lns/cvrperr"
	"github.com/katalvlaran/cvrp-lns/fleet"
	"github.com/katalvlaran/cvrp-lns/telemetry"
	"github.com/katalvlaran/cvrp-lns/vrpio"
)

func main() {
	app := &cli.App{
		Name:      "cvrp-lns",
		Usage:     "solve a CVRP instance with adaptive large neighborhood search",
		ArgsUsage: "<instance.vrp>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "workers",
				Value: cvrpcfg.DefaultConfig().Workers,
				Usage: "number of parallel LNS workers",
			},
			&cli.DurationFlag{
				Name:  "time-budget",
				Value: cvrpcfg.DefaultConfig().TimeBudget,
				Usage: "wall-clock budget for the whole run (0 disables it)",
			},
			&cli.IntFlag{
				Name:  "max-iterations",
				Value: 0,
				Usage: "per-worker iteration cap (0 disables it)",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Value: cvrpcfg.DefaultConfig().MasterSeed,
				Usage: "master RNG seed; per-worker streams are derived from it",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Value: false,
				Usage: "enable development-mode structured logging on stderr",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("expected exactly one argument: path to a .vrp instance file", 2)
	}
	path := c.Args().Get(0)

	log, err := newLogger(c.Bool("verbose"))
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck // best-effort flush on exit

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cvrp-lns: opening %s: %w", path, err)
	}
	defer f.Close()

	inst, err := vrpio.Parse(f)
	if err != nil {
		return err
	}

	cfg := cvrpcfg.DefaultConfig()
	cfg.Workers = c.Int("workers")
	cfg.TimeBudget = c.Duration("time-budget")
	cfg.MaxIterations = c.Int("max-iterations")
	cfg.MasterSeed = c.Int64("seed")

	pool := fleet.NewPool(inst, cfg)
	pool.SetLogger(log)

	start := time.Now()
	best, err := pool.Run(context.Background())
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	log.RunComplete(best.Cost, pool.TotalIterations(), elapsed)

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	result := vrpio.NewResult(name, best, elapsed)

	data, err := result.Encode()
	if err != nil {
		return fmt.Errorf("cvrp-lns: encoding result: %w", err)
	}
	fmt.Println(string(data))

	return nil
}

func newLogger(verbose bool) (*telemetry.Logger, error) {
	if verbose {
		return telemetry.NewDevelopment()
	}
	return telemetry.NewProduction()
}

// exitCodeFor maps the engine's fatal sentinel errors to the CLI's process
// exit codes: parse errors and infeasibility are both reported non-zero,
// distinguished for scripts that want to tell them apart.
func exitCodeFor(err error) int {
	var coder cli.ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	switch {
	case errors.Is(err, cvrperr.ErrParse):
		return 2
	case errors.Is(err, cvrperr.ErrInfeasible):
		return 3
	default:
		return 1
	}
}
