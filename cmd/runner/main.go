// Command runner is the query-runner binary (spec §6): it loads a
// derived graph and a query file, runs every query through the label-
// setting search under a configurable potential/heuristic, and writes
// one JSON result line per query to stdout or a file.
//
// Flags override a YAML file named by CHARGE_CONFIG, which in turn
// overrides the built-in defaults; CHARGE_-prefixed environment
// variables (e.g. CHARGE_TAIL_MEMORY) override everything.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ocharge/chargepath/chargelog"
	"github.com/ocharge/chargepath/ioformat"
	"github.com/ocharge/chargepath/runconfig"
	"github.com/ocharge/chargepath/stats"
)

// exit codes, spec §6.
const (
	exitOK            = 0
	exitBadArgs       = 1
	exitIOFailure     = 2
	exitSignalAborted = 130
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var raw runconfig.RawFlags
	exitCode := exitOK

	root := &cobra.Command{
		Use:           "runner",
		Short:         "multi-criteria EV route search over a derived tradeoff graph",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			code, err := execute(raw)
			exitCode = code
			return err
		},
	}

	flags := root.Flags()
	flags.StringVar(&raw.Queries, "queries", "", "path to the query CSV file")
	flags.StringVar(&raw.Graph, "graph", "", "base path prefix of the derived graph binary files")
	flags.Float64Var(&raw.Capacity, "capacity", 0, "battery capacity in watt-hours")
	flags.StringVar(&raw.Potential, "potential", "", "none|fastest|omega|lazy_omega|lazy_fastest")
	flags.Float64Var(&raw.XEps, "x-eps", 0, "time-axis epsilon, seconds")
	flags.Float64Var(&raw.YEps, "y-eps", 0, "energy-axis epsilon, watt-hours")
	flags.Float64Var(&raw.ChargingPenalty, "charging-penalty", 0, "fixed per-stop charging overhead, seconds")
	flags.StringVar(&raw.Heuristic, "heuristic", "", "none|linear|only_fast|min_rate|no_super_charger|no_slow_charger")
	flags.IntVar(&raw.Threads, "threads", 0, "worker goroutines")
	flags.IntVar(&raw.Runs, "runs", 0, "repeat the query batch this many times")
	flags.Float64Var(&raw.MaxTimeSeconds, "max-time-seconds", 0, "wall-clock budget for the whole batch")
	flags.StringVar(&raw.Log, "log", "", "log file path (empty = stdout)")

	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if exitCode == exitOK {
			exitCode = exitBadArgs
		}
	}
	return exitCode
}

// execute runs the full query batch and returns the exit code the
// process should use alongside any error cobra should print.
func execute(raw runconfig.RawFlags) (int, error) {
	cfg, err := runconfig.Load(raw)
	if err != nil {
		return exitBadArgs, err
	}

	logCfg := chargelog.DefaultConfig()
	logCfg.Path = cfg.LogPath
	logger, err := chargelog.New(logCfg)
	if err != nil {
		return exitIOFailure, err
	}
	defer logger.Close()

	reg := stats.NewRegistry()
	stats.MaybeRegisterMemStats(reg)

	g, err := loadGraph(cfg)
	if err != nil {
		return exitIOFailure, err
	}

	queries, err := ioformat.ReadQueries(cfg.QueriesPath)
	if err != nil {
		return exitIOFailure, err
	}

	ctx, stopSignals, interrupted := watchSignals()
	defer stopSignals()

	flusher := newSigintFlusher(func() {
		logger.Info("flushing partial results on interrupt")
	})
	go func() {
		<-interrupted
		flusher.run()
	}()

	records := runAll(ctx, cfg, g, queries, reg, logger.Logger)

	if err := ioformat.WriteResults(os.Stdout, records); err != nil {
		return exitIOFailure, err
	}

	select {
	case <-interrupted:
		flusher.run()
		return exitSignalAborted, nil
	default:
	}

	return exitOK, nil
}
