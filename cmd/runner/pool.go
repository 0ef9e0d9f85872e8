package main

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/ocharge/chargepath/ioformat"
	"github.com/ocharge/chargepath/runconfig"
	"github.com/ocharge/chargepath/stats"
)

// relaxationDumpInterval is the "every 10^6 relaxations" cadence spec §5
// names for per-thread memory statistics dumps under CHARGE_TAIL_MEMORY.
const relaxationDumpInterval = 1_000_000

// runAll dispatches every query in qs across cfg.Threads worker
// goroutines pulling from a shared channel, the bounded-worker-pool
// shape spec §5 calls for: each worker's search.Context/label state is
// local to one query, only the graph/stations/registry are shared.
//
// --runs repeats the whole batch that many times (for timing stability);
// only the final pass's records are returned. --max-time-seconds bounds
// the wall-clock budget for the whole call; once it fires or ctx is
// cancelled (SIGINT), outstanding queries are recorded as infeasible
// rather than run.
func runAll(ctx context.Context, cfg *runconfig.Config, g *loadedGraph, qs []ioformat.Query, reg *stats.Registry, log *slog.Logger) []ioformat.ResultRecord {
	runs := cfg.Runs
	if runs < 1 {
		runs = 1
	}

	var deadline <-chan time.Time
	if cfg.MaxTimeSeconds > 0 {
		// Closed rather than sent on, so every later pass still sees it.
		expired := make(chan time.Time)
		timer := time.AfterFunc(time.Duration(cfg.MaxTimeSeconds*float64(time.Second)), func() { close(expired) })
		defer timer.Stop()
		deadline = expired
	}

	records := make([]ioformat.ResultRecord, len(qs))
	for pass := 0; pass < runs; pass++ {
		final := pass == runs-1
		passStart := time.Now()
		runBatch(ctx, cfg, g, qs, reg, log, deadline, func(i int, rec ioformat.ResultRecord) {
			if final {
				records[i] = rec
			}
		})
		log.Debug("batch pass complete", "pass", pass, "duration_seconds", time.Since(passStart).Seconds())
	}
	return records
}

// runBatch runs qs once, calling record(i, rec) for every index — either
// with a real result or, if cut short, with InfeasibleResult.
func runBatch(ctx context.Context, cfg *runconfig.Config, g *loadedGraph, qs []ioformat.Query, reg *stats.Registry, log *slog.Logger, deadline <-chan time.Time, record func(int, ioformat.ResultRecord)) {
	threads := cfg.Threads
	if threads < 1 {
		threads = 1
	}

	type job struct {
		idx int
		q   ioformat.Query
	}
	jobs := make(chan job)
	dumpMemStats := cfg.TailMemory

	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		worker := w
		go func() {
			defer wg.Done()
			var relaxSinceDump int
			for j := range jobs {
				start := time.Now()
				rec, qstats, err := queryResult(cfg, g, j.q)
				feasible := err == nil && len(rec.Path) > 0
				if err != nil {
					log.Warn("query failed", "id", j.q.ID, "error", err)
					rec = ioformat.InfeasibleResult(j.q.ID, j.q.Start, j.q.Target)
				}
				if reg != nil {
					reg.Record(qstats, feasible, time.Since(start).Seconds())
				}
				if dumpMemStats {
					relaxSinceDump += qstats.Relaxations
					for relaxSinceDump >= relaxationDumpInterval {
						relaxSinceDump -= relaxationDumpInterval
						logThreadMemStats(log, worker)
					}
				}
				record(j.idx, rec) // distinct idx per job: no shared-state race
			}
		}()
	}

	dispatched := make([]bool, len(qs))
dispatch:
	for i, q := range qs {
		select {
		case <-ctx.Done():
			break dispatch
		case <-deadline:
			break dispatch
		case jobs <- job{idx: i, q: q}:
			dispatched[i] = true
		}
	}
	close(jobs)
	wg.Wait()

	for i, q := range qs {
		if !dispatched[i] {
			record(i, ioformat.InfeasibleResult(q.ID, q.Start, q.Target))
		}
	}
}

// logThreadMemStats emits one worker's memory snapshot, the per-thread
// dump CHARGE_TAIL_MEMORY enables (spec §5) independent of whatever the
// prometheus RuntimeCollector reports process-wide.
func logThreadMemStats(log *slog.Logger, worker int) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Info("tail memory dump",
		"worker", worker,
		"heap_alloc_bytes", m.Alloc,
		"heap_sys_bytes", m.HeapSys,
		"num_gc", m.NumGC,
	)
}
