package stats

import (
	"os"
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
)

// MemCollectorEnv is the environment variable that gates registration of
// RuntimeCollector, mirroring spec §6's CHARGE_TAIL_MEMORY flag for
// per-thread memory statistics dumps.
const MemCollectorEnv = "CHARGE_TAIL_MEMORY"

// RuntimeCollector reports the process's own memory and goroutine
// counters as prometheus metrics, built the same way as this corpus's
// other runtime collectors: a handful of *prometheus.Desc fields filled
// in on Collect via runtime.ReadMemStats rather than pre-registered
// gauges, so every scrape reflects the current state.
type RuntimeCollector struct {
	goroutines *prometheus.Desc
	memAlloc   *prometheus.Desc
	memTotal   *prometheus.Desc
	memSys     *prometheus.Desc
	gcPause    *prometheus.Desc
	gcRuns     *prometheus.Desc
}

// NewRuntimeCollector builds a RuntimeCollector namespaced under
// namespace/subsystem.
func NewRuntimeCollector(namespace, subsystem string) *RuntimeCollector {
	return &RuntimeCollector{
		goroutines: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "goroutines"),
			"Number of live goroutines.", nil, nil),
		memAlloc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "mem_alloc_bytes"),
			"Bytes of heap objects currently allocated.", nil, nil),
		memTotal: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "mem_total_alloc_bytes"),
			"Cumulative bytes allocated for heap objects.", nil, nil),
		memSys: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "mem_sys_bytes"),
			"Total bytes of memory obtained from the OS.", nil, nil),
		gcPause: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "gc_pause_seconds_last"),
			"Duration of the most recent garbage collection STW pause.", nil, nil),
		gcRuns: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "gc_runs_total"),
			"Number of completed garbage collection cycles.", nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *RuntimeCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.goroutines
	ch <- c.memAlloc
	ch <- c.memTotal
	ch <- c.memSys
	ch <- c.gcPause
	ch <- c.gcRuns
}

// Collect implements prometheus.Collector.
func (c *RuntimeCollector) Collect(ch chan<- prometheus.Metric) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	ch <- prometheus.MustNewConstMetric(c.goroutines, prometheus.GaugeValue, float64(runtime.NumGoroutine()))
	ch <- prometheus.MustNewConstMetric(c.memAlloc, prometheus.GaugeValue, float64(m.Alloc))
	ch <- prometheus.MustNewConstMetric(c.memTotal, prometheus.CounterValue, float64(m.TotalAlloc))
	ch <- prometheus.MustNewConstMetric(c.memSys, prometheus.GaugeValue, float64(m.Sys))

	var lastPause float64
	if m.NumGC > 0 {
		lastPause = float64(m.PauseNs[(m.NumGC+255)%256]) / 1e9
	}
	ch <- prometheus.MustNewConstMetric(c.gcPause, prometheus.GaugeValue, lastPause)
	ch <- prometheus.MustNewConstMetric(c.gcRuns, prometheus.CounterValue, float64(m.NumGC))
}

// MaybeRegisterMemStats registers a RuntimeCollector against reg only
// when CHARGE_TAIL_MEMORY is set, per spec §6's opt-in memory dump.
func MaybeRegisterMemStats(reg *Registry) {
	if os.Getenv(MemCollectorEnv) == "" {
		return
	}
	reg.reg.MustRegister(NewRuntimeCollector("chargepath", "runtime"))
}
