package stats

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ocharge/chargepath/search"
)

// Registry wraps the counters one runner process exposes, namespaced
// under "chargepath" the way teacher codebases in this corpus namespace
// their own prometheus metrics.
type Registry struct {
	reg *prometheus.Registry

	relaxations prometheus.Counter
	pops        prometheus.Counter
	pushes      prometheus.Counter
	queries     prometheus.Counter
	infeasible  prometheus.Counter
	queryTime   prometheus.Histogram
}

// NewRegistry builds a Registry and registers its collectors against a
// fresh prometheus.Registry (callers serve it themselves, e.g. via
// promhttp.HandlerFor, or scrape it directly in tests).
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		relaxations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chargepath", Subsystem: "search", Name: "relaxations_total",
			Help: "Total edge relaxations across all queries (charging stops are not counted).",
		}),
		pops: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chargepath", Subsystem: "search", Name: "queue_pops_total",
			Help: "Total priority queue pops across all queries.",
		}),
		pushes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chargepath", Subsystem: "search", Name: "queue_pushes_total",
			Help: "Total priority queue pushes across all queries.",
		}),
		queries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chargepath", Subsystem: "search", Name: "queries_total",
			Help: "Total queries run.",
		}),
		infeasible: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chargepath", Subsystem: "search", Name: "infeasible_total",
			Help: "Total queries that returned no feasible label at target.",
		}),
		queryTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "chargepath", Subsystem: "search", Name: "query_duration_seconds",
			Help:    "Wall-clock duration of a single query.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	r.reg.MustRegister(r.relaxations, r.pops, r.pushes, r.queries, r.infeasible, r.queryTime)
	return r
}

// Gatherer exposes the underlying prometheus.Registry for an HTTP
// exposition handler.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

// Record folds one completed query's search.Stats into the registry's
// process-wide counters, plus whether the query found a feasible label
// and how long it took.
func (r *Registry) Record(s search.Stats, feasible bool, durationSeconds float64) {
	r.relaxations.Add(float64(s.Relaxations))
	r.pops.Add(float64(s.Pops))
	r.pushes.Add(float64(s.Pushes))
	r.queries.Inc()
	if !feasible {
		r.infeasible.Inc()
	}
	r.queryTime.Observe(durationSeconds)
}
