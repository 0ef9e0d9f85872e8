package stats_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ocharge/chargepath/search"
	"github.com/ocharge/chargepath/stats"
)

func TestRegistryRecordFoldsQueryStats(t *testing.T) {
	reg := stats.NewRegistry()
	reg.Record(search.Stats{Relaxations: 4, Pops: 2, Pushes: 3}, true, 0.01)
	reg.Record(search.Stats{Relaxations: 1, Pops: 1, Pushes: 1}, false, 0.02)

	got, err := testutil.GatherAndCount(reg.Gatherer(),
		"chargepath_search_relaxations_total",
		"chargepath_search_queries_total",
		"chargepath_search_infeasible_total",
	)
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestMaybeRegisterMemStatsRespectsEnvGate(t *testing.T) {
	t.Setenv(stats.MemCollectorEnv, "")
	reg := stats.NewRegistry()
	stats.MaybeRegisterMemStats(reg)

	n, err := testutil.GatherAndCount(reg.Gatherer(), "chargepath_runtime_goroutines")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	t.Setenv(stats.MemCollectorEnv, "1")
	reg2 := stats.NewRegistry()
	stats.MaybeRegisterMemStats(reg2)

	n2, err := testutil.GatherAndCount(reg2.Gatherer(), "chargepath_runtime_goroutines")
	require.NoError(t, err)
	assert.Equal(t, 1, n2)
}

func TestRuntimeCollectorDescribeAndCollect(t *testing.T) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(stats.NewRuntimeCollector("chargepath", "runtime"))

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.True(t, n > 0)
}
