package runconfig_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ocharge/chargepath/runconfig"
)

func validFlags() runconfig.RawFlags {
	return runconfig.RawFlags{
		Queries:   "queries.csv",
		Graph:     "graph",
		Capacity:  50000,
		Potential: "omega",
		Heuristic: "min_rate",
		Threads:   4,
	}
}

func TestLoadAppliesDefaultsForUnsetFields(t *testing.T) {
	cfg, err := runconfig.Load(validFlags())
	require.NoError(t, err)
	assert.Equal(t, runconfig.PotentialOmega, cfg.Potential)
	assert.Equal(t, runconfig.HeuristicMinRate, cfg.Heuristic)
	assert.True(t, cfg.XEps > 0)
	assert.Equal(t, 1, cfg.Runs)
}

func TestLoadRejectsMissingQueriesPath(t *testing.T) {
	raw := validFlags()
	raw.Queries = ""
	_, err := runconfig.Load(raw)
	require.ErrorIs(t, err, runconfig.ErrInvalidConfig)
}

func TestLoadRejectsUnknownPotential(t *testing.T) {
	raw := validFlags()
	raw.Potential = "bogus"
	_, err := runconfig.Load(raw)
	require.ErrorIs(t, err, runconfig.ErrInvalidConfig)
}

func TestLoadRejectsNegativeCapacity(t *testing.T) {
	raw := validFlags()
	raw.Capacity = -1
	_, err := runconfig.Load(raw)
	require.ErrorIs(t, err, runconfig.ErrInvalidConfig)
}

func TestLoadRespectsTailMemoryEnv(t *testing.T) {
	t.Setenv("CHARGE_TAIL_MEMORY", "true")
	cfg, err := runconfig.Load(validFlags())
	require.NoError(t, err)
	assert.True(t, cfg.TailMemory)
}

func TestLoadAppliesConfigFileBelowFlags(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/config.yaml"
	require.NoError(t, os.WriteFile(path, []byte("threads: 8\nruns: 5\n"), 0o644))
	t.Setenv("CHARGE_CONFIG", path)

	raw := validFlags()
	raw.Threads = 0 // unset: the file's value should apply
	cfg, err := runconfig.Load(raw)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Threads)
	assert.Equal(t, 5, cfg.Runs)
}

func TestLoadFlagsOverrideConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/config.yaml"
	require.NoError(t, os.WriteFile(path, []byte("threads: 8\n"), 0o644))
	t.Setenv("CHARGE_CONFIG", path)

	raw := validFlags() // Threads: 4, set explicitly
	cfg, err := runconfig.Load(raw)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Threads)
}
