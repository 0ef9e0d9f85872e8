package runconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/ocharge/chargepath/function"
)

const envPrefix = "CHARGE_"

// configEnvVar names the environment variable that points at an optional
// YAML config file layered in between the defaults and the CLI flags,
// the same defaults-before-file-before-env precedence the corpus's own
// koanf loader uses: flags are applied after this layer, and
// CHARGE_-prefixed environment variables after the flags.
const configEnvVar = "CHARGE_CONFIG"

// Potential names the --potential CLI values (spec §6).
type Potential string

const (
	PotentialNone        Potential = "none"
	PotentialFastest     Potential = "fastest"
	PotentialOmega       Potential = "omega"
	PotentialLazyOmega   Potential = "lazy_omega"
	PotentialLazyFastest Potential = "lazy_fastest"
)

// Heuristic names the --heuristic CLI values (spec §6).
type Heuristic string

const (
	HeuristicNone           Heuristic = "none"
	HeuristicLinear         Heuristic = "linear"
	HeuristicOnlyFast       Heuristic = "only_fast"
	HeuristicMinRate        Heuristic = "min_rate"
	HeuristicNoSuperCharger Heuristic = "no_super_charger"
	HeuristicNoSlowCharger  Heuristic = "no_slow_charger"
)

// RawFlags mirrors the runner's cobra flags verbatim, before defaulting
// or validation. Zero values mean "not set by the user".
type RawFlags struct {
	Queries         string
	Graph           string
	Capacity        float64
	Potential       string
	XEps            float64
	YEps            float64
	ChargingPenalty float64
	Heuristic       string
	Threads         int
	Runs            int
	MaxTimeSeconds  float64
	Log             string
}

// Config is the fully resolved, validated configuration a run executes
// with.
type Config struct {
	QueriesPath string
	GraphBase   string

	Capacity        float64
	Potential       Potential
	XEps, YEps      float64
	ChargingPenalty float64
	Heuristic       Heuristic

	Threads        int
	Runs           int
	MaxTimeSeconds float64

	LogPath string

	// TailMemory mirrors CHARGE_TAIL_MEMORY, read here rather than via a
	// bare os.Getenv in business logic.
	TailMemory bool
}

// Load merges raw flag values over the defaults below, lets
// CHARGE_-prefixed environment variables override either (matching the
// corpus's layered config precedence: defaults < flags < env), then
// validates the result.
func Load(raw RawFlags) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]any{
		"capacity":         0.0,
		"potential":        string(PotentialNone),
		"x_eps":            function.DefaultXEpsilon,
		"y_eps":            function.DefaultYEpsilon,
		"charging_penalty": 0.0,
		"heuristic":        string(HeuristicNone),
		"threads":          1,
		"runs":             1,
		"max_time_seconds": 0.0,
		"tail_memory":      false,
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("%w: load defaults: %v", ErrInvalidConfig, err)
	}

	if path := os.Getenv(configEnvVar); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: load config file %q: %v", ErrInvalidConfig, path, err)
		}
	}

	flagValues := map[string]any{
		"queries": raw.Queries,
		"graph":   raw.Graph,
		"log":     raw.Log,
	}
	if raw.Capacity != 0 {
		flagValues["capacity"] = raw.Capacity
	}
	if raw.Potential != "" {
		flagValues["potential"] = raw.Potential
	}
	if raw.XEps != 0 {
		flagValues["x_eps"] = raw.XEps
	}
	if raw.YEps != 0 {
		flagValues["y_eps"] = raw.YEps
	}
	if raw.ChargingPenalty != 0 {
		flagValues["charging_penalty"] = raw.ChargingPenalty
	}
	if raw.Heuristic != "" {
		flagValues["heuristic"] = raw.Heuristic
	}
	if raw.Threads != 0 {
		flagValues["threads"] = raw.Threads
	}
	if raw.Runs != 0 {
		flagValues["runs"] = raw.Runs
	}
	if raw.MaxTimeSeconds != 0 {
		flagValues["max_time_seconds"] = raw.MaxTimeSeconds
	}
	if err := k.Load(confmap.Provider(flagValues, "."), nil); err != nil {
		return nil, fmt.Errorf("%w: load flags: %v", ErrInvalidConfig, err)
	}

	envErr := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if envErr != nil {
		return nil, fmt.Errorf("%w: load env: %v", ErrInvalidConfig, envErr)
	}

	cfg := &Config{
		QueriesPath:     k.String("queries"),
		GraphBase:       k.String("graph"),
		Capacity:        k.Float64("capacity"),
		Potential:       Potential(k.String("potential")),
		XEps:            k.Float64("x_eps"),
		YEps:            k.Float64("y_eps"),
		ChargingPenalty: k.Float64("charging_penalty"),
		Heuristic:       Heuristic(k.String("heuristic")),
		Threads:         k.Int("threads"),
		Runs:            k.Int("runs"),
		MaxTimeSeconds:  k.Float64("max_time_seconds"),
		LogPath:         k.String("log"),
		TailMemory:      k.Bool("tail_memory"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the Configuration-class failures spec §7 names:
// unknown potential/heuristic name, negative capacity, negative x_eps.
func (c *Config) Validate() error {
	if c.QueriesPath == "" {
		return fmt.Errorf("%w: --queries is required", ErrInvalidConfig)
	}
	if c.GraphBase == "" {
		return fmt.Errorf("%w: --graph is required", ErrInvalidConfig)
	}
	if c.Capacity < 0 {
		return fmt.Errorf("%w: --capacity must be >= 0, got %g", ErrInvalidConfig, c.Capacity)
	}
	if c.XEps < 0 {
		return fmt.Errorf("%w: --x-eps must be >= 0, got %g", ErrInvalidConfig, c.XEps)
	}
	if c.YEps < 0 {
		return fmt.Errorf("%w: --y-eps must be >= 0, got %g", ErrInvalidConfig, c.YEps)
	}
	if c.ChargingPenalty < 0 {
		return fmt.Errorf("%w: --charging-penalty must be >= 0, got %g", ErrInvalidConfig, c.ChargingPenalty)
	}
	if c.Threads < 0 {
		return fmt.Errorf("%w: --threads must be >= 0, got %d", ErrInvalidConfig, c.Threads)
	}
	switch c.Potential {
	case PotentialNone, PotentialFastest, PotentialOmega, PotentialLazyOmega, PotentialLazyFastest:
	default:
		return fmt.Errorf("%w: unknown --potential %q", ErrInvalidConfig, c.Potential)
	}
	switch c.Heuristic {
	case HeuristicNone, HeuristicLinear, HeuristicOnlyFast, HeuristicMinRate, HeuristicNoSuperCharger, HeuristicNoSlowCharger:
	default:
		return fmt.Errorf("%w: unknown --heuristic %q", ErrInvalidConfig, c.Heuristic)
	}
	return nil
}
