// Package config carries the YAML-configured run parameters of the CLI
// harness (SPEC_FULL.md §4.10): worker count, Dinkelbach tolerance,
// inner-solver time budget, local-search choice, elite-pool sizing, the
// master RNG seed and log settings. Shape and Load/setDefaults/
// applyEnvOverrides structure are grounded on polybot's config/config.go.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the complete run configuration for cmd/wavepicker.
type Config struct {
	Coordinator CoordinatorConfig `yaml:"coordinator"`
	Dinkelbach  DinkelbachConfig  `yaml:"dinkelbach"`
	InnerSolver InnerSolverConfig `yaml:"inner_solver"`
	LocalSearch LocalSearchConfig `yaml:"local_search"`
	Ledger      LedgerConfig      `yaml:"ledger"`
	Log         LogConfig         `yaml:"log"`
}

// CoordinatorConfig controls the parallel restart coordinator (spec §4.7).
type CoordinatorConfig struct {
	// Workers is the requested worker count; 0 means
	// hardware_parallelism() as spec §4.7 prescribes.
	Workers int `yaml:"workers"`
	// MasterSeedValue seeds every worker's RNG deterministically (spec §9).
	MasterSeedValue int64 `yaml:"master_seed"`
	// CommIntervalIterations and AdoptProbabilityValue tune the
	// diversification exchange (spec §4.7 defaults: 100, 0.25).
	CommIntervalIterations int     `yaml:"comm_interval_iterations"`
	AdoptProbabilityValue  float64 `yaml:"adopt_probability"`
	// MaxWallSeconds bounds the whole coordinated search. 0 means no
	// deadline beyond the process's own MAX_WALL_SECONDS override (spec
	// §6); see applyEnvOverrides.
	MaxWallSeconds int `yaml:"max_wall_seconds"`
}

// DinkelbachConfig controls the outer parametric loop (spec §4.5).
type DinkelbachConfig struct {
	Epsilon float64 `yaml:"epsilon"`
	MaxIter int     `yaml:"max_iter"`
	// Backend selects "greedy" or "branch_and_bound" for every Dinkelbach
	// iteration's inner-solver call.
	Backend string `yaml:"backend"`
	// VarSelect selects "max_impact", "most_infeasible" or "pseudo_cost"
	// for the branch-and-bound backend (spec §4.4.2).
	VarSelect string `yaml:"var_select"`
}

// InnerSolverConfig bounds one inner-subproblem call (spec §4.4: T_inner).
type InnerSolverConfig struct {
	TimeBudgetSeconds float64 `yaml:"time_budget_seconds"`
}

// LocalSearchConfig selects and parameterizes the neighbourhood refinement
// metaheuristic (spec §4.6). Algorithm is one of "tabu", "vns", "ils", or
// "all" to round-robin all three across workers.
type LocalSearchConfig struct {
	Algorithm string `yaml:"algorithm"`

	TabuBaseTenure            int `yaml:"tabu_base_tenure"`
	TabuMaxNoImprove          int `yaml:"tabu_max_no_improve"`
	TabuCyclesDiversification int `yaml:"tabu_cycles_diversification"`
	TabuCyclesIntensification int `yaml:"tabu_cycles_intensification"`

	VNSKMax int `yaml:"vns_k_max"`

	ILSPerturbationBase float64 `yaml:"ils_perturbation_base"`
}

// LedgerConfig bounds the Solution Ledger's elite pool (spec §3).
type LedgerConfig struct {
	KElite       int     `yaml:"k_elite"`
	MinDiversity float64 `yaml:"min_diversity"`
}

// LogConfig controls log level and format, exactly as polybot's.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Load reads path as YAML, applies an optional .env (silently ignored if
// absent) and environment overrides, then fills in defaults for anything
// left unset.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	return &cfg, nil
}

// MaxWallDuration returns CoordinatorConfig.MaxWallSeconds as a
// time.Duration, 0 meaning "no deadline".
func (c *Config) MaxWallDuration() time.Duration {
	if c.Coordinator.MaxWallSeconds <= 0 {
		return 0
	}
	return time.Duration(c.Coordinator.MaxWallSeconds) * time.Second
}

// applyEnvOverrides overrides config values with environment variables
// when present, matching spec.md §6's "an optional MAX_WALL_SECONDS may
// override the global deadline" and polybot's LOG_LEVEL/LOG_FORMAT
// convention.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("MAX_WALL_SECONDS"); v != "" {
		var secs int
		if _, err := fmt.Sscanf(v, "%d", &secs); err == nil && secs > 0 {
			cfg.Coordinator.MaxWallSeconds = secs
		}
	}
}

// setDefaults fills in every zero-valued field with the default named in
// spec.md for that parameter.
func setDefaults(cfg *Config) {
	if cfg.Coordinator.CommIntervalIterations <= 0 {
		cfg.Coordinator.CommIntervalIterations = 100
	}
	if cfg.Coordinator.AdoptProbabilityValue <= 0 {
		cfg.Coordinator.AdoptProbabilityValue = 0.25
	}
	if cfg.Dinkelbach.Epsilon <= 0 {
		cfg.Dinkelbach.Epsilon = 2e-3
	}
	if cfg.Dinkelbach.MaxIter <= 0 {
		cfg.Dinkelbach.MaxIter = 200_000
	}
	if cfg.Dinkelbach.Backend == "" {
		cfg.Dinkelbach.Backend = "branch_and_bound"
	}
	if cfg.Dinkelbach.VarSelect == "" {
		cfg.Dinkelbach.VarSelect = "max_impact"
	}
	if cfg.InnerSolver.TimeBudgetSeconds <= 0 {
		cfg.InnerSolver.TimeBudgetSeconds = 2.0
	}
	if cfg.LocalSearch.Algorithm == "" {
		cfg.LocalSearch.Algorithm = "tabu"
	}
	if cfg.LocalSearch.TabuBaseTenure <= 0 {
		cfg.LocalSearch.TabuBaseTenure = 10
	}
	if cfg.LocalSearch.TabuMaxNoImprove <= 0 {
		cfg.LocalSearch.TabuMaxNoImprove = 100
	}
	if cfg.LocalSearch.TabuCyclesDiversification <= 0 {
		cfg.LocalSearch.TabuCyclesDiversification = 10
	}
	if cfg.LocalSearch.TabuCyclesIntensification <= 0 {
		cfg.LocalSearch.TabuCyclesIntensification = 5
	}
	if cfg.LocalSearch.VNSKMax <= 0 {
		cfg.LocalSearch.VNSKMax = 4
	}
	if cfg.LocalSearch.ILSPerturbationBase <= 0 {
		cfg.LocalSearch.ILSPerturbationBase = 1.0
	}
	if cfg.Ledger.KElite <= 0 {
		cfg.Ledger.KElite = 500
	}
	if cfg.Ledger.MinDiversity <= 0 {
		cfg.Ledger.MinDiversity = 0.3
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
