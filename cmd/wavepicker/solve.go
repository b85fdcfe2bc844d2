package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fabiolinhares/wavepicker/config"
	"github.com/fabiolinhares/wavepicker/coordinator"
	"github.com/fabiolinhares/wavepicker/innersolver"
	"github.com/fabiolinhares/wavepicker/ioformat"
	"github.com/fabiolinhares/wavepicker/ledger"
	"github.com/fabiolinhares/wavepicker/oracle"
	"github.com/fabiolinhares/wavepicker/report"
	"github.com/fabiolinhares/wavepicker/scorer"
	"github.com/fabiolinhares/wavepicker/waveindex"
)

// runInstance implements the per-instance pipeline of SPEC_FULL.md §4.11:
// parse -> coordinator.Run -> write solution -> report. It never panics
// on a bad instance; it logs the failure and returns false so main can
// set the process exit code without aborting the remaining instances
// (spec.md §7: "never let a worker's failure affect others").
func runInstance(cfg *config.Config, workers int, outputDir, path string, fullTable bool) bool {
	start := time.Now()
	name := filepath.Base(path)

	f, err := os.Open(path)
	if err != nil {
		slog.Error("failed to open instance file", "instance", name, "err", err)
		return false
	}
	defer f.Close()

	wh, bl, err := ioformat.ParseInstance(f)
	if err != nil {
		slog.Error("failed to parse instance", "instance", name, "err", err)
		return false
	}

	idx := waveindex.Build(wh, bl)
	bundle := coordinator.Bundle{
		Warehouse: wh,
		Backlog:   bl,
		Indices:   idx,
		Oracle:    oracle.New(wh, bl, idx),
		Scorer:    scorer.New(idx),
	}

	opts := coordinatorOptions(cfg, workers)

	res := coordinator.Run(bundle, opts, slog.Default())

	outPath := filepath.Join(outputDir, name)
	out, err := os.Create(outPath)
	if err != nil {
		slog.Error("failed to create solution file", "instance", name, "err", err)
		return false
	}
	writeErr := ioformat.WriteSolution(out, res.Best)
	closeErr := out.Close()
	if writeErr != nil {
		slog.Error("failed to write solution", "instance", name, "err", writeErr)
		return false
	}
	if closeErr != nil {
		slog.Error("failed to close solution file", "instance", name, "err", closeErr)
		return false
	}

	run := report.Run{
		InstanceName: name,
		Solution:     res.Best,
		Dinkelbach:   res.Dinkelbach,
		Stats:        res.Stats,
		Elapsed:      time.Since(start),
	}
	if fullTable {
		report.FullTable(os.Stdout, run)
	} else {
		report.Summary(os.Stdout, run)
	}

	if res.Best.IsInfeasible() {
		slog.Warn("instance produced no feasible wave", "instance", name)
		return false
	}
	return true
}

func coordinatorOptions(cfg *config.Config, workers int) coordinator.Options {
	var deadline time.Time
	if d := cfg.MaxWallDuration(); d > 0 {
		deadline = time.Now().Add(d)
	}

	return coordinator.Options{
		Workers:                   workers,
		MasterSeed:                cfg.Coordinator.MasterSeedValue,
		Backend:                   backendFromConfig(cfg.Dinkelbach.Backend),
		VarSelect:                 varSelectFromConfig(cfg.Dinkelbach.VarSelect),
		LocalSearch:               localSearchKindsFromConfig(cfg.LocalSearch.Algorithm),
		CommInterval:              cfg.Coordinator.CommIntervalIterations,
		AdoptProbability:          cfg.Coordinator.AdoptProbabilityValue,
		Deadline:                  deadline,
		Ledger:                    ledger.Options{KElite: cfg.Ledger.KElite, MinDiversity: cfg.Ledger.MinDiversity},
		InnerSolverTimeBudget:     time.Duration(cfg.InnerSolver.TimeBudgetSeconds * float64(time.Second)),
		TabuBaseTenure:            cfg.LocalSearch.TabuBaseTenure,
		TabuMaxNoImprove:          cfg.LocalSearch.TabuMaxNoImprove,
		TabuCyclesDiversification: cfg.LocalSearch.TabuCyclesDiversification,
		TabuCyclesIntensification: cfg.LocalSearch.TabuCyclesIntensification,
		VNSKMax:                   cfg.LocalSearch.VNSKMax,
		ILSPerturbationBase:       cfg.LocalSearch.ILSPerturbationBase,
	}
}

func backendFromConfig(name string) innersolver.Backend {
	if name == "greedy" {
		return innersolver.BackendGreedy
	}
	return innersolver.BackendBranchAndBound
}

func varSelectFromConfig(name string) innersolver.VarSelectStrategy {
	switch name {
	case "most_infeasible":
		return innersolver.MostInfeasible
	case "pseudo_cost":
		return innersolver.PseudoCost
	default:
		return innersolver.MaxImpact
	}
}

func localSearchKindsFromConfig(name string) []coordinator.LocalSearchKind {
	switch name {
	case "vns":
		return []coordinator.LocalSearchKind{coordinator.LSVNS}
	case "ils":
		return []coordinator.LocalSearchKind{coordinator.LSILS}
	case "all":
		return []coordinator.LocalSearchKind{coordinator.LSTabu, coordinator.LSVNS, coordinator.LSILS}
	default:
		return []coordinator.LocalSearchKind{coordinator.LSTabu}
	}
}
