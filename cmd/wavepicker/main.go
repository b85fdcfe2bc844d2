// Command wavepicker is the CLI harness of SPEC_FULL.md §4.11: it walks an
// input directory of instance files, solves each with the parallel
// restart coordinator, writes a solution file per instance and prints a
// report. Grounded on the original source's main.cpp/menu.cpp per-
// instance loop (never aborting sibling instances on one failure) and
// polybot's cmd/scanner/main.go flag/config/slog wiring.
package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
)

func main() {
	sequential := flag.Bool("sequential", false, "force a single worker regardless of --parallel or hardware parallelism")
	parallel := flag.Int("parallel", 0, "number of workers to run (0 = use the config's coordinator.workers)")
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	inputDir := flag.String("input", "data/input", "directory of instance files to solve")
	outputDir := flag.String("output", "data/output", "directory solution files are written to")
	table := flag.Bool("table", false, "print the full per-instance table (default: compact one-line)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err, "path", *configPath)
		os.Exit(1)
	}
	setupLogger(cfg.Log)

	workers := resolveWorkers(*sequential, *parallel, cfg.Coordinator.Workers)

	slog.Info("wavepicker starting",
		"config", *configPath, "input", *inputDir, "output", *outputDir, "workers", workers)

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		slog.Error("failed to create output directory", "err", err, "dir", *outputDir)
		os.Exit(1)
	}

	files, err := instanceFiles(*inputDir)
	if err != nil {
		slog.Error("failed to list input directory", "err", err, "dir", *inputDir)
		os.Exit(1)
	}
	if len(files) == 0 {
		slog.Warn("no instance files found", "dir", *inputDir)
	}

	exitCode := 0
	for _, name := range files {
		ok := runInstance(cfg, workers, *outputDir, name, *table)
		if !ok {
			exitCode = 1
		}
	}

	slog.Info("wavepicker finished", "instances", len(files), "exit_code", exitCode)
	os.Exit(exitCode)
}

// resolveWorkers applies spec §4.7's "up to hardware_parallelism(),
// bounded >=2, <=user_request" rule. --sequential always wins; an
// explicit --parallel N is clamped to [1, hardware_parallelism()]; with
// neither flag, the config value is used the same way, falling back to
// hardware_parallelism() (at least 2) when it is 0.
func resolveWorkers(sequential bool, parallelFlag, configWorkers int) int {
	if sequential {
		return 1
	}
	hw := runtime.GOMAXPROCS(0)
	if hw < 1 {
		hw = 1
	}
	requested := parallelFlag
	if requested <= 0 {
		requested = configWorkers
	}
	if requested <= 0 {
		return maxInt(hw, 2)
	}
	if requested > hw {
		return hw
	}
	if requested < 1 {
		return 1
	}
	return requested
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func instanceFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, filepath.Join(dir, e.Name()))
	}
	return names, nil
}
