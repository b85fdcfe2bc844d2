package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fabiolinhares/wavepicker/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_FillsDefaults(t *testing.T) {
	path := writeConfig(t, "coordinator:\n  workers: 4\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Coordinator.Workers)
	require.Equal(t, 2e-3, cfg.Dinkelbach.Epsilon)
	require.Equal(t, "branch_and_bound", cfg.Dinkelbach.Backend)
	require.Equal(t, 500, cfg.Ledger.KElite)
	require.Equal(t, 0.3, cfg.Ledger.MinDiversity)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_RespectsExplicitValues(t *testing.T) {
	path := writeConfig(t, "dinkelbach:\n  epsilon: 0.01\n  backend: greedy\nlog:\n  level: debug\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 0.01, cfg.Dinkelbach.Epsilon)
	require.Equal(t, "greedy", cfg.Dinkelbach.Backend)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverridesMaxWallSeconds(t *testing.T) {
	path := writeConfig(t, "coordinator:\n  workers: 1\n")
	t.Setenv("MAX_WALL_SECONDS", "30")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 30, cfg.Coordinator.MaxWallSeconds)
	require.Equal(t, 30*1_000_000_000, int(cfg.MaxWallDuration()))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
