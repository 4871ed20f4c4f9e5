package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "ghostmap.yaml", `
step_budget: 1000
workers: 4
strategy: exact
verify: true
cache:
  backend: redis
  addr: redis:6379
  ttl: 1h
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint64(1000), cfg.StepBudget)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, StrategyExact, cfg.Strategy)
	assert.True(t, cfg.Verify)
	assert.Equal(t, BackendRedis, cfg.Cache.Backend)
	assert.Equal(t, "redis:6379", cfg.Cache.Addr)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	// Untouched keys keep their defaults.
	assert.Equal(t, "inputs", cfg.InputDir)
	assert.Equal(t, ":8080", cfg.Serve.Addr)
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "ghostmap.json", `{"input_dir": "data", "serve": {"addr": ":9090"}}`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.InputDir)
	assert.Equal(t, ":9090", cfg.Serve.Addr)
	assert.Equal(t, 30*time.Second, cfg.Serve.Timeout)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"Bad YAML", "a.yaml", "workers: [1"},
		{"Unknown Key", "b.yaml", "colour: blue"},
		{"Unknown Strategy", "c.yaml", "strategy: brute"},
		{"Negative Workers", "d.json", `{"workers": -1}`},
		{"Negative Serve Timeout", "e.yaml", "serve:\n  timeout: -1s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestApply(t *testing.T) {
	cfg := Default()
	err := cfg.Apply([]string{
		"workers=8",
		"verify=true",
		"cache.backend=none",
		"cache.ttl=90s",
		"step_budget=500",
	})
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Workers)
	assert.True(t, cfg.Verify)
	assert.Equal(t, BackendNone, cfg.Cache.Backend)
	assert.Equal(t, 90*time.Second, cfg.Cache.TTL)
	assert.Equal(t, uint64(500), cfg.StepBudget)
	assert.Equal(t, "localhost:6379", cfg.Cache.Addr)
}

func TestApply_Rejects(t *testing.T) {
	for _, o := range []string{"workers", "=1", "cache.backend=etcd", "nothing=1"} {
		cfg := Default()
		err := cfg.Apply([]string{o})
		assert.ErrorIs(t, err, ErrInvalidConfig, o)
	}
}
