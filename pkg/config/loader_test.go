package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reportline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost:50051", cfg.LLM.Addr)
	assert.Equal(t, 5, cfg.Queue.WorkerCount)
	assert.Equal(t, 90, cfg.Retention.JobRetentionDays)
	assert.Equal(t, time.Hour, cfg.Retention.EventTTL)
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
llm:
  addr: llm.internal:50051
  agent_timeout: 30s
queue:
  worker_count: 2
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "llm.internal:50051", cfg.LLM.Addr)
	assert.Equal(t, 30*time.Second, cfg.LLM.AgentTimeout)
	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	// Untouched fields keep their defaults.
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, time.Second, cfg.Queue.PollInterval)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("LLM_ADDR", "env.internal:50051")
	t.Setenv("LLM_MODEL", "fast-model")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "env.internal:50051", cfg.LLM.Addr)
	assert.Equal(t, "fast-model", cfg.LLM.Model)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	t.Run("bad yaml", func(t *testing.T) {
		path := writeConfig(t, "server: [not a map")
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("bad port", func(t *testing.T) {
		path := writeConfig(t, "server:\n  port: -1\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "port")
	})

	t.Run("bad worker count via env-free file", func(t *testing.T) {
		path := writeConfig(t, "queue:\n  worker_count: -3\n")
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("bad retention window", func(t *testing.T) {
		path := writeConfig(t, "retention:\n  job_retention_days: -1\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "retention")
	})
}
