package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Load reads the YAML file at path, merges it over the compiled-in defaults,
// applies environment overrides, and validates the result. A missing file is
// not an error; the defaults plus environment are a complete configuration.
func Load(path string) (*Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		var fileCfg Config
		if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if err := mergo.Merge(&cfg, fileCfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge configuration: %w", err)
		}
		slog.Info("Configuration loaded", "path", path)
	case errors.Is(err, os.ErrNotExist):
		slog.Info("No configuration file, using defaults", "path", path)
	default:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	applyEnvOverrides(&cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnvOverrides lets deployments override wiring without editing YAML.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("LLM_ADDR"); v != "" {
		cfg.LLM.Addr = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.LLM.Addr == "" {
		return errors.New("llm.addr must not be empty")
	}
	if c.LLM.AgentTimeout <= 0 {
		return errors.New("llm.agent_timeout must be positive")
	}
	if c.Queue.WorkerCount <= 0 {
		return errors.New("queue.worker_count must be positive")
	}
	if c.Queue.JobTimeout <= 0 {
		return errors.New("queue.job_timeout must be positive")
	}
	if c.Queue.MaxConcurrentJobs <= 0 {
		return errors.New("queue.max_concurrent_jobs must be positive")
	}
	if c.Queue.HeartbeatInterval <= 0 {
		return errors.New("queue.heartbeat_interval must be positive")
	}
	if c.Retention.JobRetentionDays <= 0 {
		return errors.New("retention.job_retention_days must be positive")
	}
	if c.Retention.EventTTL <= 0 {
		return errors.New("retention.event_ttl must be positive")
	}
	if c.Retention.CleanupInterval <= 0 {
		return errors.New("retention.cleanup_interval must be positive")
	}
	return nil
}
