// Package config loads and validates the reportline.yaml configuration file,
// merged over compiled-in defaults, with environment-variable overrides for
// deployment-specific settings.
package config

import "time"

// Config is the fully merged runtime configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	LLM       LLMConfig       `yaml:"llm"`
	Queue     QueueConfig     `yaml:"queue"`
	Retention RetentionConfig `yaml:"retention"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// LLMConfig holds the connection settings for the external LLM service.
type LLMConfig struct {
	// Addr is the gRPC address of the LLM service.
	Addr string `yaml:"addr"`

	// Model is passed through on every Generate request.
	Model string `yaml:"model"`

	// AgentTimeout bounds a single agent invocation.
	AgentTimeout time.Duration `yaml:"agent_timeout"`
}

// RetentionConfig controls background data retention.
type RetentionConfig struct {
	// JobRetentionDays is how long terminal job rows are kept. Incidents and
	// query answers are never expired; only the job records that produced
	// them are.
	JobRetentionDays int `yaml:"job_retention_days"`

	// EventTTL is how long streaming catchup events survive after creation.
	// Workers clean up events shortly after a job finishes; this TTL catches
	// rows left behind when a pod dies before its cleanup timer fires.
	EventTTL time.Duration `yaml:"event_ttl"`

	// CleanupInterval is how often the retention pass runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		LLM: LLMConfig{
			Addr:         "localhost:50051",
			Model:        "default",
			AgentTimeout: 2 * time.Minute,
		},
		Queue: DefaultQueueConfig(),
		Retention: RetentionConfig{
			JobRetentionDays: 90,
			EventTTL:         1 * time.Hour,
			CleanupInterval:  1 * time.Hour,
		},
	}
}
