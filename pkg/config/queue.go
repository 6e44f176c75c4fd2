package config

import "time"

// QueueConfig controls how jobs are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	WorkerCount int `yaml:"worker_count"`

	// PollInterval is the base interval for checking pending jobs.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is added randomly to PollInterval so replicas do
	// not poll in lockstep.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// MaxConcurrentJobs caps in-progress jobs across all replicas.
	MaxConcurrentJobs int `yaml:"max_concurrent_jobs"`

	// HeartbeatInterval is how often a worker refreshes last_interaction_at
	// on its claimed job. Also the cadence at which cross-pod cancellation
	// requests are noticed.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// JobTimeout is the maximum time one job may run end to end.
	JobTimeout time.Duration `yaml:"job_timeout"`

	// GracefulShutdownTimeout is the max time to wait for active jobs
	// during shutdown. Should match JobTimeout.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanDetectionInterval is how often to scan for jobs abandoned by a
	// dead pod.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long a job may go without a heartbeat before
	// it is considered orphaned.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() QueueConfig {
	return QueueConfig{
		WorkerCount:             5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		MaxConcurrentJobs:       20,
		HeartbeatInterval:       30 * time.Second,
		JobTimeout:              10 * time.Minute,
		GracefulShutdownTimeout: 10 * time.Minute,
		OrphanDetectionInterval: 1 * time.Minute,
		OrphanThreshold:         2 * time.Minute,
	}
}
