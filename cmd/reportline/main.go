// Reportline server: provides the HTTP API, manages queue workers, and
// orchestrates playbook execution for report ingestion and querying.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/reportline/reportline/pkg/agent"
	"github.com/reportline/reportline/pkg/api"
	"github.com/reportline/reportline/pkg/cleanup"
	"github.com/reportline/reportline/pkg/config"
	"github.com/reportline/reportline/pkg/database"
	"github.com/reportline/reportline/pkg/events"
	"github.com/reportline/reportline/pkg/queue"
	"github.com/reportline/reportline/pkg/registry"
	"github.com/reportline/reportline/pkg/services"
	"github.com/reportline/reportline/pkg/version"
)

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configPath := flag.String("config", "reportline.yaml", "Path to the configuration file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file, continuing with existing environment")
	}

	podID := resolvePodID()
	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("Starting Reportline", "version", version.Full(), "pod_id", podID, "port", cfg.Server.Port)

	// 2. Database (connect + migrate)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Seed built-in system-tenant agents and domains
	if err := services.SeedBuiltins(ctx, dbClient.Client); err != nil {
		slog.Error("Failed to seed built-in definitions", "error", err)
		os.Exit(1)
	}

	// 4. One-time startup orphan recovery for jobs this pod abandoned
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal; the periodic scan will catch them
	}

	// 5. Registry and write-side services
	reg := registry.NewDB(dbClient.Client)
	agentService := services.NewAgentService(dbClient.Client, reg)
	domainService := services.NewDomainService(dbClient.Client, agentService, reg)
	jobService := services.NewJobService(dbClient.Client)
	slog.Info("Services initialized")

	// 6. LLM client and invoker
	// grpc.NewClient dials lazily; the connection is made on the first RPC.
	llmClient, err := agent.NewGRPCLLMClient(cfg.LLM.Addr)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "addr", cfg.LLM.Addr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()
	invoker := agent.NewLLMInvoker(llmClient, cfg.LLM.Model, slog.Default())
	slog.Info("LLM client initialized", "addr", cfg.LLM.Addr, "model", cfg.LLM.Model)

	// 7. Streaming infrastructure: NOTIFY publisher, broker, LISTEN connection
	publisher := events.NewPublisher(dbClient.DB())
	broker := events.NewBroker()
	listener := events.NewNotifyListener(dbConfig.ConnString(), broker)
	if err := listener.Start(ctx); err != nil {
		slog.Error("Failed to start NOTIFY listener", "error", err)
		os.Exit(1)
	}
	defer listener.Stop(ctx)
	slog.Info("Streaming infrastructure initialized")

	// 8. Worker pool
	executor := queue.NewRealJobExecutor(cfg, dbClient.Client, reg, invoker, publisher)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, &cfg.Queue, executor, publisher)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 9. Background retention
	cleanupService := cleanup.NewService(&cfg.Retention, dbClient.Client)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 10. HTTP server
	httpServer := api.NewServer(api.Deps{
		DB:       dbClient,
		Agents:   agentService,
		Domains:  domainService,
		Jobs:     jobService,
		Pool:     workerPool,
		Broker:   broker,
		Listener: listener,
	})

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := httpServer.Start(addr); err != nil {
			errCh <- err
		}
	}()

	slog.Info("Reportline started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown: drain workers first, then the HTTP server
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, incomplete jobs will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
