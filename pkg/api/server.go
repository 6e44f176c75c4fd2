// Package api exposes the HTTP surface: agent and domain administration, job
// submission and inspection, artifact retrieval, live event streaming, and
// health. Handlers translate HTTP to service calls; validation and
// persistence live in pkg/services.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/reportline/reportline/pkg/database"
	"github.com/reportline/reportline/pkg/events"
	"github.com/reportline/reportline/pkg/queue"
	"github.com/reportline/reportline/pkg/services"
)

// PoolStatus is the worker-pool surface the API needs: health reporting and
// local job cancellation.
type PoolStatus interface {
	Health() *queue.PoolHealth
	CancelJob(jobID string) bool
}

// Deps carries the constructor dependencies for the API server.
// Pool, Broker, and Listener may be nil; the affected endpoints degrade
// (health omits pool stats, streaming returns 503).
type Deps struct {
	DB       *database.Client
	Agents   *services.AgentService
	Domains  *services.DomainService
	Jobs     *services.JobService
	Pool     PoolStatus
	Broker   *events.Broker
	Listener *events.NotifyListener
}

// Server is the HTTP API server.
type Server struct {
	deps       Deps
	httpServer *http.Server
}

// NewServer creates a new API server.
func NewServer(deps Deps) *Server {
	return &Server{deps: deps}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(), tenantContext())

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", s.getHealth)

		v1.POST("/agents", s.createAgent)
		v1.GET("/agents", s.listAgents)
		v1.GET("/agents/:id", s.getAgent)
		v1.PUT("/agents/:id", s.updateAgent)
		v1.DELETE("/agents/:id", s.deleteAgent)

		v1.POST("/domains", s.createDomain)
		v1.GET("/domains", s.listDomains)
		v1.GET("/domains/:id", s.getDomain)
		v1.PUT("/domains/:id", s.updateDomain)

		v1.POST("/reports", s.submitReport)
		v1.POST("/queries", s.submitQuery)
		v1.POST("/management", s.submitManagement)

		v1.GET("/jobs/:id", s.getJob)
		v1.POST("/jobs/:id/cancel", s.cancelJob)
		v1.GET("/jobs/:id/stream", s.streamJob)
		v1.GET("/jobs/stream", s.streamAllJobs)

		v1.GET("/incidents/:id", s.getIncident)
		v1.GET("/answers/:id", s.getAnswer)
	}

	return router
}

// Start begins serving on addr and blocks until the server exits.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("API server listening", "addr", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
