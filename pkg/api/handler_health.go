package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/reportline/reportline/pkg/version"
)

// getHealth handles GET /api/v1/health: database reachability plus worker
// pool statistics.
func (s *Server) getHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	body := gin.H{"status": "healthy", "version": version.Full()}
	healthy := true

	dbHealth, err := s.deps.DB.Health(ctx)
	body["database"] = dbHealth
	if err != nil {
		healthy = false
		body["error"] = err.Error()
	}

	if s.deps.Pool != nil {
		poolHealth := s.deps.Pool.Health()
		body["queue"] = poolHealth
		if !poolHealth.IsHealthy {
			healthy = false
		}
	}

	if !healthy {
		body["status"] = "unhealthy"
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}
	c.JSON(http.StatusOK, body)
}
