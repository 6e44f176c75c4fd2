package api

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// Header and context keys for tenant scoping. Transport-level authentication
// is out of scope; the headers identify, they do not authenticate.
const (
	HeaderTenantID = "X-Tenant-ID"
	HeaderUserID   = "X-User-ID"

	DefaultTenant = "default"

	ctxTenantID = "tenant_id"
	ctxUserID   = "user_id"
)

// tenantContext resolves the tenant and user for the request.
func tenantContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := c.GetHeader(HeaderTenantID)
		if tenantID == "" {
			tenantID = DefaultTenant
		}
		c.Set(ctxTenantID, tenantID)
		c.Set(ctxUserID, c.GetHeader(HeaderUserID))
		c.Next()
	}
}

// tenantID returns the request's resolved tenant.
func tenantID(c *gin.Context) string {
	return c.GetString(ctxTenantID)
}

// userID returns the request's user, possibly empty.
func userID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

// requestLogger logs one line per request via slog.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"tenant_id", tenantID(c),
		)
	}
}
