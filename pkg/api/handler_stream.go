package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reportline/reportline/pkg/events"
)

// streamJob handles GET /api/v1/jobs/:id/stream: a Server-Sent Events stream
// of the job's status events as they are NOTIFY'd by the publisher.
func (s *Server) streamJob(c *gin.Context) {
	s.stream(c, events.JobChannel(c.Param("id")))
}

// streamAllJobs handles GET /api/v1/jobs/stream: job-level terminal events
// across all jobs, for dashboards.
func (s *Server) streamAllJobs(c *gin.Context) {
	s.stream(c, events.GlobalJobsChannel)
}

func (s *Server) stream(c *gin.Context, channel string) {
	if s.deps.Broker == nil || s.deps.Listener == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "event streaming is not enabled"})
		return
	}

	ctx := c.Request.Context()
	if err := s.deps.Listener.Listen(ctx, channel); err != nil {
		respondServiceError(c, err)
		return
	}

	sub, cancel := s.deps.Broker.Subscribe(channel)
	defer func() {
		cancel()
		// Drop the LISTEN when the last subscriber leaves; the publisher
		// still persists every event for catchup.
		if s.deps.Broker.SubscriberCount(channel) == 0 {
			_ = s.deps.Listener.Unlisten(c.Request.Context(), channel)
		}
	}()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case payload, ok := <-sub:
			if !ok {
				return false
			}
			c.SSEvent("status", string(payload))
			return true
		case <-ctx.Done():
			return false
		}
	})
}
