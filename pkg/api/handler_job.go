package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reportline/reportline/pkg/models"
	"github.com/reportline/reportline/pkg/services"
)

// SubmitJobRequest is the body for report/query/management submission.
// Input carries the report text or the question; Extra is merged into the
// job's input map alongside it.
type SubmitJobRequest struct {
	DomainID string         `json:"domain_id" binding:"required"`
	Input    string         `json:"input" binding:"required"`
	Extra    map[string]any `json:"extra"`
}

// submitReport handles POST /api/v1/reports (ingestion job).
func (s *Server) submitReport(c *gin.Context) {
	s.submitJob(c, models.KindIngestion)
}

// submitQuery handles POST /api/v1/queries (query job).
func (s *Server) submitQuery(c *gin.Context) {
	s.submitJob(c, models.KindQuery)
}

// submitManagement handles POST /api/v1/management (management job).
func (s *Server) submitManagement(c *gin.Context) {
	s.submitJob(c, models.KindManagement)
}

func (s *Server) submitJob(c *gin.Context, kind models.JobKind) {
	var req SubmitJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Reject unknown domains up front; the queue would only discover the
	// problem after claiming the job.
	if _, err := s.deps.Domains.GetDomain(c.Request.Context(), tenantID(c), req.DomainID); err != nil {
		respondServiceError(c, err)
		return
	}

	job, err := s.deps.Jobs.SubmitJob(c.Request.Context(), services.SubmitJobInput{
		Kind:     kind,
		TenantID: tenantID(c),
		UserID:   userID(c),
		DomainID: req.DomainID,
		RawInput: req.Input,
		Extra:    req.Extra,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"job_id": job.ID,
		"status": job.Status,
	})
}

// getJob handles GET /api/v1/jobs/:id.
func (s *Server) getJob(c *gin.Context) {
	job, err := s.deps.Jobs.GetJob(c.Request.Context(), tenantID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// cancelJob handles POST /api/v1/jobs/:id/cancel. The status flip reaches the
// owning pod through its heartbeat; when this pod owns the job, the local
// cancel registry short-circuits the wait.
func (s *Server) cancelJob(c *gin.Context) {
	job, err := s.deps.Jobs.CancelJob(c.Request.Context(), tenantID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if s.deps.Pool != nil {
		s.deps.Pool.CancelJob(job.ID)
	}

	c.JSON(http.StatusOK, gin.H{
		"job_id": job.ID,
		"status": job.Status,
	})
}

// getIncident handles GET /api/v1/incidents/:id.
func (s *Server) getIncident(c *gin.Context) {
	rec, err := s.deps.Jobs.GetIncident(c.Request.Context(), tenantID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// getAnswer handles GET /api/v1/answers/:id.
func (s *Server) getAnswer(c *gin.Context) {
	rec, err := s.deps.Jobs.GetQueryAnswer(c.Request.Context(), tenantID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}
