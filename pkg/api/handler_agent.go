package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reportline/reportline/pkg/services"
)

// createAgent handles POST /api/v1/agents.
func (s *Server) createAgent(c *gin.Context) {
	var input services.AgentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := s.deps.Agents.CreateAgent(c.Request.Context(), tenantID(c), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// listAgents handles GET /api/v1/agents.
func (s *Server) listAgents(c *gin.Context) {
	recs, err := s.deps.Agents.ListAgents(c.Request.Context(), tenantID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"agents": recs})
}

// getAgent handles GET /api/v1/agents/:id.
func (s *Server) getAgent(c *gin.Context) {
	rec, err := s.deps.Agents.GetAgent(c.Request.Context(), tenantID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// updateAgent handles PUT /api/v1/agents/:id.
func (s *Server) updateAgent(c *gin.Context) {
	var input services.AgentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := s.deps.Agents.UpdateAgent(c.Request.Context(), tenantID(c), c.Param("id"), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// deleteAgent handles DELETE /api/v1/agents/:id.
func (s *Server) deleteAgent(c *gin.Context) {
	if err := s.deps.Agents.DeleteAgent(c.Request.Context(), tenantID(c), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
