package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reportline/reportline/pkg/services"
)

// createDomain handles POST /api/v1/domains.
func (s *Server) createDomain(c *gin.Context) {
	var input services.DomainInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := s.deps.Domains.CreateDomain(c.Request.Context(), tenantID(c), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// listDomains handles GET /api/v1/domains.
func (s *Server) listDomains(c *gin.Context) {
	recs, err := s.deps.Domains.ListDomains(c.Request.Context(), tenantID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"domains": recs})
}

// getDomain handles GET /api/v1/domains/:id.
func (s *Server) getDomain(c *gin.Context) {
	rec, err := s.deps.Domains.GetDomain(c.Request.Context(), tenantID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// updateDomain handles PUT /api/v1/domains/:id.
func (s *Server) updateDomain(c *gin.Context) {
	var input services.DomainInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := s.deps.Domains.UpdateDomain(c.Request.Context(), tenantID(c), c.Param("id"), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}
