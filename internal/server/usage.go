package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ledgerdomain "github.com/caredesk/caredesk/internal/ledger/domain"
)

type attributeServiceRequest struct {
	ServiceID string `json:"service_id"`
}

// AttributeService stages a usage entry against the patient, copying the
// catalog entry's name and cost at attribution time. Later catalog edits do
// not change what was staged.
func (s *Server) AttributeService(c *gin.Context) {
	var req attributeServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	entry, err := s.catalogSvc.GetByID(c.Request.Context(), req.ServiceID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.ledgerSvc.Attribute(c.Request.Context(), ledgerdomain.AttributeRequest{
		PatientID: c.Param("id"),
		Service:   entry,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) ListStagedUsage(c *gin.Context) {
	resp, err := s.ledgerSvc.ListForPatient(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ClearStagedUsage(c *gin.Context) {
	if err := s.ledgerSvc.ClearForPatient(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"cleared": true}})
}
