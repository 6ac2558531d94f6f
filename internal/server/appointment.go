package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appointmentdomain "github.com/caredesk/caredesk/internal/appointment/domain"
)

func (s *Server) CreateAppointment(c *gin.Context) {
	var req appointmentdomain.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.appointmentSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) ListAppointments(c *gin.Context) {
	resp, err := s.appointmentSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateAppointment(c *gin.Context) {
	var req appointmentdomain.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ApptID = c.Param("id")

	resp, err := s.appointmentSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteAppointment(c *gin.Context) {
	if err := s.appointmentSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}
