package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	doctordomain "github.com/caredesk/caredesk/internal/doctor/domain"
)

func (s *Server) CreateDoctor(c *gin.Context) {
	var req doctordomain.CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.doctorSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) ListDoctors(c *gin.Context) {
	resp, err := s.doctorSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateDoctor(c *gin.Context) {
	var req doctordomain.UpdateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.DoctorID = c.Param("id")

	resp, err := s.doctorSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteDoctor(c *gin.Context) {
	if err := s.doctorSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}
