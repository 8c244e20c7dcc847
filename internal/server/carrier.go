package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	carrierdomain "github.com/harborline/freightline/internal/carrier/domain"
)

type createCarrierRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
	SCAC string `json:"scac"`
}

func (s *Server) CreateCarrier(c *gin.Context) {
	var req createCarrierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.carrierSvc.Create(c.Request.Context(), carrierdomain.CreateRequest{
		Code: strings.TrimSpace(req.Code),
		Name: strings.TrimSpace(req.Name),
		SCAC: strings.TrimSpace(req.SCAC),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListCarriers(c *gin.Context) {
	resp, err := s.carrierSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetCarrierByID(c *gin.Context) {
	resp, err := s.carrierSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteCarrier(c *gin.Context) {
	if err := s.carrierSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
