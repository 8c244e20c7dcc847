package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	ratedomain "github.com/harborline/freightline/internal/ratecard/domain"
)

func (s *Server) StartDraft(c *gin.Context) {
	card, err := s.rateCardSvc.StartDraft(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": card})
}

func (s *Server) GetDraft(c *gin.Context) {
	card, err := s.rateCardSvc.Draft(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": card})
}

func (s *Server) UpdateDraft(c *gin.Context) {
	var patch ratedomain.CardPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	card, err := s.rateCardSvc.UpdateDraft(c.Request.Context(), patch)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": card})
}

func (s *Server) SaveDraft(c *gin.Context) {
	card, err := s.rateCardSvc.SaveDraft(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": card})
}

func (s *Server) DiscardDraft(c *gin.Context) {
	s.rateCardSvc.DiscardDraft(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"discarded": true})
}

func (s *Server) AddDraftCharge(c *gin.Context) {
	section := ratedomain.ChargeSection(c.Param("section"))

	card, err := s.rateCardSvc.AddDraftCharge(c.Request.Context(), section)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": card})
}

func (s *Server) UpdateDraftCharge(c *gin.Context) {
	var patch ratedomain.RowPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	section := ratedomain.ChargeSection(c.Param("section"))
	card, err := s.rateCardSvc.UpdateDraftCharge(c.Request.Context(), section, c.Param("rowId"), patch)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": card})
}

func (s *Server) RemoveDraftCharge(c *gin.Context) {
	section := ratedomain.ChargeSection(c.Param("section"))

	card, err := s.rateCardSvc.RemoveDraftCharge(c.Request.Context(), section, c.Param("rowId"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": card})
}
