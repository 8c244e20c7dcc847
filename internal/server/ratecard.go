package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	ratedomain "github.com/harborline/freightline/internal/ratecard/domain"
)

func (s *Server) ListRateCards(c *gin.Context) {
	cards := s.rateCardSvc.List(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"data": cards})
}

func (s *Server) GetRateCardByID(c *gin.Context) {
	card, err := s.rateCardSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": card})
}

func (s *Server) DeleteRateCard(c *gin.Context) {
	if err := s.rateCardSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (s *Server) RefreshRateCards(c *gin.Context) {
	if err := s.rateCardSvc.Refresh(c.Request.Context()); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"refreshed": true})
}

func (s *Server) EditRateCard(c *gin.Context) {
	card, err := s.rateCardSvc.EditCard(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": card})
}

// ResolveRateCard answers which single rate card would price a shipment.
// An empty match is reported in the body, not as an error status.
func (s *Server) ResolveRateCard(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		AbortWithError(c, ratedomain.ErrInvalidDate)
		return
	}

	card, ok, err := s.rateCardSvc.Resolve(c.Request.Context(), ratedomain.ResolveRequest{
		POL:  strings.TrimSpace(c.Query("pol")),
		POD:  strings.TrimSpace(c.Query("pod")),
		Mode: ratedomain.TransportMode(strings.ToUpper(c.Query("mode"))),
		Date: date,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusOK, gin.H{"matched": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"matched": true, "data": card})
}
