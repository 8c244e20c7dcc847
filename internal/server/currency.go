package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	currencydomain "github.com/harborline/freightline/internal/currency/domain"
	"github.com/shopspring/decimal"
)

type putExchangeRateRequest struct {
	Currency string          `json:"currency"`
	Rate     decimal.Decimal `json:"rate"`
}

func (s *Server) PutExchangeRate(c *gin.Context) {
	var req putExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.currencySvc.Put(c.Request.Context(), currencydomain.PutRequest{
		Currency: req.Currency,
		Rate:     req.Rate,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListExchangeRates(c *gin.Context) {
	resp, err := s.currencySvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp, "base_currency": s.cfg.BaseCurrency})
}

func (s *Server) DeleteExchangeRate(c *gin.Context) {
	if err := s.currencySvc.Delete(c.Request.Context(), c.Param("currency")); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
