package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	quotedomain "github.com/harborline/freightline/internal/quote/domain"
)

func (s *Server) BuildQuote(c *gin.Context) {
	var req quotedomain.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	quote, ok, err := s.quoteSvc.Build(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusOK, gin.H{"matched": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"matched": true, "data": quote})
}

func (s *Server) RenderQuotePDF(c *gin.Context) {
	var req quotedomain.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	raw, quote, err := s.quoteSvc.RenderPDF(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	filename := "quote-" + quote.RateCardID + ".pdf"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", raw)
}
