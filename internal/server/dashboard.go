package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	ratedomain "github.com/harborline/freightline/internal/ratecard/domain"
)

type dashboardResponse struct {
	TotalCards    int            `json:"total_cards"`
	ActiveCards   int            `json:"active_cards"`
	ExpiringSoon  int            `json:"expiring_soon"`
	CardsByMode   map[string]int `json:"cards_by_mode"`
	CardsByType   map[string]int `json:"cards_by_type"`
	Carriers      int            `json:"carriers"`
	ExchangeRates int            `json:"exchange_rates"`
}

// Dashboard summarizes the catalog for the back-office landing page.
// Expiring soon means the validity window ends within the next 30 days.
func (s *Server) Dashboard(c *gin.Context) {
	cards := s.rateCardSvc.List(c.Request.Context())

	now := time.Now().UTC()
	horizon := now.AddDate(0, 0, 30)

	resp := dashboardResponse{
		TotalCards:  len(cards),
		CardsByMode: make(map[string]int),
		CardsByType: make(map[string]int),
	}
	for _, card := range cards {
		resp.CardsByMode[string(card.Mode)]++
		resp.CardsByType[string(card.Type)]++
		if card.Status == ratedomain.StatusActive {
			resp.ActiveCards++
			if card.ValidTo.After(now) && card.ValidTo.Before(horizon) {
				resp.ExpiringSoon++
			}
		}
	}

	carriers, err := s.carrierSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	resp.Carriers = len(carriers)

	rates, err := s.currencySvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	resp.ExchangeRates = len(rates)

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
