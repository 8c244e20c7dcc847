package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	carrierdomain "github.com/harborline/freightline/internal/carrier/domain"
	carrierrepo "github.com/harborline/freightline/internal/carrier/repository"
	carriersvc "github.com/harborline/freightline/internal/carrier/service"
	"github.com/harborline/freightline/internal/clock"
	"github.com/harborline/freightline/internal/config"
	currencydomain "github.com/harborline/freightline/internal/currency/domain"
	currencyrepo "github.com/harborline/freightline/internal/currency/repository"
	currencysvc "github.com/harborline/freightline/internal/currency/service"
	"github.com/harborline/freightline/internal/observability"
	"github.com/harborline/freightline/internal/providers/pdf"
	quotesvc "github.com/harborline/freightline/internal/quote/service"
	ratedomain "github.com/harborline/freightline/internal/ratecard/domain"
	ratecardrepo "github.com/harborline/freightline/internal/ratecard/repository"
	ratecardsvc "github.com/harborline/freightline/internal/ratecard/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&carrierdomain.Carrier{},
		&ratedomain.RateCard{},
		&currencydomain.ExchangeRate{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	cfg := config.Config{BaseCurrency: "USD", HTTPAddr: ":0"}
	log := zap.NewNop()
	fake := clock.NewFakeClock(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))

	carriers := carriersvc.New(carriersvc.Params{
		DB: db, Log: log, Clock: fake, GenID: node, Repo: carrierrepo.Provide(),
	})
	currencies := currencysvc.New(currencysvc.Params{
		Config: cfg, DB: db, Log: log, Clock: fake, GenID: node, Repo: currencyrepo.Provide(),
	})
	rateCards := ratecardsvc.New(ratecardsvc.Params{
		DB: db, Log: log, Clock: fake, GenID: node, Repo: ratecardrepo.Provide(),
	})
	quotes := quotesvc.New(quotesvc.Params{
		Config: cfg, Log: log, Clock: fake, Rates: currencies, RateCard: rateCards, PDF: pdf.New(),
	})

	engine := NewEngine(observability.Config{}, nil)
	return NewServer(ServerParams{
		Gin:         engine,
		Cfg:         cfg,
		DB:          db,
		GenID:       node,
		CarrierSvc:  carriers,
		CurrencySvc: currencies,
		RateCardSvc: rateCards,
		QuoteSvc:    quotes,
	})
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)
	return w
}

func TestDraftLifecycleOverHTTP(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/draft", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Only one draft at a time.
	w = doJSON(t, s, http.MethodPost, "/api/draft", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, s, http.MethodPatch, "/api/draft", map[string]any{
		"pol":        "Casablanca",
		"pod":        "Rotterdam",
		"valid_from": "2024-01-01T00:00:00Z",
		"valid_to":   "2024-12-31T00:00:00Z",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodPost, "/api/draft/charges/freight", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodPost, "/api/draft/charges/customs", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, s, http.MethodPost, "/api/draft/save", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var saved struct {
		Data ratedomain.RateCard `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	assert.False(t, ratedomain.IsDraftID(saved.Data.ID))
	assert.Equal(t, ratedomain.StatusActive, saved.Data.Status)

	// The draft slot is empty again.
	w = doJSON(t, s, http.MethodGet, "/api/draft", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestResolveEndpoint(t *testing.T) {
	s := newTestServer(t)

	doJSON(t, s, http.MethodPost, "/api/draft", nil)
	doJSON(t, s, http.MethodPatch, "/api/draft", map[string]any{
		"pol":        "Casablanca",
		"pod":        "Rotterdam",
		"valid_from": "2024-01-01T00:00:00Z",
		"valid_to":   "2024-12-31T00:00:00Z",
	})
	doJSON(t, s, http.MethodPost, "/api/draft/save", nil)

	w := doJSON(t, s, http.MethodGet, "/api/rate-cards/resolve?pol=Casablanca&pod=Rotterdam&mode=sea_fcl&date=2024-06-01", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resolved struct {
		Matched bool `json:"matched"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resolved))
	assert.True(t, resolved.Matched)

	w = doJSON(t, s, http.MethodGet, "/api/rate-cards/resolve?pol=Casablanca&pod=Hamburg&mode=sea_fcl&date=2024-06-01", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resolved))
	assert.False(t, resolved.Matched)

	w = doJSON(t, s, http.MethodGet, "/api/rate-cards/resolve?pol=Casablanca&pod=Rotterdam&mode=sea_fcl&date=June", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRateCardNotFound(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodGet, "/api/rate-cards/123", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp struct {
		Error struct {
			Type string `json:"type"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "not_found", resp.Error.Type)
}

func TestExchangeRateEndpoints(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPut, "/api/exchange-rates", map[string]any{
		"currency": "EUR",
		"rate":     "0.9",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodPut, "/api/exchange-rates", map[string]any{
		"currency": "USD",
		"rate":     "1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, s, http.MethodGet, "/api/exchange-rates", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		BaseCurrency string            `json:"base_currency"`
		Data         []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, "USD", list.BaseCurrency)
	assert.Len(t, list.Data, 1)
}

func TestDashboardEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data dashboardResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Zero(t, resp.Data.TotalCards)
}
