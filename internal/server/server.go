package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/harborline/freightline/internal/carrier"
	carrierdomain "github.com/harborline/freightline/internal/carrier/domain"
	"github.com/harborline/freightline/internal/config"
	"github.com/harborline/freightline/internal/currency"
	currencydomain "github.com/harborline/freightline/internal/currency/domain"
	"github.com/harborline/freightline/internal/observability"
	obsmiddleware "github.com/harborline/freightline/internal/observability/logger"
	obsmetrics "github.com/harborline/freightline/internal/observability/metrics"
	obstracing "github.com/harborline/freightline/internal/observability/tracing"
	"github.com/harborline/freightline/internal/providers"
	"github.com/harborline/freightline/internal/quote"
	quotedomain "github.com/harborline/freightline/internal/quote/domain"
	"github.com/harborline/freightline/internal/ratecard"
	ratedomain "github.com/harborline/freightline/internal/ratecard/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	carrier.Module,
	currency.Module,
	providers.Module,
	ratecard.Module,
	quote.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug: obsCfg.Debug(),
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine      *gin.Engine
	cfg         config.Config
	db          *gorm.DB
	genID       *snowflake.Node
	carrierSvc  carrierdomain.Service
	currencySvc currencydomain.Service
	rateCardSvc ratedomain.Service
	quoteSvc    quotedomain.Service
}

type ServerParams struct {
	fx.In

	Gin         *gin.Engine
	Cfg         config.Config
	DB          *gorm.DB
	GenID       *snowflake.Node
	CarrierSvc  carrierdomain.Service
	CurrencySvc currencydomain.Service
	RateCardSvc ratedomain.Service
	QuoteSvc    quotedomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:      p.Gin,
		cfg:         p.Cfg,
		db:          p.DB,
		genID:       p.GenID,
		carrierSvc:  p.CarrierSvc,
		currencySvc: p.CurrencySvc,
		rateCardSvc: p.RateCardSvc,
		quoteSvc:    p.QuoteSvc,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	// -------- Rate cards --------
	api.GET("/rate-cards", s.ListRateCards)
	api.POST("/rate-cards/refresh", s.RefreshRateCards)
	api.GET("/rate-cards/:id", s.GetRateCardByID)
	api.DELETE("/rate-cards/:id", s.DeleteRateCard)
	api.POST("/rate-cards/:id/edit", s.EditRateCard)
	api.GET("/rate-cards/resolve", s.ResolveRateCard)

	// -------- Draft editing --------
	// A single draft slot; starting a second draft conflicts.
	api.POST("/draft", s.StartDraft)
	api.GET("/draft", s.GetDraft)
	api.PATCH("/draft", s.UpdateDraft)
	api.POST("/draft/save", s.SaveDraft)
	api.DELETE("/draft", s.DiscardDraft)
	api.POST("/draft/charges/:section", s.AddDraftCharge)
	api.PATCH("/draft/charges/:section/:rowId", s.UpdateDraftCharge)
	api.DELETE("/draft/charges/:section/:rowId", s.RemoveDraftCharge)

	// -------- Quotes --------
	api.POST("/quotes", s.BuildQuote)
	api.POST("/quotes/pdf", s.RenderQuotePDF)

	// -------- Carriers --------
	api.GET("/carriers", s.ListCarriers)
	api.POST("/carriers", s.CreateCarrier)
	api.GET("/carriers/:id", s.GetCarrierByID)
	api.DELETE("/carriers/:id", s.DeleteCarrier)

	// -------- Exchange rates --------
	api.GET("/exchange-rates", s.ListExchangeRates)
	api.PUT("/exchange-rates", s.PutExchangeRate)
	api.DELETE("/exchange-rates/:currency", s.DeleteExchangeRate)

	// -------- Dashboard --------
	api.GET("/dashboard", s.Dashboard)
}
