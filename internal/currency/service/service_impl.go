package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/harborline/freightline/internal/clock"
	"github.com/harborline/freightline/internal/config"
	currencydomain "github.com/harborline/freightline/internal/currency/domain"
	"github.com/harborline/freightline/internal/pricing"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	Config config.Config
	DB     *gorm.DB
	Log    *zap.Logger
	Clock  clock.Clock
	GenID  *snowflake.Node
	Repo   currencydomain.Repository
}

type Service struct {
	base  string
	db    *gorm.DB
	log   *zap.Logger
	clock clock.Clock
	genID *snowflake.Node
	repo  currencydomain.Repository
}

func New(p Params) currencydomain.Service {
	return &Service{
		base:  p.Config.BaseCurrency,
		db:    p.DB,
		log:   p.Log.Named("currency.service"),
		clock: p.Clock,
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Put(ctx context.Context, req currencydomain.PutRequest) (*currencydomain.ExchangeRate, error) {
	code, err := normalizeCurrency(req.Currency)
	if err != nil {
		return nil, err
	}
	if code == s.base {
		return nil, currencydomain.ErrBaseImmutable
	}
	if !req.Rate.IsPositive() {
		return nil, currencydomain.ErrInvalidRate
	}

	now := s.clock.Now().UTC()
	entity := &currencydomain.ExchangeRate{
		ID:           s.genID.Generate(),
		BaseCurrency: s.base,
		Currency:     code,
		Rate:         req.Rate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Upsert(ctx, s.db, entity); err != nil {
		return nil, err
	}

	s.log.Info("exchange rate stored",
		zap.String("currency", code),
		zap.String("rate", req.Rate.String()),
	)
	return entity, nil
}

func (s *Service) List(ctx context.Context) ([]currencydomain.ExchangeRate, error) {
	return s.repo.FindAll(ctx, s.db, s.base)
}

func (s *Service) Delete(ctx context.Context, currency string) error {
	code, err := normalizeCurrency(currency)
	if err != nil {
		return err
	}
	if code == s.base {
		return currencydomain.ErrBaseImmutable
	}
	return s.repo.Delete(ctx, s.db, s.base, code)
}

func (s *Service) Table(ctx context.Context) (pricing.Rates, error) {
	items, err := s.repo.FindAll(ctx, s.db, s.base)
	if err != nil {
		return pricing.Rates{}, err
	}

	perBase := make(map[string]decimal.Decimal, len(items))
	for _, item := range items {
		perBase[item.Currency] = item.Rate
	}
	return pricing.Rates{Base: s.base, PerBase: perBase}, nil
}

func normalizeCurrency(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return "", currencydomain.ErrInvalidCurrency
	}
	return code, nil
}
