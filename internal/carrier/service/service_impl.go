package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	carrierdomain "github.com/harborline/freightline/internal/carrier/domain"
	"github.com/harborline/freightline/internal/clock"
	"github.com/harborline/freightline/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Clock clock.Clock
	GenID *snowflake.Node
	Repo  carrierdomain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	clock clock.Clock
	genID *snowflake.Node
	repo  carrierdomain.Repository
}

func New(p Params) carrierdomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("carrier.service"),
		clock: p.Clock,
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req carrierdomain.CreateRequest) (*carrierdomain.Carrier, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, carrierdomain.ErrInvalidName
	}

	code := strings.ToUpper(slug.Make(req.Code))
	if code == "" {
		code = strings.ToUpper(slug.Make(name))
	}
	if code == "" {
		return nil, carrierdomain.ErrInvalidCode
	}

	existing, err := s.repo.FindByCode(ctx, s.db, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, carrierdomain.ErrCodeConflict
	}

	now := s.clock.Now().UTC()
	entity := &carrierdomain.Carrier{
		ID:        s.genID.Generate(),
		Code:      code,
		Name:      name,
		SCAC:      strings.ToUpper(strings.TrimSpace(req.SCAC)),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Insert(ctx, s.db, entity); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, carrierdomain.ErrCodeConflict
		}
		return nil, err
	}

	s.log.Info("carrier created", zap.String("code", code))
	return entity, nil
}

func (s *Service) List(ctx context.Context) ([]carrierdomain.Carrier, error) {
	return s.repo.FindAll(ctx, s.db)
}

func (s *Service) Get(ctx context.Context, id string) (*carrierdomain.Carrier, error) {
	carrierID, err := parseID(id)
	if err != nil {
		return nil, carrierdomain.ErrInvalidID
	}

	entity, err := s.repo.FindByID(ctx, s.db, carrierID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, carrierdomain.ErrNotFound
	}
	return entity, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	carrierID, err := parseID(id)
	if err != nil {
		return carrierdomain.ErrInvalidID
	}
	return s.repo.Delete(ctx, s.db, carrierID)
}

func parseID(id string) (snowflake.ID, error) {
	raw, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, err
	}
	return snowflake.ParseInt64(raw), nil
}
