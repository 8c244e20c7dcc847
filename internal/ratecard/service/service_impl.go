package service

import (
	"context"
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/harborline/freightline/internal/clock"
	"github.com/harborline/freightline/internal/ratecard/catalog"
	ratedomain "github.com/harborline/freightline/internal/ratecard/domain"
	"github.com/harborline/freightline/internal/ratecard/editor"
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
	Repo  ratedomain.Repository
}

// Service serializes access to the in-memory catalog and the single active
// draft. The store is the source of truth; the catalog only changes after a
// persistence call has succeeded.
type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	clock clock.Clock
	genID *snowflake.Node
	repo  ratedomain.Repository

	mu      sync.RWMutex
	catalog *catalog.Catalog
	draft   *ratedomain.RateCard
}

func New(p Params) ratedomain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("ratecard.service"),
		clock:   p.Clock,
		genID:   p.GenID,
		repo:    p.Repo,
		catalog: catalog.New(),
	}
}

func (s *Service) Refresh(ctx context.Context) error {
	cards, err := s.repo.FetchAll(ctx, s.db)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.catalog.Load(cards)
	s.mu.Unlock()

	s.log.Info("catalog refreshed", zap.Int("cards", len(cards)))
	return nil
}

func (s *Service) List(ctx context.Context) []ratedomain.RateCard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.Cards()
}

func (s *Service) Get(ctx context.Context, id string) (*ratedomain.RateCard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	card, ok := s.catalog.Get(id)
	if !ok {
		return nil, ratedomain.ErrNotFound
	}
	return &card, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.RLock()
	_, ok := s.catalog.Get(id)
	s.mu.RUnlock()
	if !ok {
		return ratedomain.ErrNotFound
	}

	if err := s.repo.Delete(ctx, s.db, id); err != nil {
		return err
	}

	s.mu.Lock()
	s.catalog.Remove(id)
	if s.draft != nil && s.draft.ID == id {
		s.draft = nil
	}
	s.mu.Unlock()

	s.log.Info("rate card deleted", zap.String("rate_card_id", id))
	return nil
}

func (s *Service) Resolve(ctx context.Context, req ratedomain.ResolveRequest) (*ratedomain.RateCard, bool, error) {
	switch req.Mode {
	case ratedomain.SeaFCL, ratedomain.SeaLCL, ratedomain.Air, ratedomain.Road:
	default:
		return nil, false, ratedomain.ErrInvalidMode
	}
	if req.Date.IsZero() {
		return nil, false, ratedomain.ErrInvalidDate
	}

	s.mu.RLock()
	card, ok := s.catalog.FindBestMatch(req.POL, req.POD, req.Mode, req.Date)
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	return &card, true, nil
}

func (s *Service) StartDraft(ctx context.Context) (ratedomain.RateCard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft != nil {
		return ratedomain.RateCard{}, ratedomain.ErrDraftInProgress
	}

	draft := editor.NewDraft(s.clock.Now().UTC())
	s.draft = &draft
	return draft.Clone(), nil
}

func (s *Service) EditCard(ctx context.Context, id string) (ratedomain.RateCard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft != nil {
		return ratedomain.RateCard{}, ratedomain.ErrDraftInProgress
	}

	card, ok := s.catalog.Get(id)
	if !ok {
		return ratedomain.RateCard{}, ratedomain.ErrNotFound
	}
	s.draft = &card
	return card.Clone(), nil
}

func (s *Service) Draft(ctx context.Context) (ratedomain.RateCard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.draft == nil {
		return ratedomain.RateCard{}, ratedomain.ErrNoDraft
	}
	return s.draft.Clone(), nil
}

func (s *Service) UpdateDraft(ctx context.Context, patch ratedomain.CardPatch) (ratedomain.RateCard, error) {
	return s.editDraft(func(card ratedomain.RateCard) (ratedomain.RateCard, error) {
		return editor.UpdateCard(card, patch)
	})
}

func (s *Service) AddDraftCharge(ctx context.Context, section ratedomain.ChargeSection) (ratedomain.RateCard, error) {
	return s.editDraft(func(card ratedomain.RateCard) (ratedomain.RateCard, error) {
		return editor.AddChargeRow(card, section)
	})
}

func (s *Service) UpdateDraftCharge(ctx context.Context, section ratedomain.ChargeSection, rowID string, patch ratedomain.RowPatch) (ratedomain.RateCard, error) {
	return s.editDraft(func(card ratedomain.RateCard) (ratedomain.RateCard, error) {
		return editor.UpdateChargeRow(card, section, rowID, patch)
	})
}

func (s *Service) RemoveDraftCharge(ctx context.Context, section ratedomain.ChargeSection, rowID string) (ratedomain.RateCard, error) {
	return s.editDraft(func(card ratedomain.RateCard) (ratedomain.RateCard, error) {
		return editor.RemoveChargeRow(card, section, rowID)
	})
}

// SaveDraft persists the active draft and, only on success, publishes it to
// the catalog and clears the draft slot. A failed write leaves both the
// catalog and the draft untouched so the edit can be retried.
func (s *Service) SaveDraft(ctx context.Context) (ratedomain.RateCard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return ratedomain.RateCard{}, ratedomain.ErrNoDraft
	}

	card := s.draft.Clone()
	now := s.clock.Now().UTC()
	card.Status = ratedomain.StatusActive
	card.UpdatedAt = now

	if ratedomain.IsDraftID(card.ID) {
		card.ID = s.genID.Generate().String()
		card.CreatedAt = now
		if err := s.repo.Insert(ctx, s.db, &card); err != nil {
			return ratedomain.RateCard{}, err
		}
	} else {
		if err := s.repo.Update(ctx, s.db, &card); err != nil {
			return ratedomain.RateCard{}, err
		}
	}

	s.catalog.Upsert(card)
	s.draft = nil

	s.log.Info("rate card saved",
		zap.String("rate_card_id", card.ID),
		zap.String("reference", card.Reference),
	)
	return card, nil
}

func (s *Service) DiscardDraft(ctx context.Context) {
	s.mu.Lock()
	s.draft = nil
	s.mu.Unlock()
}

func (s *Service) editDraft(apply func(ratedomain.RateCard) (ratedomain.RateCard, error)) (ratedomain.RateCard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return ratedomain.RateCard{}, ratedomain.ErrNoDraft
	}

	next, err := apply(s.draft.Clone())
	if err != nil {
		return ratedomain.RateCard{}, err
	}
	s.draft = &next
	return next.Clone(), nil
}
