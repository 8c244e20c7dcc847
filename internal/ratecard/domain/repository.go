package domain

import (
	"context"

	"gorm.io/gorm"
)

// Repository is the persistence gateway for rate cards. The in-memory
// catalog is only mutated after one of these calls succeeds.
type Repository interface {
	FetchAll(ctx context.Context, db *gorm.DB) ([]RateCard, error)
	Insert(ctx context.Context, db *gorm.DB, card *RateCard) error
	Update(ctx context.Context, db *gorm.DB, card *RateCard) error
	Delete(ctx context.Context, db *gorm.DB, id string) error
}
