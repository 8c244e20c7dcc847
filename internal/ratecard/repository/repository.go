package repository

import (
	"context"

	ratedomain "github.com/harborline/freightline/internal/ratecard/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() ratedomain.Repository {
	return &repo{}
}

func (r *repo) FetchAll(ctx context.Context, db *gorm.DB) ([]ratedomain.RateCard, error) {
	var items []ratedomain.RateCard
	err := db.WithContext(ctx).Order("updated_at DESC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, card *ratedomain.RateCard) error {
	return db.WithContext(ctx).Create(card).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, card *ratedomain.RateCard) error {
	return db.WithContext(ctx).Save(card).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&ratedomain.RateCard{}).Error
}
