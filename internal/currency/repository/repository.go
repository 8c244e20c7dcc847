package repository

import (
	"context"

	currencydomain "github.com/harborline/freightline/internal/currency/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct{}

func Provide() currencydomain.Repository {
	return &repo{}
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB, baseCurrency string) ([]currencydomain.ExchangeRate, error) {
	var items []currencydomain.ExchangeRate
	err := db.WithContext(ctx).
		Where("base_currency = ?", baseCurrency).
		Order("currency ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindByCurrency(ctx context.Context, db *gorm.DB, baseCurrency, currency string) (*currencydomain.ExchangeRate, error) {
	var item currencydomain.ExchangeRate
	err := db.WithContext(ctx).
		Where("base_currency = ? AND currency = ?", baseCurrency, currency).
		First(&item).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repo) Upsert(ctx context.Context, db *gorm.DB, rate *currencydomain.ExchangeRate) error {
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "base_currency"}, {Name: "currency"}},
		DoUpdates: clause.AssignmentColumns([]string{"rate", "updated_at"}),
	}).Create(rate).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, baseCurrency, currency string) error {
	return db.WithContext(ctx).
		Where("base_currency = ? AND currency = ?", baseCurrency, currency).
		Delete(&currencydomain.ExchangeRate{}).Error
}
