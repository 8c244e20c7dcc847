// Package domain defines the exchange-rate records backing multi-currency
// charge calculation.
package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/harborline/freightline/internal/pricing"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExchangeRate stores how many units of Currency one unit of BaseCurrency
// buys. The (base_currency, currency) pair is unique; updates overwrite.
type ExchangeRate struct {
	ID           snowflake.ID    `json:"id" gorm:"primaryKey"`
	BaseCurrency string          `json:"base_currency" gorm:"type:text;not null;uniqueIndex:idx_exchange_rates_pair"`
	Currency     string          `json:"currency" gorm:"type:text;not null;uniqueIndex:idx_exchange_rates_pair"`
	Rate         decimal.Decimal `json:"rate" gorm:"type:numeric(18,8);not null"`
	CreatedAt    time.Time       `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time       `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (ExchangeRate) TableName() string { return "exchange_rates" }

// PutRequest sets or overwrites one rate against the configured base.
type PutRequest struct {
	Currency string          `json:"currency"`
	Rate     decimal.Decimal `json:"rate"`
}

type Service interface {
	Put(ctx context.Context, req PutRequest) (*ExchangeRate, error)
	List(ctx context.Context) ([]ExchangeRate, error)
	Delete(ctx context.Context, currency string) error

	// Table materializes the stored rates into the conversion table used
	// by the charge calculator.
	Table(ctx context.Context) (pricing.Rates, error)
}

type Repository interface {
	FindAll(ctx context.Context, db *gorm.DB, baseCurrency string) ([]ExchangeRate, error)
	FindByCurrency(ctx context.Context, db *gorm.DB, baseCurrency, currency string) (*ExchangeRate, error)
	Upsert(ctx context.Context, db *gorm.DB, rate *ExchangeRate) error
	Delete(ctx context.Context, db *gorm.DB, baseCurrency, currency string) error
}
