// Package seed provides first-run conveniences for local development.
package seed

import (
	"time"

	"github.com/bwmarrin/snowflake"
	currencydomain "github.com/harborline/freightline/internal/currency/domain"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// defaultRates gives a fresh development database a workable conversion
// table against USD. Production deployments maintain rates via the API.
var defaultRates = map[string]string{
	"EUR": "0.92",
	"GBP": "0.79",
	"MAD": "10.05",
	"AED": "3.67",
	"CNY": "7.24",
}

// EnsureBaseRates inserts the default rate table when the pair is absent.
// Existing rows are never overwritten.
func EnsureBaseRates(db *gorm.DB, genID *snowflake.Node, baseCurrency string) error {
	if baseCurrency != "USD" {
		return nil
	}

	now := time.Now().UTC()
	for code, raw := range defaultRates {
		rate, err := decimal.NewFromString(raw)
		if err != nil {
			return err
		}
		entity := currencydomain.ExchangeRate{
			ID:           genID.Generate(),
			BaseCurrency: baseCurrency,
			Currency:     code,
			Rate:         rate,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		err = db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "base_currency"}, {Name: "currency"}},
			DoNothing: true,
		}).Create(&entity).Error
		if err != nil {
			return err
		}
	}
	return nil
}
