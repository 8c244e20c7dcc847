package migration

import (
	"github.com/bwmarrin/snowflake"
	carrierdomain "github.com/harborline/freightline/internal/carrier/domain"
	"github.com/harborline/freightline/internal/config"
	currencydomain "github.com/harborline/freightline/internal/currency/domain"
	ratedomain "github.com/harborline/freightline/internal/ratecard/domain"
	"github.com/harborline/freightline/internal/seed"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config, genID *snowflake.Node) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// Non-postgres targets (sqlite for local work) skip the SQL
			// migration set and build the schema from the models.
			err := conn.AutoMigrate(
				&carrierdomain.Carrier{},
				&ratedomain.RateCard{},
				&currencydomain.ExchangeRate{},
			)
			if err != nil {
				return err
			}
		}

		return seed.EnsureBaseRates(conn, genID, cfg.BaseCurrency)
	}),
)
