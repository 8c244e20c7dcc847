package ratecard

import (
	"context"

	ratedomain "github.com/harborline/freightline/internal/ratecard/domain"
	"github.com/harborline/freightline/internal/ratecard/repository"
	"github.com/harborline/freightline/internal/ratecard/service"
	"go.uber.org/fx"
)

var Module = fx.Module("ratecard.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
	fx.Invoke(warmCatalog),
)

// warmCatalog loads the catalog from the store once on startup so resolution
// works before the first explicit refresh.
func warmCatalog(lc fx.Lifecycle, svc ratedomain.Service) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return svc.Refresh(ctx)
		},
	})
}
