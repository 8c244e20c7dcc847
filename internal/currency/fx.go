package currency

import (
	"github.com/harborline/freightline/internal/currency/repository"
	"github.com/harborline/freightline/internal/currency/service"
	"go.uber.org/fx"
)

var Module = fx.Module("currency.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
