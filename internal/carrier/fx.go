package carrier

import (
	"github.com/harborline/freightline/internal/carrier/repository"
	"github.com/harborline/freightline/internal/carrier/service"
	"go.uber.org/fx"
)

var Module = fx.Module("carrier.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
