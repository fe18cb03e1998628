package tariff

import (
	"go.uber.org/fx"

	"github.com/rentora/rentora/internal/tariff/service"
)

var Module = fx.Module("tariff",
	fx.Provide(service.NewService),
)
