package tenant

import (
	"go.uber.org/fx"

	"github.com/rentora/rentora/internal/tenant/service"
)

var Module = fx.Module("tenant",
	fx.Provide(service.NewService),
)
