package property

import (
	"go.uber.org/fx"

	"github.com/rentora/rentora/internal/property/repository"
	"github.com/rentora/rentora/internal/report/distribution"
)

var Module = fx.Module("property",
	fx.Provide(repository.Provide),
	fx.Provide(func(r *repository.Repository) distribution.PropertySource { return r }),
)
