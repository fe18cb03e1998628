package maintenance

import (
	"go.uber.org/fx"

	"github.com/rentora/rentora/internal/maintenance/repository"
	taskdomain "github.com/rentora/rentora/internal/task/domain"
)

var Module = fx.Module("maintenance",
	fx.Provide(repository.Provide),
	fx.Provide(func(r *repository.Repository) taskdomain.MaintenanceSource { return r }),
)
