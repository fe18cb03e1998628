package lease

import (
	"go.uber.org/fx"

	"github.com/rentora/rentora/internal/lease/repository"
	taskdomain "github.com/rentora/rentora/internal/task/domain"
)

var Module = fx.Module("lease",
	fx.Provide(repository.Provide),
	fx.Provide(func(r *repository.Repository) taskdomain.LeaseSource { return r }),
)
