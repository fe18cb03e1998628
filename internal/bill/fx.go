package bill

import (
	"go.uber.org/fx"

	"github.com/rentora/rentora/internal/bill/repository"
	taskdomain "github.com/rentora/rentora/internal/task/domain"
)

var Module = fx.Module("bill",
	fx.Provide(repository.Provide),
	fx.Provide(func(r *repository.Repository) taskdomain.BillSource { return r }),
)
