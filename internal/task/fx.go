package task

import (
	"go.uber.org/fx"

	"github.com/rentora/rentora/internal/task/service"
)

var Module = fx.Module("task",
	fx.Provide(service.NewService),
)
