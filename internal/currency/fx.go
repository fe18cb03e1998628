package currency

import (
	"go.uber.org/fx"

	"github.com/rentora/rentora/internal/report/finance"
)

var Module = fx.Module("currency",
	fx.Provide(NewService),
	fx.Provide(func(s *Service) finance.Converter { return s }),
)
