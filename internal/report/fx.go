package report

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/rentora/rentora/internal/clock"
	"github.com/rentora/rentora/internal/config"
	"github.com/rentora/rentora/internal/observability/metrics"
	"github.com/rentora/rentora/internal/report/distribution"
	"github.com/rentora/rentora/internal/report/finance"
)

var Module = fx.Module("report",
	fx.Provide(func(
		payments finance.PaymentSource,
		converter finance.Converter,
		clk clock.Clock,
		log *zap.Logger,
		cfg config.Config,
		m *metrics.ReportMetrics,
	) *finance.Service {
		return finance.NewService(payments, converter, clk, log, cfg.BaseCurrency, finance.WithMetrics(m))
	}),
	fx.Provide(distribution.NewService),
)
