// Package observability bundles logging, tracing and metrics into one fx module.
package observability

import (
	"go.uber.org/fx"

	"github.com/rentora/rentora/internal/config"
	"github.com/rentora/rentora/internal/observability/logger"
	"github.com/rentora/rentora/internal/observability/metrics"
	"github.com/rentora/rentora/internal/observability/tracing"
)

var Module = fx.Module("observability",
	logger.Module,
	fx.Provide(func(cfg config.Config) metrics.Config {
		return metrics.Config{
			ServiceName: cfg.Observability.ServiceName,
			Environment: cfg.Environment,
		}
	}),
	fx.Provide(metrics.NewMeterProvider),
	fx.Provide(metrics.NewHTTPMetrics),
	fx.Provide(metrics.Report),
	fx.Invoke(tracing.NewProvider),
)
