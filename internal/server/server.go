// Package server exposes the reporting and billing engines over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rentora/rentora/internal/config"
	"github.com/rentora/rentora/internal/observability/logger"
	"github.com/rentora/rentora/internal/observability/metrics"
	"github.com/rentora/rentora/internal/observability/tracing"
	"github.com/rentora/rentora/internal/report/distribution"
	"github.com/rentora/rentora/internal/report/finance"
	tariffdomain "github.com/rentora/rentora/internal/tariff/domain"
	taskdomain "github.com/rentora/rentora/internal/task/domain"
	tenantdomain "github.com/rentora/rentora/internal/tenant/domain"
)

type Params struct {
	fx.In

	Config config.Config
	Log    *zap.Logger
	DB     *gorm.DB
	Engine *gin.Engine

	FinanceSvc      *finance.Service      `optional:"true"`
	DistributionSvc *distribution.Service `optional:"true"`
	TaskSvc         taskdomain.Service    `optional:"true"`
	TariffSvc       tariffdomain.Service  `optional:"true"`
	TenantSvc       tenantdomain.Service  `optional:"true"`
}

// Server wires the HTTP handlers to their backing services.
type Server struct {
	cfg    config.Config
	log    *zap.Logger
	db     *gorm.DB
	engine *gin.Engine

	financeSvc      *finance.Service
	distributionSvc *distribution.Service
	taskSvc         taskdomain.Service
	tariffSvc       tariffdomain.Service
	tenantSvc       tenantdomain.Service
}

// NewEngine builds the gin engine with the shared middleware chain.
func NewEngine(cfg config.Config, httpMetrics *metrics.HTTPMetrics) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logger.GinMiddleware(logger.MiddlewareConfig{
		SkipPaths: []string{"/healthz", "/metrics"},
	}))
	engine.Use(tracing.GinMiddleware(cfg.Observability.ServiceName))
	engine.Use(metrics.GinMiddleware(httpMetrics))
	return engine
}

func NewServer(p Params) *Server {
	return &Server{
		cfg:    p.Config,
		log:    p.Log.Named("server"),
		db:     p.DB,
		engine: p.Engine,

		financeSvc:      p.FinanceSvc,
		distributionSvc: p.DistributionSvc,
		taskSvc:         p.TaskSvc,
		tariffSvc:       p.TariffSvc,
		tenantSvc:       p.TenantSvc,
	}
}

// RegisterAPIRoutes mounts every HTTP endpoint on the engine.
func (s *Server) RegisterAPIRoutes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.engine.Group("/api")
	{
		api.GET("/reports/overview", s.GetReportOverview)
		api.GET("/reports/distribution", s.GetReportDistribution)
		api.GET("/tasks/pending", s.ListPendingTasks)
		api.POST("/billing/utility", s.ComputeUtilityBill)
		api.POST("/tenants", s.CreateTenant)
		api.GET("/tenants", s.ListTenants)
	}
}

// RunHTTP starts the HTTP listener under the fx lifecycle.
func RunHTTP(lc fx.Lifecycle, s *Server) {
	srv := &http.Server{
		Addr:    s.cfg.HTTPAddr,
		Handler: s.engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.log.Info("http server starting", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					s.log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}

var Module = fx.Module("server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server) { s.RegisterAPIRoutes() }),
	fx.Invoke(RunHTTP),
)
