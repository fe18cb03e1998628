package main

import (
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/rentora/rentora/internal/bill"
	"github.com/rentora/rentora/internal/clock"
	"github.com/rentora/rentora/internal/config"
	"github.com/rentora/rentora/internal/currency"
	"github.com/rentora/rentora/internal/lease"
	"github.com/rentora/rentora/internal/maintenance"
	"github.com/rentora/rentora/internal/migration"
	"github.com/rentora/rentora/internal/observability"
	"github.com/rentora/rentora/internal/payment"
	"github.com/rentora/rentora/internal/property"
	"github.com/rentora/rentora/internal/report"
	"github.com/rentora/rentora/internal/seed"
	"github.com/rentora/rentora/internal/server"
	"github.com/rentora/rentora/internal/tariff"
	"github.com/rentora/rentora/internal/task"
	"github.com/rentora/rentora/internal/tenant"
	"github.com/rentora/rentora/pkg/db"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(newSnowflakeNode),
		db.Module,
		clock.Module,

		currency.Module,
		payment.Module,
		property.Module,
		maintenance.Module,
		bill.Module,
		lease.Module,
		tenant.Module,
		tariff.Module,
		task.Module,
		report.Module,

		fx.Invoke(func(conn *gorm.DB, node *snowflake.Node, cfg config.Config) error {
			if err := migration.Run(conn); err != nil {
				return err
			}
			if cfg.Bootstrap.SeedDemoData {
				return seed.EnsureDemoData(conn, node)
			}
			return nil
		}),

		server.Module,
	)
	app.Run()
}

func newSnowflakeNode() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
