package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/rentora/rentora/internal/migration"
	tenantdomain "github.com/rentora/rentora/internal/tenant/domain"
	"github.com/rentora/rentora/pkg/db/pagination"
)

func setupTenantTest(t *testing.T) (tenantdomain.Service, *snowflake.Node) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := migration.Run(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	node, err := snowflake.NewNode(8)
	if err != nil {
		t.Fatalf("snowflake: %v", err)
	}
	return &Service{db: db, log: zap.NewNop(), genID: node}, node
}

func TestCreateTenantTrimsAndValidates(t *testing.T) {
	svc, node := setupTenantTest(t)
	ownerID := node.Generate()
	ctx := context.Background()

	tenant, err := svc.Create(ctx, tenantdomain.CreateTenantRequest{
		OwnerID: ownerID,
		Name:    "  Lê Minh Châu  ",
		Email:   " chau@example.com ",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if tenant.Name != "Lê Minh Châu" || tenant.Email != "chau@example.com" {
		t.Fatalf("expected trimmed fields, got %+v", tenant)
	}

	if _, err := svc.Create(ctx, tenantdomain.CreateTenantRequest{OwnerID: ownerID, Name: "   "}); !errors.Is(err, tenantdomain.ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
	if _, err := svc.Create(ctx, tenantdomain.CreateTenantRequest{Name: "x"}); !errors.Is(err, tenantdomain.ErrInvalidOwner) {
		t.Fatalf("expected ErrInvalidOwner, got %v", err)
	}
}

func TestListTenantsPaginates(t *testing.T) {
	svc, node := setupTenantTest(t)
	ownerID := node.Generate()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.Create(ctx, tenantdomain.CreateTenantRequest{
			OwnerID: ownerID,
			Name:    fmt.Sprintf("Tenant %d", i),
		})
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	resp, err := svc.List(ctx, tenantdomain.ListTenantsRequest{
		OwnerID:    ownerID,
		Pagination: pagination.Pagination{Page: 2, Limit: 2},
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if resp.Total != 5 {
		t.Fatalf("expected total 5, got %d", resp.Total)
	}
	if len(resp.Tenants) != 2 {
		t.Fatalf("expected 2 tenants on page 2, got %d", len(resp.Tenants))
	}
}
