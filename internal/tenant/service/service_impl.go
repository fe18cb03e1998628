// Package service implements tenant management.
package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	tenantdomain "github.com/rentora/rentora/internal/tenant/domain"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
}

func NewService(p Params) tenantdomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("tenant.service"),
		genID: p.GenID,
	}
}

func (s *Service) Create(ctx context.Context, req tenantdomain.CreateTenantRequest) (*tenantdomain.Tenant, error) {
	if req.OwnerID == 0 {
		return nil, tenantdomain.ErrInvalidOwner
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, tenantdomain.ErrInvalidName
	}

	now := time.Now().UTC()
	record := &tenantdomain.Tenant{
		ID:        s.genID.Generate(),
		OwnerID:   req.OwnerID,
		Name:      name,
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}

	s.log.Info("tenant created", zap.String("tenant_id", record.ID.String()))
	return record, nil
}

func (s *Service) List(ctx context.Context, req tenantdomain.ListTenantsRequest) (tenantdomain.ListTenantsResponse, error) {
	if req.OwnerID == 0 {
		return tenantdomain.ListTenantsResponse{}, tenantdomain.ErrInvalidOwner
	}

	query := func() *gorm.DB {
		return s.db.WithContext(ctx).
			Model(&tenantdomain.Tenant{}).
			Where("owner_id = ?", req.OwnerID)
	}

	var total int64
	if err := query().Count(&total).Error; err != nil {
		return tenantdomain.ListTenantsResponse{}, err
	}

	page := req.Pagination.Normalize()
	var tenants []tenantdomain.Tenant
	err := query().
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&tenants).Error
	if err != nil {
		return tenantdomain.ListTenantsResponse{}, err
	}

	return tenantdomain.ListTenantsResponse{Tenants: tenants, Total: total}, nil
}
