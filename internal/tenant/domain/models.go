// Package domain contains persistence models and the service contract for
// tenants.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"

	"github.com/rentora/rentora/pkg/db/pagination"
)

// Tenant is a person renting one of the owner's units.
type Tenant struct {
	ID      snowflake.ID `gorm:"primaryKey" json:"id"`
	OwnerID snowflake.ID `gorm:"not null;index" json:"owner_id"`

	Name  string `gorm:"type:text;not null" json:"name"`
	Email string `gorm:"type:text" json:"email"`
	Phone string `gorm:"type:text" json:"phone"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
}

// TableName sets the database table name.
func (Tenant) TableName() string { return "tenants" }

// CreateTenantRequest registers a new tenant under an owner.
type CreateTenantRequest struct {
	OwnerID snowflake.ID `json:"owner_id"`
	Name    string       `json:"name"`
	Email   string       `json:"email"`
	Phone   string       `json:"phone"`
}

// ListTenantsRequest filters an owner's tenants.
type ListTenantsRequest struct {
	OwnerID snowflake.ID
	pagination.Pagination
}

// ListTenantsResponse carries a page of tenants.
type ListTenantsResponse struct {
	Tenants []Tenant `json:"tenants"`
	Total   int64    `json:"total"`
}

// Service manages tenant records.
type Service interface {
	Create(ctx context.Context, req CreateTenantRequest) (*Tenant, error)
	List(ctx context.Context, req ListTenantsRequest) (ListTenantsResponse, error)
}

var (
	ErrInvalidOwner = errors.New("invalid_owner")
	ErrInvalidName  = errors.New("invalid_name")
)
