// Package domain contains persistence models for leases.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

const (
	LeaseStatusActive     = "active"
	LeaseStatusTerminated = "terminated"
	LeaseStatusExpired    = "expired"
)

// Lease binds a tenant to a unit for a date range.
type Lease struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	OwnerID    snowflake.ID `gorm:"not null;index" json:"owner_id"`
	PropertyID snowflake.ID `gorm:"not null;index" json:"property_id"`
	UnitID     snowflake.ID `gorm:"not null;index" json:"unit_id"`
	TenantID   snowflake.ID `gorm:"not null;index" json:"tenant_id"`

	StartDate       time.Time `gorm:"not null" json:"start_date"`
	EndDate         time.Time `gorm:"not null;index" json:"end_date"`
	RentAmountCents int64     `gorm:"not null" json:"rent_amount_cents"`
	Status          string    `gorm:"type:text;not null;default:active" json:"status"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
}

// TableName sets the database table name.
func (Lease) TableName() string { return "leases" }
