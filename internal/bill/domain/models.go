// Package domain contains persistence models for tenant billing.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

const (
	BillStatusPending = "pending"
	BillStatusPaid    = "paid"
	BillStatusOverdue = "overdue"
)

// Bill is a charge raised against a unit. A nonzero rent component marks the
// bill as rent; pure utility/maintenance bills keep it at zero.
type Bill struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	OwnerID    snowflake.ID `gorm:"not null;index" json:"owner_id"`
	PropertyID snowflake.ID `gorm:"index" json:"property_id"`
	UnitID     snowflake.ID `gorm:"index" json:"unit_id"`
	TenantID   snowflake.ID `gorm:"index" json:"tenant_id"`

	RentAmountCents    int64 `gorm:"not null;default:0" json:"rent_amount_cents"`
	UtilityAmountCents int64 `gorm:"not null;default:0" json:"utility_amount_cents"`
	TotalAmountCents   int64 `gorm:"not null" json:"total_amount_cents"`

	// Set for bills produced by the utility billing service.
	UtilityType string  `gorm:"type:text" json:"utility_type,omitempty"`
	Consumption float64 `gorm:"" json:"consumption,omitempty"`

	DueDate  time.Time `gorm:"not null;index" json:"due_date"`
	Status   string    `gorm:"type:text;not null;default:pending" json:"status"`
	Priority string    `gorm:"type:text" json:"priority,omitempty"`

	Checksum string `gorm:"type:text;uniqueIndex" json:"-"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
}

// TableName sets the database table name.
func (Bill) TableName() string { return "bills" }
