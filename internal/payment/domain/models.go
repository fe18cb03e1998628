// Package domain contains persistence models for received payments.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

const (
	MethodBankTransfer = "bank_transfer"
	MethodCash         = "cash"
	MethodCard         = "card"
)

// Payment records money received against a bill. Owner and property are
// snapshotted at ingestion so report queries never need to walk the lease.
type Payment struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	OwnerID    snowflake.ID `gorm:"not null;index" json:"owner_id"`
	PropertyID snowflake.ID `gorm:"index" json:"property_id"`
	BillID     snowflake.ID `gorm:"not null;index" json:"bill_id"`
	TenantID   snowflake.ID `gorm:"index" json:"tenant_id"`

	AmountCents int64             `gorm:"not null" json:"amount_cents"`
	Currency    string            `gorm:"type:text;not null" json:"currency"`
	Method      string            `gorm:"type:text" json:"method"`
	PaidAt      time.Time         `gorm:"not null;index" json:"paid_at"`
	Metadata    datatypes.JSONMap `gorm:"type:jsonb" json:"metadata"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
}

// TableName sets the database table name.
func (Payment) TableName() string { return "payments" }
