// Package domain contains persistence models for maintenance requests.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// MaintenanceRequest tracks repair work reported against a unit.
type MaintenanceRequest struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	OwnerID    snowflake.ID `gorm:"not null;index" json:"owner_id"`
	PropertyID snowflake.ID `gorm:"not null;index" json:"property_id"`
	UnitID     snowflake.ID `gorm:"index" json:"unit_id"`

	Title       string `gorm:"type:text;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Priority    string `gorm:"type:text;not null;default:medium" json:"priority"`
	Status      string `gorm:"type:text;not null;default:pending" json:"status"`

	ScheduledAt *time.Time        `gorm:"" json:"scheduled_at,omitempty"`
	Metadata    datatypes.JSONMap `gorm:"type:jsonb" json:"metadata"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
}

// TableName sets the database table name.
func (MaintenanceRequest) TableName() string { return "maintenance_requests" }
