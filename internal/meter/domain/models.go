// Package domain contains persistence models for metered utility readings.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

const (
	UtilityElectricity = "electricity"
	UtilityWater       = "water"
	UtilityGas         = "gas"
)

// MeterReading stores one unit of metered utility consumption.
type MeterReading struct {
	ID      snowflake.ID `gorm:"primaryKey" json:"id"`
	OwnerID snowflake.ID `gorm:"not null;index" json:"owner_id"`
	UnitID  snowflake.ID `gorm:"not null;index" json:"unit_id"`

	UtilityType string            `gorm:"type:text;not null" json:"utility_type"`
	Value       float64           `gorm:"not null" json:"value"`
	RecordedAt  time.Time         `gorm:"not null;index" json:"recorded_at"`
	Metadata    datatypes.JSONMap `gorm:"type:jsonb" json:"metadata"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
}

// TableName sets the database table name.
func (MeterReading) TableName() string { return "meter_readings" }
