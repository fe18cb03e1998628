// Package domain contains persistence models for properties and their units.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

const (
	PropertyTypeApartment  = "apartment"
	PropertyTypeHouse      = "house"
	PropertyTypeCommercial = "commercial"
)

// Property is a rental building or house owned by one account.
type Property struct {
	ID      snowflake.ID `gorm:"primaryKey" json:"id"`
	OwnerID snowflake.ID `gorm:"not null;index" json:"owner_id"`

	Name    string `gorm:"type:text;not null" json:"name"`
	Type    string `gorm:"type:text;not null" json:"type"`
	Address string `gorm:"type:text" json:"address"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
}

// TableName sets the database table name.
func (Property) TableName() string { return "properties" }

// Unit is one rentable unit inside a property.
type Unit struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	PropertyID snowflake.ID `gorm:"not null;index" json:"property_id"`

	Name            string `gorm:"type:text;not null" json:"name"`
	RentAmountCents int64  `gorm:"not null;default:0" json:"rent_amount_cents"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
}

// TableName sets the database table name.
func (Unit) TableName() string { return "units" }
