// Package domain contains persistence models for owner accounts.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// User is a property-owner account.
type User struct {
	ID snowflake.ID `gorm:"primaryKey" json:"id"`

	Username     string `gorm:"type:text;not null;uniqueIndex" json:"username"`
	PasswordHash string `gorm:"type:text;not null" json:"-"`

	PreferredCurrency string `gorm:"type:text;not null;default:VND" json:"preferred_currency"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
}

// TableName sets the database table name.
func (User) TableName() string { return "users" }
