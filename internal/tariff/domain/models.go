// Package domain defines tariff schedules and the utility billing contract.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"

	"github.com/rentora/rentora/internal/tariff/rate"
)

// TariffSchedule groups the tier steps priced for one utility type.
type TariffSchedule struct {
	ID      snowflake.ID `gorm:"primaryKey" json:"id"`
	OwnerID snowflake.ID `gorm:"not null;index" json:"owner_id"`

	UtilityType string `gorm:"type:text;not null" json:"utility_type"`
	Currency    string `gorm:"type:text;not null" json:"currency"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
}

// TableName sets the database table name.
func (TariffSchedule) TableName() string { return "tariff_schedules" }

// TariffTier is one persisted band of a schedule.
type TariffTier struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	ScheduleID snowflake.ID `gorm:"not null;index" json:"schedule_id"`

	UpperLimit  float64 `gorm:"not null" json:"upper_limit"`
	RatePerUnit float64 `gorm:"not null" json:"rate_per_unit"`
}

// TableName sets the database table name.
func (TariffTier) TableName() string { return "tariff_tiers" }

// Step converts a persisted tier into the calculator's shape.
func (t TariffTier) Step() rate.TierStep {
	return rate.TierStep{Limit: t.UpperLimit, Rate: t.RatePerUnit}
}

// ComputeBillRequest asks for a unit's utility charge over a period.
type ComputeBillRequest struct {
	OwnerID     snowflake.ID `json:"owner_id"`
	UnitID      snowflake.ID `json:"unit_id"`
	UtilityType string       `json:"utility_type"`
	PeriodStart time.Time    `json:"period_start"`
	PeriodEnd   time.Time    `json:"period_end"`
}

// UtilityBill is the billed outcome of a compute request.
type UtilityBill struct {
	BillID      snowflake.ID `json:"bill_id"`
	UnitID      snowflake.ID `json:"unit_id"`
	UtilityType string       `json:"utility_type"`
	Consumption float64      `json:"consumption"`
	AmountCents int64        `json:"amount_cents"`
	Currency    string       `json:"currency"`
	PeriodStart time.Time    `json:"period_start"`
	PeriodEnd   time.Time    `json:"period_end"`
}

// Service turns metered readings into billed utility amounts.
type Service interface {
	ComputeUtilityBill(ctx context.Context, req ComputeBillRequest) (*UtilityBill, error)
}

var (
	ErrInvalidOwner        = errors.New("invalid_owner")
	ErrInvalidUnit         = errors.New("invalid_unit")
	ErrInvalidUtilityType  = errors.New("invalid_utility_type")
	ErrInvalidPeriod       = errors.New("invalid_period")
	ErrNegativeConsumption = errors.New("negative_consumption")
	ErrMissingSchedule     = errors.New("missing_tariff_schedule")
)
