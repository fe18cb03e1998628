// Package currency converts canonical amounts into display currencies using
// a persisted fixed-rate table.
package currency

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rentora/rentora/internal/cache"
)

var ErrUnknownCurrency = errors.New("unknown_currency")

const rateCacheTTL = 5 * time.Minute

// Rate is one currency's value expressed in base-currency units.
type Rate struct {
	Code        string  `gorm:"primaryKey;type:text" json:"code"`
	PerBaseUnit float64 `gorm:"not null" json:"per_base_unit"`

	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
}

// TableName sets the database table name.
func (Rate) TableName() string { return "currency_rates" }

// Service resolves conversion rates and owner display preferences.
type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	rates *cache.TTLCache[string, float64]
}

func NewService(db *gorm.DB, log *zap.Logger) *Service {
	return &Service{
		db:    db,
		log:   log.Named("currency.service"),
		rates: cache.NewTTLCache[string, float64](),
	}
}

// Convert translates an amount between two currencies through the rate table.
func (s *Service) Convert(ctx context.Context, amountCents int64, from, to string) (int64, error) {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))
	if from == to || amountCents == 0 {
		return amountCents, nil
	}

	fromRate, err := s.rate(ctx, from)
	if err != nil {
		return 0, err
	}
	toRate, err := s.rate(ctx, to)
	if err != nil {
		return 0, err
	}
	// PerBaseUnit values one unit of a currency in base-currency units, so
	// conversion passes through the base.
	return int64(math.Round(float64(amountCents) * fromRate / toRate)), nil
}

// UserPreference returns the owner's preferred display currency.
func (s *Service) UserPreference(ctx context.Context, ownerID snowflake.ID) (string, error) {
	var preferred string
	err := s.db.WithContext(ctx).Raw(
		`SELECT preferred_currency FROM users WHERE id = ?`,
		ownerID,
	).Scan(&preferred).Error
	if err != nil {
		return "", err
	}
	return strings.ToUpper(strings.TrimSpace(preferred)), nil
}

func (s *Service) rate(ctx context.Context, code string) (float64, error) {
	if cached, ok := s.rates.Get(code); ok {
		return cached, nil
	}

	var row Rate
	err := s.db.WithContext(ctx).Raw(
		`SELECT code, per_base_unit FROM currency_rates WHERE code = ?`,
		code,
	).Scan(&row).Error
	if err != nil {
		return 0, err
	}
	if row.Code == "" || row.PerBaseUnit <= 0 {
		return 0, ErrUnknownCurrency
	}

	s.rates.Set(code, row.PerBaseUnit, rateCacheTTL)
	return row.PerBaseUnit, nil
}
