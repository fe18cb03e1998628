// Package service implements utility billing on top of meter readings.
package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	tariffdomain "github.com/rentora/rentora/internal/tariff/domain"
	"github.com/rentora/rentora/internal/tariff/rate"
)

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
}

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
}

func NewService(p Params) tariffdomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("tariff.service"),
		genID: p.GenID,
	}
}

// ComputeUtilityBill sums the unit's metered consumption over the period,
// prices it against the owner's tiered schedule and records the resulting
// bill. Recomputing the same period is idempotent via the bill checksum.
func (s *Service) ComputeUtilityBill(ctx context.Context, req tariffdomain.ComputeBillRequest) (*tariffdomain.UtilityBill, error) {
	if req.OwnerID == 0 {
		return nil, tariffdomain.ErrInvalidOwner
	}
	if req.UnitID == 0 {
		return nil, tariffdomain.ErrInvalidUnit
	}
	if req.UtilityType == "" {
		return nil, tariffdomain.ErrInvalidUtilityType
	}
	if !req.PeriodEnd.After(req.PeriodStart) {
		return nil, tariffdomain.ErrInvalidPeriod
	}

	schedule, tiers, err := s.loadSchedule(ctx, req.OwnerID, req.UtilityType)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, tariffdomain.ErrMissingSchedule
	}

	consumption, err := s.aggregateConsumption(ctx, req)
	if err != nil {
		return nil, err
	}
	if consumption < 0 {
		return nil, tariffdomain.ErrNegativeConsumption
	}

	steps := make([]rate.TierStep, 0, len(tiers))
	for _, tier := range tiers {
		steps = append(steps, tier.Step())
	}
	amount := int64(math.Round(rate.ComputeTiered(consumption, steps)))

	billID := s.genID.Generate()
	checksum := buildChecksum(req.OwnerID, req.UnitID, req.UtilityType, req.PeriodStart, req.PeriodEnd)
	if err := s.insertBill(ctx, billID, req, consumption, amount, checksum); err != nil {
		return nil, err
	}

	s.log.Info("utility bill computed",
		zap.String("unit_id", req.UnitID.String()),
		zap.String("utility_type", req.UtilityType),
		zap.Float64("consumption", consumption),
		zap.Int64("amount_cents", amount),
	)

	return &tariffdomain.UtilityBill{
		BillID:      billID,
		UnitID:      req.UnitID,
		UtilityType: req.UtilityType,
		Consumption: consumption,
		AmountCents: amount,
		Currency:    schedule.Currency,
		PeriodStart: req.PeriodStart,
		PeriodEnd:   req.PeriodEnd,
	}, nil
}

func (s *Service) loadSchedule(ctx context.Context, ownerID snowflake.ID, utilityType string) (*tariffdomain.TariffSchedule, []tariffdomain.TariffTier, error) {
	var schedule tariffdomain.TariffSchedule
	err := s.db.WithContext(ctx).Raw(
		`SELECT id, owner_id, utility_type, currency
		 FROM tariff_schedules
		 WHERE owner_id = ? AND utility_type = ?
		 LIMIT 1`,
		ownerID,
		utilityType,
	).Scan(&schedule).Error
	if err != nil {
		return nil, nil, err
	}
	if schedule.ID == 0 {
		return nil, nil, nil
	}

	var tiers []tariffdomain.TariffTier
	err = s.db.WithContext(ctx).Raw(
		`SELECT id, schedule_id, upper_limit, rate_per_unit
		 FROM tariff_tiers
		 WHERE schedule_id = ?
		 ORDER BY upper_limit ASC`,
		schedule.ID,
	).Scan(&tiers).Error
	if err != nil {
		return nil, nil, err
	}
	return &schedule, tiers, nil
}

func (s *Service) aggregateConsumption(ctx context.Context, req tariffdomain.ComputeBillRequest) (float64, error) {
	var consumption float64
	err := s.db.WithContext(ctx).Raw(
		`SELECT COALESCE(SUM(value), 0)
		 FROM meter_readings
		 WHERE owner_id = ? AND unit_id = ? AND utility_type = ?
		 AND recorded_at >= ? AND recorded_at < ?`,
		req.OwnerID,
		req.UnitID,
		req.UtilityType,
		req.PeriodStart,
		req.PeriodEnd,
	).Scan(&consumption).Error
	if err != nil {
		return 0, err
	}
	return consumption, nil
}

func (s *Service) insertBill(ctx context.Context, billID snowflake.ID, req tariffdomain.ComputeBillRequest, consumption float64, amount int64, checksum string) error {
	now := time.Now().UTC()
	return s.db.WithContext(ctx).Exec(
		`INSERT INTO bills (
			id, owner_id, unit_id, rent_amount_cents, utility_amount_cents,
			total_amount_cents, utility_type, consumption, due_date, status,
			checksum, created_at, updated_at
		) VALUES (?, ?, ?, 0, ?, ?, ?, ?, ?, 'pending', ?, ?, ?)
		ON CONFLICT (checksum) DO NOTHING`,
		billID,
		req.OwnerID,
		req.UnitID,
		amount,
		amount,
		req.UtilityType,
		consumption,
		req.PeriodEnd.AddDate(0, 0, 14),
		checksum,
		now,
		now,
	).Error
}

func buildChecksum(ownerID, unitID snowflake.ID, utilityType string, periodStart, periodEnd time.Time) string {
	payload := fmt.Sprintf(
		"%s|%s|%s|%s|%s",
		ownerID.String(),
		unitID.String(),
		utilityType,
		periodStart.UTC().Format(time.RFC3339Nano),
		periodEnd.UTC().Format(time.RFC3339Nano),
	)
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}
