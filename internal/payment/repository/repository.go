// Package repository answers payment aggregate queries for the report engine.
package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	reportdomain "github.com/rentora/rentora/internal/report/domain"
	"github.com/rentora/rentora/internal/report/period"
)

type Repository struct {
	db *gorm.DB
}

func Provide(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// SumPayments sums the owner's payments inside the range, keeping only
// revenue (rent-backed) or expense (zero-rent bill) rows. Classification
// follows the originating bill's base-rent component.
func (r *Repository) SumPayments(ctx context.Context, ownerID snowflake.ID, rng period.Range, revenue bool) (int64, error) {
	classify := `b.rent_amount_cents <> 0`
	if !revenue {
		classify = `b.rent_amount_cents = 0`
	}

	var total int64
	err := r.db.WithContext(ctx).Raw(
		`SELECT COALESCE(SUM(p.amount_cents), 0)
		 FROM payments p
		 JOIN bills b ON b.id = p.bill_id
		 WHERE p.owner_id = ? AND p.paid_at >= ? AND p.paid_at <= ? AND `+classify,
		ownerID,
		rng.Start,
		rng.End,
	).Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

type factRow struct {
	AmountCents int64
	PaidAt      time.Time
	IsRevenue   bool
}

// ListFacts returns every classified payment inside the range.
func (r *Repository) ListFacts(ctx context.Context, ownerID snowflake.ID, rng period.Range) ([]reportdomain.MoneyFact, error) {
	var rows []factRow
	err := r.db.WithContext(ctx).Raw(
		`SELECT p.amount_cents, p.paid_at, (b.rent_amount_cents <> 0) AS is_revenue
		 FROM payments p
		 JOIN bills b ON b.id = p.bill_id
		 WHERE p.owner_id = ? AND p.paid_at >= ? AND p.paid_at <= ?
		 ORDER BY p.paid_at ASC`,
		ownerID,
		rng.Start,
		rng.End,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	facts := make([]reportdomain.MoneyFact, 0, len(rows))
	for _, row := range rows {
		facts = append(facts, reportdomain.MoneyFact{
			AmountCents: row.AmountCents,
			OccurredAt:  row.PaidAt,
			IsRevenue:   row.IsRevenue,
		})
	}
	return facts, nil
}
