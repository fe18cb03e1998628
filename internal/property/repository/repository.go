// Package repository answers property queries for the distribution report.
package repository

import (
	"context"
	"strings"

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

// ListOwned returns the owner's properties with their unit counts,
// optionally narrowed to one property type.
func (r *Repository) ListOwned(ctx context.Context, ownerID snowflake.ID, typeFilter string) ([]reportdomain.OwnedProperty, error) {
	query := `SELECT p.id, p.name, p.type, COUNT(u.id) AS unit_count
		 FROM properties p
		 LEFT JOIN units u ON u.property_id = p.id
		 WHERE p.owner_id = ?`
	args := []any{ownerID}
	if typeFilter = strings.TrimSpace(typeFilter); typeFilter != "" {
		query += ` AND p.type = ?`
		args = append(args, typeFilter)
	}
	query += ` GROUP BY p.id, p.name, p.type ORDER BY p.name ASC`

	var rows []struct {
		ID        snowflake.ID
		Name      string
		Type      string
		UnitCount int
	}
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	owned := make([]reportdomain.OwnedProperty, 0, len(rows))
	for _, row := range rows {
		owned = append(owned, reportdomain.OwnedProperty{
			ID:        row.ID,
			Name:      row.Name,
			Type:      row.Type,
			UnitCount: row.UnitCount,
		})
	}
	return owned, nil
}

// SumRevenue sums rent-backed payments against the property in the range.
func (r *Repository) SumRevenue(ctx context.Context, propertyID snowflake.ID, rng period.Range) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Raw(
		`SELECT COALESCE(SUM(p.amount_cents), 0)
		 FROM payments p
		 JOIN bills b ON b.id = p.bill_id
		 WHERE p.property_id = ? AND p.paid_at >= ? AND p.paid_at <= ?
		 AND b.rent_amount_cents <> 0`,
		propertyID,
		rng.Start,
		rng.End,
	).Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// EstimateExpense approximates the property's period expenses from payments
// that settled zero-rent (maintenance/utility) bills.
func (r *Repository) EstimateExpense(ctx context.Context, propertyID snowflake.ID, rng period.Range) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Raw(
		`SELECT COALESCE(SUM(p.amount_cents), 0)
		 FROM payments p
		 JOIN bills b ON b.id = p.bill_id
		 WHERE p.property_id = ? AND p.paid_at >= ? AND p.paid_at <= ?
		 AND b.rent_amount_cents = 0`,
		propertyID,
		rng.Start,
		rng.End,
	).Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
