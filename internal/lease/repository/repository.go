// Package repository lists expiring leases for the task aggregator.
package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	"github.com/rentora/rentora/internal/clock"
	taskdomain "github.com/rentora/rentora/internal/task/domain"
)

type Repository struct {
	db  *gorm.DB
	clk clock.Clock
}

func Provide(db *gorm.DB, clk clock.Clock) *Repository {
	return &Repository{db: db, clk: clk}
}

type expiringRow struct {
	ID           snowflake.ID
	EndDate      time.Time
	TenantName   string
	PropertyID   snowflake.ID
	PropertyName string
	UnitID       snowflake.ID
	UnitName     string
}

// ListExpiring returns active leases ending within the lookahead window.
func (r *Repository) ListExpiring(ctx context.Context, ownerID snowflake.ID, lookaheadDays int) ([]taskdomain.LeaseItem, error) {
	now := r.clk.Now()
	horizon := now.AddDate(0, 0, lookaheadDays)

	var rows []expiringRow
	err := r.db.WithContext(ctx).Raw(
		`SELECT l.id, l.end_date, COALESCE(t.name, '') AS tenant_name,
		        l.property_id, COALESCE(p.name, '') AS property_name,
		        l.unit_id, COALESCE(u.name, '') AS unit_name
		 FROM leases l
		 LEFT JOIN tenants t ON t.id = l.tenant_id
		 LEFT JOIN properties p ON p.id = l.property_id
		 LEFT JOIN units u ON u.id = l.unit_id
		 WHERE l.owner_id = ? AND l.status = 'active'
		 AND l.end_date >= ? AND l.end_date <= ?
		 ORDER BY l.end_date ASC`,
		ownerID,
		now,
		horizon,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]taskdomain.LeaseItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, taskdomain.LeaseItem{
			ID:           row.ID,
			EndDate:      row.EndDate,
			TenantName:   row.TenantName,
			PropertyID:   row.PropertyID,
			PropertyName: row.PropertyName,
			UnitID:       row.UnitID,
			UnitName:     row.UnitName,
		})
	}
	return items, nil
}
