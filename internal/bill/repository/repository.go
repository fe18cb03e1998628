// Package repository lists unpaid bills for the task aggregator.
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

type dueRow struct {
	ID               snowflake.ID
	DueDate          time.Time
	RentAmountCents  int64
	TotalAmountCents int64
	Status           string
	Priority         string
	PropertyID       snowflake.ID
	PropertyName     string
	UnitID           snowflake.ID
	UnitName         string
	TenantName       string
}

// ListDueSoon returns unpaid bills whose due date lies at or before now plus
// the lookahead. Already-overdue bills are included.
func (r *Repository) ListDueSoon(ctx context.Context, ownerID snowflake.ID, lookaheadDays int) ([]taskdomain.BillItem, error) {
	horizon := r.clk.Now().AddDate(0, 0, lookaheadDays)

	var rows []dueRow
	err := r.db.WithContext(ctx).Raw(
		`SELECT b.id, b.due_date, b.rent_amount_cents, b.total_amount_cents,
		        b.status, COALESCE(b.priority, '') AS priority,
		        b.property_id, COALESCE(p.name, '') AS property_name,
		        b.unit_id, COALESCE(u.name, '') AS unit_name,
		        COALESCE(t.name, '') AS tenant_name
		 FROM bills b
		 LEFT JOIN properties p ON p.id = b.property_id
		 LEFT JOIN units u ON u.id = b.unit_id
		 LEFT JOIN tenants t ON t.id = b.tenant_id
		 WHERE b.owner_id = ? AND b.status <> 'paid' AND b.due_date <= ?
		 ORDER BY b.due_date ASC`,
		ownerID,
		horizon,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]taskdomain.BillItem, 0, len(rows))
	for _, row := range rows {
		// Bills carry an "overdue" status the task model does not; an
		// overdue bill is still a pending obligation.
		status := taskdomain.Status(row.Status)
		if row.Status == "overdue" {
			status = taskdomain.StatusPending
		}
		items = append(items, taskdomain.BillItem{
			ID:               row.ID,
			DueDate:          row.DueDate,
			RentAmountCents:  row.RentAmountCents,
			TotalAmountCents: row.TotalAmountCents,
			Status:           status,
			Priority:         taskdomain.Priority(row.Priority),
			PropertyID:       row.PropertyID,
			PropertyName:     row.PropertyName,
			UnitID:           row.UnitID,
			UnitName:         row.UnitName,
			TenantName:       row.TenantName,
		})
	}
	return items, nil
}
