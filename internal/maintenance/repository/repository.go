// Package repository lists open maintenance work for the task aggregator.
package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	taskdomain "github.com/rentora/rentora/internal/task/domain"
)

type Repository struct {
	db *gorm.DB
}

func Provide(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type openRow struct {
	ID           snowflake.ID
	Title        string
	Description  string
	Priority     string
	Status       string
	ScheduledAt  *time.Time
	PropertyID   snowflake.ID
	PropertyName string
	UnitID       snowflake.ID
	UnitName     string
}

// ListOpen returns every maintenance request that is not yet completed.
func (r *Repository) ListOpen(ctx context.Context, ownerID snowflake.ID) ([]taskdomain.MaintenanceItem, error) {
	var rows []openRow
	err := r.db.WithContext(ctx).Raw(
		`SELECT m.id, m.title, m.description, m.priority, m.status, m.scheduled_at,
		        m.property_id, p.name AS property_name, m.unit_id,
		        COALESCE(u.name, '') AS unit_name
		 FROM maintenance_requests m
		 JOIN properties p ON p.id = m.property_id
		 LEFT JOIN units u ON u.id = m.unit_id
		 WHERE m.owner_id = ? AND m.status IN ('pending', 'in_progress')
		 ORDER BY m.created_at ASC`,
		ownerID,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]taskdomain.MaintenanceItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, taskdomain.MaintenanceItem{
			ID:           row.ID,
			Title:        row.Title,
			Description:  row.Description,
			Priority:     taskdomain.Priority(row.Priority),
			Status:       taskdomain.Status(row.Status),
			ScheduledAt:  row.ScheduledAt,
			PropertyID:   row.PropertyID,
			PropertyName: row.PropertyName,
			UnitID:       row.UnitID,
			UnitName:     row.UnitName,
		})
	}
	return items, nil
}
