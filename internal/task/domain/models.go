// Package domain defines the pending-task contracts. Tasks are synthesized
// on demand from maintenance, billing and lease records and never persisted.
package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
)

// Priority orders tasks by urgency.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank returns the sort weight of a priority, most urgent first.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// Status is the lifecycle state of the underlying record.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Kind names the upstream source of a task.
type Kind string

const (
	KindMaintenance Kind = "maintenance"
	KindRent        Kind = "rent"
	KindContract    Kind = "contract"
)

// Task is an outstanding obligation in its normalized shape.
type Task struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	DueDate      time.Time `json:"due_date"`
	Priority     Priority  `json:"priority"`
	Status       Status    `json:"status"`
	Type         Kind      `json:"type"`
	PropertyID   string    `json:"property_id"`
	PropertyName string    `json:"property_name"`
	UnitID       string    `json:"unit_id,omitempty"`
	UnitName     string    `json:"unit_name,omitempty"`
}

// Filter narrows, orders and pages the merged task list. All predicate
// fields are conjunctive.
type Filter struct {
	Status     string `form:"status"`
	Priority   string `form:"priority"`
	Type       string `form:"type"`
	PropertyID string `form:"property_id"`
	SortBy     string `form:"sort_by"`    // priority | due_date
	SortOrder  string `form:"sort_order"` // asc | desc
	Page       int    `form:"page"`
	Limit      int    `form:"limit"`

	// Fallback opts into degraded-result mode: a failing source yields an
	// empty page instead of an error. Never partial across sources.
	Fallback bool `form:"fallback"`
}

// ListResponse is one page of the merged, filtered task list.
type ListResponse struct {
	Tasks []Task `json:"tasks"`
	Total int    `json:"total"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}

// MaintenanceItem is an open maintenance request from its source system.
type MaintenanceItem struct {
	ID           snowflake.ID
	Title        string
	Description  string
	Priority     Priority
	Status       Status
	ScheduledAt  *time.Time
	PropertyID   snowflake.ID
	PropertyName string
	UnitID       snowflake.ID
	UnitName     string
}

// BillItem is an unpaid bill due inside the lookahead window.
type BillItem struct {
	ID               snowflake.ID
	DueDate          time.Time
	RentAmountCents  int64
	TotalAmountCents int64
	Status           Status
	Priority         Priority
	PropertyID       snowflake.ID
	PropertyName     string
	UnitID           snowflake.ID
	UnitName         string
	TenantName       string
}

// LeaseItem is a lease ending inside the lookahead window.
type LeaseItem struct {
	ID           snowflake.ID
	EndDate      time.Time
	TenantName   string
	PropertyID   snowflake.ID
	PropertyName string
	UnitID       snowflake.ID
	UnitName     string
}

// MaintenanceSource lists open maintenance requests; no lookahead applies.
type MaintenanceSource interface {
	ListOpen(ctx context.Context, ownerID snowflake.ID) ([]MaintenanceItem, error)
}

// BillSource lists unpaid bills due within the lookahead.
type BillSource interface {
	ListDueSoon(ctx context.Context, ownerID snowflake.ID, lookaheadDays int) ([]BillItem, error)
}

// LeaseSource lists leases ending within the lookahead.
type LeaseSource interface {
	ListExpiring(ctx context.Context, ownerID snowflake.ID, lookaheadDays int) ([]LeaseItem, error)
}

// Service aggregates pending tasks.
type Service interface {
	ListPending(ctx context.Context, ownerID snowflake.ID, f Filter) (*ListResponse, error)
}
