// Package service merges maintenance, billing and lease records into one
// prioritized pending-task list.
package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/rentora/rentora/internal/clock"
	reportdomain "github.com/rentora/rentora/internal/report/domain"
	taskdomain "github.com/rentora/rentora/internal/task/domain"
	"github.com/rentora/rentora/pkg/db/pagination"
)

const (
	billLookaheadDays  = 7
	leaseLookaheadDays = 30

	// Unscheduled maintenance defaults its due date this far out.
	unscheduledMaintenanceDue = 3 * 24 * time.Hour
)

type Service struct {
	maintenance taskdomain.MaintenanceSource
	bills       taskdomain.BillSource
	leases      taskdomain.LeaseSource
	clk         clock.Clock
	log         *zap.Logger
}

type Params struct {
	fx.In

	Maintenance taskdomain.MaintenanceSource
	Bills       taskdomain.BillSource
	Leases      taskdomain.LeaseSource
	Clock       clock.Clock
	Log         *zap.Logger
}

func NewService(p Params) taskdomain.Service {
	return &Service{
		maintenance: p.Maintenance,
		bills:       p.Bills,
		leases:      p.Leases,
		clk:         p.Clock,
		log:         p.Log.Named("task.service"),
	}
}

// ListPending pulls the three task sources, maps every record into the
// common shape, then filters, sorts and pages the merged list.
func (s *Service) ListPending(ctx context.Context, ownerID snowflake.ID, f taskdomain.Filter) (*taskdomain.ListResponse, error) {
	resp, err := s.listPending(ctx, ownerID, f)
	if err == nil {
		return resp, nil
	}
	if !f.Fallback {
		return nil, err
	}

	s.log.Warn("serving empty task list after collaborator failure",
		zap.String("owner_id", ownerID.String()),
		zap.Error(err),
	)
	page := pagination.Pagination{Page: f.Page, Limit: f.Limit}.Normalize()
	return &taskdomain.ListResponse{
		Tasks: []taskdomain.Task{},
		Page:  page.Page,
		Limit: page.Limit,
	}, nil
}

func (s *Service) listPending(ctx context.Context, ownerID snowflake.ID, f taskdomain.Filter) (*taskdomain.ListResponse, error) {
	now := s.clk.Now()

	maintenance, err := s.maintenance.ListOpen(ctx, ownerID)
	if err != nil {
		return nil, reportdomain.WrapCollaborator("list_open_maintenance", err)
	}
	bills, err := s.bills.ListDueSoon(ctx, ownerID, billLookaheadDays)
	if err != nil {
		return nil, reportdomain.WrapCollaborator("list_due_soon_bills", err)
	}
	leases, err := s.leases.ListExpiring(ctx, ownerID, leaseLookaheadDays)
	if err != nil {
		return nil, reportdomain.WrapCollaborator("list_expiring_leases", err)
	}

	tasks := make([]taskdomain.Task, 0, len(maintenance)+len(bills)+len(leases))
	for _, item := range maintenance {
		tasks = append(tasks, mapMaintenance(item, now))
	}
	for _, item := range bills {
		tasks = append(tasks, mapBill(item, now))
	}
	for _, item := range leases {
		tasks = append(tasks, mapLease(item))
	}

	tasks = applyFilter(tasks, f)
	sortTasks(tasks, f.SortBy, f.SortOrder)

	page := pagination.Pagination{Page: f.Page, Limit: f.Limit}.Normalize()
	start, end := pagination.Slice(len(tasks), page.Page, page.Limit)

	return &taskdomain.ListResponse{
		Tasks: tasks[start:end],
		Total: len(tasks),
		Page:  page.Page,
		Limit: page.Limit,
	}, nil
}

func mapMaintenance(item taskdomain.MaintenanceItem, now time.Time) taskdomain.Task {
	due := now.Add(unscheduledMaintenanceDue)
	if item.ScheduledAt != nil {
		due = *item.ScheduledAt
	}
	return taskdomain.Task{
		ID:           "maintenance-" + item.ID.String(),
		Title:        item.Title,
		Description:  item.Description,
		DueDate:      due,
		Priority:     item.Priority,
		Status:       item.Status,
		Type:         taskdomain.KindMaintenance,
		PropertyID:   item.PropertyID.String(),
		PropertyName: item.PropertyName,
		UnitID:       item.UnitID.String(),
		UnitName:     item.UnitName,
	}
}

func mapBill(item taskdomain.BillItem, now time.Time) taskdomain.Task {
	// A bill whose base-rent component is zero settles a maintenance fee.
	kind := taskdomain.KindRent
	title := "Collect rent"
	if item.RentAmountCents == 0 {
		kind = taskdomain.KindMaintenance
		title = "Collect maintenance fee"
	}
	if item.TenantName != "" {
		title = fmt.Sprintf("%s from %s", title, item.TenantName)
	}

	priority := item.Priority
	if priority == "" {
		priority = taskdomain.PriorityMedium
	}
	// Overdue bills are always urgent, whatever they were filed as.
	if item.DueDate.Before(now) {
		priority = taskdomain.PriorityHigh
	}

	status := item.Status
	if status == "" {
		status = taskdomain.StatusPending
	}

	return taskdomain.Task{
		ID:           "bill-" + item.ID.String(),
		Title:        title,
		Description:  fmt.Sprintf("Amount due: %d", item.TotalAmountCents),
		DueDate:      item.DueDate,
		Priority:     priority,
		Status:       status,
		Type:         kind,
		PropertyID:   item.PropertyID.String(),
		PropertyName: item.PropertyName,
		UnitID:       item.UnitID.String(),
		UnitName:     item.UnitName,
	}
}

func mapLease(item taskdomain.LeaseItem) taskdomain.Task {
	title := "Renew lease"
	if item.TenantName != "" {
		title = "Renew lease with " + item.TenantName
	}
	return taskdomain.Task{
		ID:           "lease-" + item.ID.String(),
		Title:        title,
		Description:  "Lease ends " + item.EndDate.Format("2006-01-02"),
		DueDate:      item.EndDate,
		Priority:     taskdomain.PriorityMedium,
		Status:       taskdomain.StatusPending,
		Type:         taskdomain.KindContract,
		PropertyID:   item.PropertyID.String(),
		PropertyName: item.PropertyName,
		UnitID:       item.UnitID.String(),
		UnitName:     item.UnitName,
	}
}

// applyFilter keeps tasks matching every provided predicate.
func applyFilter(tasks []taskdomain.Task, f taskdomain.Filter) []taskdomain.Task {
	status := strings.TrimSpace(f.Status)
	priority := strings.TrimSpace(f.Priority)
	kind := strings.TrimSpace(f.Type)
	propertyID := strings.TrimSpace(f.PropertyID)

	filtered := tasks[:0]
	for _, task := range tasks {
		if status != "" && string(task.Status) != status {
			continue
		}
		if priority != "" && string(task.Priority) != priority {
			continue
		}
		if kind != "" && string(task.Type) != kind {
			continue
		}
		if propertyID != "" && task.PropertyID != propertyID {
			continue
		}
		filtered = append(filtered, task)
	}
	return filtered
}

// sortTasks orders by the requested key with the other key as tiebreaker,
// both following sortOrder. Priority ascending means most urgent first.
func sortTasks(tasks []taskdomain.Task, sortBy, sortOrder string) {
	desc := strings.EqualFold(strings.TrimSpace(sortOrder), "desc")

	byPriority := func(a, b taskdomain.Task) int {
		return a.Priority.Rank() - b.Priority.Rank()
	}
	byDueDate := func(a, b taskdomain.Task) int {
		switch {
		case a.DueDate.Before(b.DueDate):
			return -1
		case a.DueDate.After(b.DueDate):
			return 1
		default:
			return 0
		}
	}

	primary, secondary := byDueDate, byPriority
	if strings.EqualFold(strings.TrimSpace(sortBy), "priority") {
		primary, secondary = byPriority, byDueDate
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		cmp := primary(tasks[i], tasks[j])
		if cmp == 0 {
			cmp = secondary(tasks[i], tasks[j])
		}
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
}
