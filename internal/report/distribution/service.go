// Package distribution breaks period revenue down per property.
package distribution

import (
	"context"
	"sort"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"

	"github.com/rentora/rentora/internal/clock"
	"github.com/rentora/rentora/internal/observability/metrics"
	reportdomain "github.com/rentora/rentora/internal/report/domain"
	"github.com/rentora/rentora/internal/report/period"
)

// PropertySource supplies the caller's properties and per-property figures.
type PropertySource interface {
	ListOwned(ctx context.Context, ownerID snowflake.ID, typeFilter string) ([]reportdomain.OwnedProperty, error)
	SumRevenue(ctx context.Context, propertyID snowflake.ID, r period.Range) (int64, error)
	EstimateExpense(ctx context.Context, propertyID snowflake.ID, r period.Range) (int64, error)
}

// Service computes the per-property distribution report.
type Service struct {
	properties PropertySource
	clk        clock.Clock
	log        *zap.Logger
	metrics    *metrics.ReportMetrics
}

// NewService builds the distribution calculator.
func NewService(properties PropertySource, clk clock.Clock, log *zap.Logger, m *metrics.ReportMetrics) *Service {
	return &Service{
		properties: properties,
		clk:        clk,
		log:        log.Named("report.distribution"),
		metrics:    m,
	}
}

// Distribution returns each property's revenue, expenses and share of the
// period's total revenue. Percentages are normalized only after every
// property's raw revenue is known, so early items carry no rounding bias.
func (s *Service) Distribution(ctx context.Context, ownerID snowflake.ID, f reportdomain.Filter) (*reportdomain.DistributionResponse, error) {
	started := time.Now()
	resp, err := s.distribution(ctx, ownerID, f)
	s.metrics.ObserveReport("distribution", time.Since(started), err)
	if err == nil {
		return resp, nil
	}
	if !f.Fallback || reportdomain.IsValidation(err) {
		return nil, err
	}

	s.log.Warn("serving empty distribution after collaborator failure",
		zap.String("owner_id", ownerID.String()),
		zap.Error(err),
	)
	s.metrics.IncFallback("distribution")
	// A fallback only fires on collaborator errors, so the range resolves.
	rng, _ := reportdomain.ResolveRange(f, s.clk.Now())
	return &reportdomain.DistributionResponse{
		Range: rng,
		Items: []reportdomain.DistributionItem{},
	}, nil
}

func (s *Service) distribution(ctx context.Context, ownerID snowflake.ID, f reportdomain.Filter) (*reportdomain.DistributionResponse, error) {
	current, err := reportdomain.ResolveRange(f, s.clk.Now())
	if err != nil {
		return nil, err
	}

	owned, err := s.properties.ListOwned(ctx, ownerID, f.PropertyType)
	if err != nil {
		return nil, reportdomain.WrapCollaborator("list_owned_properties", err)
	}

	// First pass: collect raw revenue and expense per property.
	items := make([]reportdomain.DistributionItem, 0, len(owned))
	var totalRevenue int64
	var totalUnits int
	for _, property := range owned {
		revenue, err := s.properties.SumRevenue(ctx, property.ID, current)
		if err != nil {
			return nil, reportdomain.WrapCollaborator("sum_property_revenue", err)
		}
		expense, err := s.properties.EstimateExpense(ctx, property.ID, current)
		if err != nil {
			return nil, reportdomain.WrapCollaborator("estimate_property_expense", err)
		}

		items = append(items, reportdomain.DistributionItem{
			ID:           property.ID,
			Name:         property.Name,
			RevenueCents: revenue,
			ExpenseCents: expense,
			ProfitCents:  revenue - expense,
			UnitCount:    property.UnitCount,
		})
		totalRevenue += revenue
		totalUnits += property.UnitCount
	}

	// Second pass: percentages against the final total.
	for i := range items {
		items[i].Percentage = reportdomain.ShareOfTotal(float64(items[i].RevenueCents), float64(totalRevenue))
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].RevenueCents > items[j].RevenueCents
	})

	return &reportdomain.DistributionResponse{
		Range:             current,
		Items:             items,
		TotalProperties:   len(owned),
		TotalUnits:        totalUnits,
		TotalRevenueCents: totalRevenue,
	}, nil
}
