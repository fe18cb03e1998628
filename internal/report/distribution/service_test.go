package distribution

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"

	"github.com/rentora/rentora/internal/clock"
	reportdomain "github.com/rentora/rentora/internal/report/domain"
	"github.com/rentora/rentora/internal/report/period"
)

type fakeProperties struct {
	owned    []reportdomain.OwnedProperty
	revenue  map[snowflake.ID]int64
	expense  map[snowflake.ID]int64
	listErr  error
	queryErr error
}

func (f *fakeProperties) ListOwned(_ context.Context, _ snowflake.ID, typeFilter string) ([]reportdomain.OwnedProperty, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if typeFilter == "" {
		return f.owned, nil
	}
	filtered := make([]reportdomain.OwnedProperty, 0, len(f.owned))
	for _, p := range f.owned {
		if p.Type == typeFilter {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (f *fakeProperties) SumRevenue(_ context.Context, id snowflake.ID, _ period.Range) (int64, error) {
	if f.queryErr != nil {
		return 0, f.queryErr
	}
	return f.revenue[id], nil
}

func (f *fakeProperties) EstimateExpense(_ context.Context, id snowflake.ID, _ period.Range) (int64, error) {
	if f.queryErr != nil {
		return 0, f.queryErr
	}
	return f.expense[id], nil
}

func newTestService(source PropertySource) *Service {
	now := time.Date(2025, time.June, 18, 10, 0, 0, 0, time.Local)
	return NewService(source, clock.Fixed(now), zap.NewNop(), nil)
}

func TestDistributionSharesAndOrder(t *testing.T) {
	source := &fakeProperties{
		owned: []reportdomain.OwnedProperty{
			{ID: 1, Name: "Riverside", Type: "apartment", UnitCount: 4},
			{ID: 2, Name: "Hillcrest", Type: "house", UnitCount: 1},
			{ID: 3, Name: "Dockside", Type: "apartment", UnitCount: 6},
		},
		revenue: map[snowflake.ID]int64{1: 1000, 2: 3000, 3: 2000},
		expense: map[snowflake.ID]int64{1: 200, 2: 500, 3: 700},
	}

	resp, err := newTestService(source).Distribution(context.Background(), 9, reportdomain.Filter{Period: "month"})
	if err != nil {
		t.Fatalf("distribution: %v", err)
	}

	if resp.TotalProperties != 3 || resp.TotalUnits != 11 || resp.TotalRevenueCents != 6000 {
		t.Fatalf("unexpected totals: %+v", resp)
	}
	if resp.Items[0].Name != "Hillcrest" || resp.Items[1].Name != "Dockside" || resp.Items[2].Name != "Riverside" {
		t.Fatalf("items not sorted by revenue descending: %+v", resp.Items)
	}
	if resp.Items[0].ProfitCents != 2500 {
		t.Fatalf("profit = %d, want 2500", resp.Items[0].ProfitCents)
	}

	var sum float64
	for _, item := range resp.Items {
		sum += item.Percentage
	}
	if math.Abs(sum-100) > 0.3 {
		t.Fatalf("percentages sum to %v, want ~100", sum)
	}
}

func TestDistributionZeroRevenue(t *testing.T) {
	source := &fakeProperties{
		owned: []reportdomain.OwnedProperty{
			{ID: 1, Name: "Riverside", UnitCount: 2},
			{ID: 2, Name: "Hillcrest", UnitCount: 3},
		},
		revenue: map[snowflake.ID]int64{},
		expense: map[snowflake.ID]int64{},
	}

	resp, err := newTestService(source).Distribution(context.Background(), 9, reportdomain.Filter{})
	if err != nil {
		t.Fatalf("distribution: %v", err)
	}
	for _, item := range resp.Items {
		if item.Percentage != 0 {
			t.Fatalf("zero-revenue report must carry zero percentages, got %+v", item)
		}
	}
}

func TestDistributionNoProperties(t *testing.T) {
	resp, err := newTestService(&fakeProperties{}).Distribution(context.Background(), 9, reportdomain.Filter{})
	if err != nil {
		t.Fatalf("distribution: %v", err)
	}
	if len(resp.Items) != 0 || resp.TotalProperties != 0 {
		t.Fatalf("expected empty report, got %+v", resp)
	}
}

func TestDistributionTypeFilter(t *testing.T) {
	source := &fakeProperties{
		owned: []reportdomain.OwnedProperty{
			{ID: 1, Name: "Riverside", Type: "apartment", UnitCount: 4},
			{ID: 2, Name: "Hillcrest", Type: "house", UnitCount: 1},
		},
		revenue: map[snowflake.ID]int64{1: 100, 2: 200},
		expense: map[snowflake.ID]int64{},
	}

	resp, err := newTestService(source).Distribution(context.Background(), 9, reportdomain.Filter{PropertyType: "house"})
	if err != nil {
		t.Fatalf("distribution: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].Name != "Hillcrest" {
		t.Fatalf("type filter not applied: %+v", resp.Items)
	}
	if resp.Items[0].Percentage != 100 {
		t.Fatalf("single item should own 100%%, got %v", resp.Items[0].Percentage)
	}
}

func TestDistributionFallback(t *testing.T) {
	source := &fakeProperties{listErr: errors.New("db down")}

	_, err := newTestService(source).Distribution(context.Background(), 9, reportdomain.Filter{})
	var ce *reportdomain.CollaboratorError
	if !errors.As(err, &ce) {
		t.Fatalf("expected collaborator error, got %v", err)
	}

	resp, err := newTestService(source).Distribution(context.Background(), 9, reportdomain.Filter{Fallback: true})
	if err != nil {
		t.Fatalf("fallback mode must not error: %v", err)
	}
	if len(resp.Items) != 0 || resp.TotalRevenueCents != 0 {
		t.Fatalf("fallback report not zeroed: %+v", resp)
	}
}

// paidWindowProperties grants revenue only when the queried range covers the
// recorded payment instant.
type paidWindowProperties struct {
	paidAt time.Time
	amount int64
}

func (f *paidWindowProperties) ListOwned(_ context.Context, _ snowflake.ID, _ string) ([]reportdomain.OwnedProperty, error) {
	return []reportdomain.OwnedProperty{{ID: 1, Name: "Riverside", UnitCount: 2}}, nil
}

func (f *paidWindowProperties) SumRevenue(_ context.Context, _ snowflake.ID, r period.Range) (int64, error) {
	if r.Contains(f.paidAt) {
		return f.amount, nil
	}
	return 0, nil
}

func (f *paidWindowProperties) EstimateExpense(_ context.Context, _ snowflake.ID, _ period.Range) (int64, error) {
	return 0, nil
}

func TestDistributionExplicitEndDateCoversWholeDay(t *testing.T) {
	start := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	source := &paidWindowProperties{
		// Settled at noon on the final day of the window.
		paidAt: time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC),
		amount: 100,
	}

	resp, err := newTestService(source).Distribution(context.Background(), 9, reportdomain.Filter{
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		t.Fatalf("distribution: %v", err)
	}
	if resp.TotalRevenueCents != 100 {
		t.Fatalf("end-of-day payment dropped: revenue = %d, want 100", resp.TotalRevenueCents)
	}
	wantEnd := time.Date(2025, time.June, 10, 23, 59, 59, 999000000, time.UTC)
	if !resp.Range.End.Equal(wantEnd) {
		t.Fatalf("range end = %v, want %v", resp.Range.End, wantEnd)
	}
}

func TestDistributionIncompleteRangeRejected(t *testing.T) {
	start := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	_, err := newTestService(&fakeProperties{}).Distribution(context.Background(), 9, reportdomain.Filter{
		StartDate: &start,
	})
	if !reportdomain.IsValidation(err) {
		t.Fatalf("expected validation error for lone start date, got %v", err)
	}

	// Fallback never masks a malformed filter.
	_, err = newTestService(&fakeProperties{}).Distribution(context.Background(), 9, reportdomain.Filter{
		StartDate: &start,
		Fallback:  true,
	})
	if !reportdomain.IsValidation(err) {
		t.Fatalf("expected validation error in fallback mode, got %v", err)
	}
}
