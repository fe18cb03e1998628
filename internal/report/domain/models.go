// Package domain defines the financial report contracts.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"

	"github.com/rentora/rentora/internal/report/period"
)

// Filter selects the reporting window and presentation options.
type Filter struct {
	// Period is a symbolic keyword (day/week/month/quarter/year). Ignored
	// when explicit bounds are set.
	Period string

	// StartDate/EndDate override symbolic resolution. When set, no
	// previous-period comparison is computed.
	StartDate *time.Time
	EndDate   *time.Time

	// PropertyType narrows distribution reports to one property type.
	PropertyType string

	// Currency requests conversion of monetary figures before returning.
	Currency string

	// Fallback opts into degraded-result mode: collaborator failures yield
	// a zero-valued report instead of an error.
	Fallback bool
}

// Explicit reports whether the filter carries explicit date bounds.
func (f Filter) Explicit() bool {
	return f.StartDate != nil && f.EndDate != nil
}

// Kind returns the effective symbolic period.
func (f Filter) Kind() period.Kind {
	return period.ParseKind(f.Period)
}

// MoneyFact is one classified payment event. Whether a fact is revenue is
// decided upstream by the bill it settles, not by the report engine.
type MoneyFact struct {
	AmountCents int64     `json:"amount_cents"`
	OccurredAt  time.Time `json:"occurred_at"`
	IsRevenue   bool      `json:"is_revenue"`
}

// ChartSeries is a fixed-size bucketed time series for charting. All four
// slices share the period's bucket count.
type ChartSeries struct {
	Income  []int64  `json:"income"`
	Expense []int64  `json:"expense"`
	Profit  []int64  `json:"profit"`
	Labels  []string `json:"labels"`
}

// EmptyChartSeries returns an all-zero series of the right shape for a kind.
func EmptyChartSeries(kind period.Kind) ChartSeries {
	n := period.BucketCount(kind)
	return ChartSeries{
		Income:  make([]int64, n),
		Expense: make([]int64, n),
		Profit:  make([]int64, n),
		Labels:  period.Labels(kind),
	}
}

// OverviewResponse is the account-wide financial summary.
type OverviewResponse struct {
	Range period.Range `json:"range"`

	TotalRevenueCents int64 `json:"total_revenue_cents"`
	TotalExpenseCents int64 `json:"total_expense_cents"`
	NetProfitCents    int64 `json:"net_profit_cents"`

	// Percentage deltas vs. the previous period, one decimal. Zero when the
	// filter used explicit dates.
	RevenueChange float64 `json:"revenue_change"`
	ExpenseChange float64 `json:"expense_change"`
	ProfitChange  float64 `json:"profit_change"`

	Chart ChartSeries `json:"chart"`

	Currency     string `json:"currency"`
	BaseCurrency string `json:"base_currency,omitempty"`
}

// DistributionItem is one property's share of the period's revenue.
type DistributionItem struct {
	ID           snowflake.ID `json:"id"`
	Name         string       `json:"name"`
	RevenueCents int64        `json:"revenue_cents"`
	ExpenseCents int64        `json:"expense_cents"`
	ProfitCents  int64        `json:"profit_cents"`
	Percentage   float64      `json:"percentage"`
	UnitCount    int          `json:"unit_count"`
}

// DistributionResponse is the per-property revenue breakdown.
type DistributionResponse struct {
	Range period.Range `json:"range"`

	Items             []DistributionItem `json:"items"`
	TotalProperties   int                `json:"total_properties"`
	TotalUnits        int                `json:"total_units"`
	TotalRevenueCents int64              `json:"total_revenue_cents"`
}

// OwnedProperty is the property summary consumed from the property source.
type OwnedProperty struct {
	ID        snowflake.ID
	Name      string
	Type      string
	UnitCount int
}
