// Package finance assembles the account-wide revenue/expense overview.
package finance

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"

	"github.com/rentora/rentora/internal/clock"
	"github.com/rentora/rentora/internal/observability/metrics"
	reportdomain "github.com/rentora/rentora/internal/report/domain"
	"github.com/rentora/rentora/internal/report/period"
)

// PaymentSource supplies summed and itemized payment facts for an owner.
type PaymentSource interface {
	// SumPayments returns the summed amount of revenue (or expense) payments
	// inside the range. No matching records must yield 0, not an error.
	SumPayments(ctx context.Context, ownerID snowflake.ID, r period.Range, revenue bool) (int64, error)
	// ListFacts returns every classified payment fact inside the range.
	ListFacts(ctx context.Context, ownerID snowflake.ID, r period.Range) ([]reportdomain.MoneyFact, error)
}

// Converter translates canonical amounts into a requested display currency.
type Converter interface {
	Convert(ctx context.Context, amountCents int64, from, to string) (int64, error)
	UserPreference(ctx context.Context, ownerID snowflake.ID) (string, error)
}

// Service computes the financial overview report.
type Service struct {
	payments     PaymentSource
	converter    Converter
	clk          clock.Clock
	log          *zap.Logger
	metrics      *metrics.ReportMetrics
	baseCurrency string
}

// Option tweaks Service construction.
type Option func(*Service)

// WithMetrics attaches report metrics.
func WithMetrics(m *metrics.ReportMetrics) Option {
	return func(s *Service) { s.metrics = m }
}

// NewService builds the overview aggregator.
func NewService(payments PaymentSource, converter Converter, clk clock.Clock, log *zap.Logger, baseCurrency string, opts ...Option) *Service {
	s := &Service{
		payments:     payments,
		converter:    converter,
		clk:          clk,
		log:          log.Named("report.finance"),
		baseCurrency: baseCurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Overview resolves the filter's window, sums current and previous payments,
// and buckets the current period's facts into the chart series.
func (s *Service) Overview(ctx context.Context, ownerID snowflake.ID, f reportdomain.Filter) (*reportdomain.OverviewResponse, error) {
	started := time.Now()
	current, err := reportdomain.ResolveRange(f, s.clk.Now())
	if err != nil {
		return nil, err
	}

	resp, err := s.overview(ctx, ownerID, f, current)
	s.metrics.ObserveReport("overview", time.Since(started), err)
	if err == nil {
		return resp, nil
	}
	if !f.Fallback || reportdomain.IsValidation(err) {
		return nil, err
	}

	s.log.Warn("serving zero-valued overview after collaborator failure",
		zap.String("owner_id", ownerID.String()),
		zap.Error(err),
	)
	s.metrics.IncFallback("overview")
	return s.zeroOverview(f, current), nil
}

func (s *Service) overview(ctx context.Context, ownerID snowflake.ID, f reportdomain.Filter, current period.Range) (*reportdomain.OverviewResponse, error) {
	kind := f.Kind()

	revenue, err := s.payments.SumPayments(ctx, ownerID, current, true)
	if err != nil {
		return nil, reportdomain.WrapCollaborator("sum_payments", err)
	}
	expense, err := s.payments.SumPayments(ctx, ownerID, current, false)
	if err != nil {
		return nil, reportdomain.WrapCollaborator("sum_payments", err)
	}
	profit := revenue - expense

	// Previous-period comparison only makes sense for symbolic periods.
	var revenueChange, expenseChange, profitChange float64
	if !f.Explicit() {
		previous := period.ResolvePrevious(kind, s.clk.Now())
		prevRevenue, err := s.payments.SumPayments(ctx, ownerID, previous, true)
		if err != nil {
			return nil, reportdomain.WrapCollaborator("sum_payments", err)
		}
		prevExpense, err := s.payments.SumPayments(ctx, ownerID, previous, false)
		if err != nil {
			return nil, reportdomain.WrapCollaborator("sum_payments", err)
		}
		revenueChange = reportdomain.PctChange(float64(revenue), float64(prevRevenue))
		expenseChange = reportdomain.PctChange(float64(expense), float64(prevExpense))
		profitChange = reportdomain.PctChange(float64(profit), float64(prevRevenue-prevExpense))
	}

	facts, err := s.payments.ListFacts(ctx, ownerID, current)
	if err != nil {
		return nil, reportdomain.WrapCollaborator("list_payment_facts", err)
	}
	chart := buildChart(kind, current, facts)

	resp := &reportdomain.OverviewResponse{
		Range:             current,
		TotalRevenueCents: revenue,
		TotalExpenseCents: expense,
		NetProfitCents:    profit,
		RevenueChange:     revenueChange,
		ExpenseChange:     expenseChange,
		ProfitChange:      profitChange,
		Chart:             chart,
		Currency:          s.baseCurrency,
	}
	if err := s.applyCurrency(ctx, ownerID, f, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// applyCurrency converts every monetary figure into the requested display
// currency. Percentage-change fields are ratios and stay untouched.
func (s *Service) applyCurrency(ctx context.Context, ownerID snowflake.ID, f reportdomain.Filter, resp *reportdomain.OverviewResponse) error {
	target := f.Currency
	if target == "" && s.converter != nil {
		preferred, err := s.converter.UserPreference(ctx, ownerID)
		if err != nil {
			return reportdomain.WrapCollaborator("currency_preference", err)
		}
		target = preferred
	}
	if target == "" || target == s.baseCurrency || s.converter == nil {
		return nil
	}

	convert := func(amount int64) (int64, error) {
		converted, err := s.converter.Convert(ctx, amount, s.baseCurrency, target)
		if err != nil {
			return 0, reportdomain.WrapCollaborator("convert_currency", err)
		}
		return converted, nil
	}

	var err error
	if resp.TotalRevenueCents, err = convert(resp.TotalRevenueCents); err != nil {
		return err
	}
	if resp.TotalExpenseCents, err = convert(resp.TotalExpenseCents); err != nil {
		return err
	}
	if resp.NetProfitCents, err = convert(resp.NetProfitCents); err != nil {
		return err
	}
	for i := range resp.Chart.Income {
		if resp.Chart.Income[i], err = convert(resp.Chart.Income[i]); err != nil {
			return err
		}
		if resp.Chart.Expense[i], err = convert(resp.Chart.Expense[i]); err != nil {
			return err
		}
		resp.Chart.Profit[i] = resp.Chart.Income[i] - resp.Chart.Expense[i]
	}

	resp.BaseCurrency = s.baseCurrency
	resp.Currency = target
	return nil
}

func (s *Service) zeroOverview(f reportdomain.Filter, current period.Range) *reportdomain.OverviewResponse {
	return &reportdomain.OverviewResponse{
		Range:    current,
		Chart:    reportdomain.EmptyChartSeries(f.Kind()),
		Currency: s.baseCurrency,
	}
}

// buildChart accumulates facts into their period buckets. Facts outside the
// resolved range are dropped so the positional index never wraps.
func buildChart(kind period.Kind, r period.Range, facts []reportdomain.MoneyFact) reportdomain.ChartSeries {
	chart := reportdomain.EmptyChartSeries(kind)
	for _, fact := range facts {
		if !r.Contains(fact.OccurredAt) {
			continue
		}
		idx := period.BucketIndex(kind, fact.OccurredAt)
		if fact.IsRevenue {
			chart.Income[idx] += fact.AmountCents
		} else {
			chart.Expense[idx] += fact.AmountCents
		}
	}
	for i := range chart.Profit {
		chart.Profit[i] = chart.Income[i] - chart.Expense[i]
	}
	return chart
}
