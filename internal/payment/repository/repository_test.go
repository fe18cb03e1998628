package repository

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	billdomain "github.com/rentora/rentora/internal/bill/domain"
	"github.com/rentora/rentora/internal/migration"
	paymentdomain "github.com/rentora/rentora/internal/payment/domain"
	"github.com/rentora/rentora/internal/report/period"
)

func setupPaymentTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := migration.Run(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func insertPayment(t *testing.T, db *gorm.DB, node *snowflake.Node, ownerID snowflake.ID, rentCents, amountCents int64, paidAt time.Time) {
	t.Helper()
	billID := node.Generate()
	bill := billdomain.Bill{
		ID:               billID,
		OwnerID:          ownerID,
		RentAmountCents:  rentCents,
		TotalAmountCents: amountCents,
		DueDate:          paidAt,
		Status:           billdomain.BillStatusPaid,
		Checksum:         billID.String(),
	}
	if err := db.Create(&bill).Error; err != nil {
		t.Fatalf("insert bill: %v", err)
	}
	payment := paymentdomain.Payment{
		ID:          node.Generate(),
		OwnerID:     ownerID,
		BillID:      bill.ID,
		AmountCents: amountCents,
		Currency:    "VND",
		PaidAt:      paidAt,
	}
	if err := db.Create(&payment).Error; err != nil {
		t.Fatalf("insert payment: %v", err)
	}
}

func TestSumPaymentsClassifiesByBillRent(t *testing.T) {
	db := setupPaymentTestDB(t)
	node, err := snowflake.NewNode(2)
	if err != nil {
		t.Fatalf("snowflake: %v", err)
	}
	ownerID := node.Generate()
	rng := period.Range{
		Start: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.June, 30, 23, 59, 59, 999000000, time.UTC),
	}

	// Rent-backed payments count as revenue, zero-rent bills as expense.
	insertPayment(t, db, node, ownerID, 45000000, 45000000, rng.Start.AddDate(0, 0, 3))
	insertPayment(t, db, node, ownerID, 45000000, 45000000, rng.Start.AddDate(0, 0, 17))
	insertPayment(t, db, node, ownerID, 0, 1200000, rng.Start.AddDate(0, 0, 10))
	// Outside the range on both sides.
	insertPayment(t, db, node, ownerID, 45000000, 45000000, rng.Start.AddDate(0, 0, -1))
	insertPayment(t, db, node, ownerID, 0, 500000, rng.End.Add(time.Second))

	repo := Provide(db)
	ctx := context.Background()

	revenue, err := repo.SumPayments(ctx, ownerID, rng, true)
	if err != nil {
		t.Fatalf("sum revenue: %v", err)
	}
	if revenue != 90000000 {
		t.Fatalf("expected revenue 90000000, got %d", revenue)
	}

	expense, err := repo.SumPayments(ctx, ownerID, rng, false)
	if err != nil {
		t.Fatalf("sum expense: %v", err)
	}
	if expense != 1200000 {
		t.Fatalf("expected expense 1200000, got %d", expense)
	}
}

func TestSumPaymentsEmptyRangeIsZero(t *testing.T) {
	db := setupPaymentTestDB(t)
	node, err := snowflake.NewNode(2)
	if err != nil {
		t.Fatalf("snowflake: %v", err)
	}
	ownerID := node.Generate()
	rng := period.Range{
		Start: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.January, 31, 23, 59, 59, 999000000, time.UTC),
	}

	repo := Provide(db)
	total, err := repo.SumPayments(context.Background(), ownerID, rng, true)
	if err != nil {
		t.Fatalf("sum: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected 0 for empty range, got %d", total)
	}
}

func TestListFactsOrdersAndClassifies(t *testing.T) {
	db := setupPaymentTestDB(t)
	node, err := snowflake.NewNode(2)
	if err != nil {
		t.Fatalf("snowflake: %v", err)
	}
	ownerID := node.Generate()
	rng := period.Range{
		Start: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.June, 30, 23, 59, 59, 999000000, time.UTC),
	}

	insertPayment(t, db, node, ownerID, 0, 800000, rng.Start.AddDate(0, 0, 20))
	insertPayment(t, db, node, ownerID, 45000000, 45000000, rng.Start.AddDate(0, 0, 2))

	repo := Provide(db)
	facts, err := repo.ListFacts(context.Background(), ownerID, rng)
	if err != nil {
		t.Fatalf("list facts: %v", err)
	}
	if len(facts) != 2 {
		t.Fatalf("expected 2 facts, got %d", len(facts))
	}
	if !facts[0].IsRevenue || facts[0].AmountCents != 45000000 {
		t.Fatalf("expected first fact to be the earlier rent payment, got %+v", facts[0])
	}
	if facts[1].IsRevenue {
		t.Fatalf("expected second fact to be expense, got %+v", facts[1])
	}
}
