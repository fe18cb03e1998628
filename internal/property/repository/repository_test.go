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
	propertydomain "github.com/rentora/rentora/internal/property/domain"
	"github.com/rentora/rentora/internal/report/period"
)

func setupPropertyTestDB(t *testing.T) (*gorm.DB, *snowflake.Node) {
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
	node, err := snowflake.NewNode(4)
	if err != nil {
		t.Fatalf("snowflake: %v", err)
	}
	return db, node
}

func TestListOwnedCountsUnitsAndFiltersType(t *testing.T) {
	db, node := setupPropertyTestDB(t)
	ownerID := node.Generate()

	house := propertydomain.Property{ID: node.Generate(), OwnerID: ownerID, Name: "Hillside House", Type: propertydomain.PropertyTypeHouse}
	block := propertydomain.Property{ID: node.Generate(), OwnerID: ownerID, Name: "Central Block", Type: propertydomain.PropertyTypeApartment}
	if err := db.Create([]*propertydomain.Property{&house, &block}).Error; err != nil {
		t.Fatalf("insert properties: %v", err)
	}
	units := []propertydomain.Unit{
		{ID: node.Generate(), PropertyID: block.ID, Name: "B-1"},
		{ID: node.Generate(), PropertyID: block.ID, Name: "B-2"},
		{ID: node.Generate(), PropertyID: house.ID, Name: "Main"},
	}
	if err := db.Create(&units).Error; err != nil {
		t.Fatalf("insert units: %v", err)
	}

	repo := Provide(db)
	ctx := context.Background()

	owned, err := repo.ListOwned(ctx, ownerID, "")
	if err != nil {
		t.Fatalf("list owned: %v", err)
	}
	if len(owned) != 2 {
		t.Fatalf("expected 2 properties, got %d", len(owned))
	}
	// Sorted by name: Central Block first.
	if owned[0].Name != "Central Block" || owned[0].UnitCount != 2 {
		t.Fatalf("unexpected first property %+v", owned[0])
	}
	if owned[1].UnitCount != 1 {
		t.Fatalf("expected 1 unit for house, got %d", owned[1].UnitCount)
	}

	apartments, err := repo.ListOwned(ctx, ownerID, propertydomain.PropertyTypeApartment)
	if err != nil {
		t.Fatalf("list apartments: %v", err)
	}
	if len(apartments) != 1 || apartments[0].ID != block.ID {
		t.Fatalf("type filter failed: %+v", apartments)
	}
}

func TestSumRevenueAndEstimateExpense(t *testing.T) {
	db, node := setupPropertyTestDB(t)
	ownerID := node.Generate()
	propertyID := node.Generate()
	rng := period.Range{
		Start: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.June, 30, 23, 59, 59, 999000000, time.UTC),
	}

	insert := func(rentCents, amountCents int64, paidAt time.Time) {
		billID := node.Generate()
		bill := billdomain.Bill{
			ID:               billID,
			OwnerID:          ownerID,
			PropertyID:       propertyID,
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
			PropertyID:  propertyID,
			BillID:      bill.ID,
			AmountCents: amountCents,
			Currency:    "VND",
			PaidAt:      paidAt,
		}
		if err := db.Create(&payment).Error; err != nil {
			t.Fatalf("insert payment: %v", err)
		}
	}

	insert(45000000, 45000000, rng.Start.AddDate(0, 0, 2))
	insert(0, 2000000, rng.Start.AddDate(0, 0, 9))
	insert(45000000, 45000000, rng.End.Add(time.Hour)) // outside

	repo := Provide(db)
	ctx := context.Background()

	revenue, err := repo.SumRevenue(ctx, propertyID, rng)
	if err != nil {
		t.Fatalf("sum revenue: %v", err)
	}
	if revenue != 45000000 {
		t.Fatalf("expected revenue 45000000, got %d", revenue)
	}

	expense, err := repo.EstimateExpense(ctx, propertyID, rng)
	if err != nil {
		t.Fatalf("estimate expense: %v", err)
	}
	if expense != 2000000 {
		t.Fatalf("expected expense 2000000, got %d", expense)
	}
}
