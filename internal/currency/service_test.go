package currency

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	userdomain "github.com/rentora/rentora/internal/user/domain"
)

func setupCurrencyTest(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(userdomain.User{}, Rate{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewService(db, zap.NewNop()), db
}

func seedRate(t *testing.T, db *gorm.DB, code string, perBaseUnit float64) {
	t.Helper()
	if err := db.Where("code = ?", code).Delete(&Rate{}).Error; err != nil {
		t.Fatalf("clear rate: %v", err)
	}
	if err := db.Create(&Rate{Code: code, PerBaseUnit: perBaseUnit}).Error; err != nil {
		t.Fatalf("insert rate: %v", err)
	}
}

func TestConvertThroughBase(t *testing.T) {
	svc, db := setupCurrencyTest(t)
	seedRate(t, db, "VND", 1)
	seedRate(t, db, "USD", 25000)

	ctx := context.Background()

	got, err := svc.Convert(ctx, 50000000, "VND", "USD")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if got != 2000 {
		t.Fatalf("expected 2000, got %d", got)
	}

	back, err := svc.Convert(ctx, 2000, "USD", "VND")
	if err != nil {
		t.Fatalf("convert back: %v", err)
	}
	if back != 50000000 {
		t.Fatalf("expected 50000000, got %d", back)
	}
}

func TestConvertSameCurrencyIsIdentity(t *testing.T) {
	svc, _ := setupCurrencyTest(t)
	got, err := svc.Convert(context.Background(), 123456, "VND", "vnd")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if got != 123456 {
		t.Fatalf("expected identity, got %d", got)
	}
}

func TestConvertUnknownCurrency(t *testing.T) {
	svc, db := setupCurrencyTest(t)
	seedRate(t, db, "VND", 1)

	_, err := svc.Convert(context.Background(), 1000, "VND", "XXX")
	if !errors.Is(err, ErrUnknownCurrency) {
		t.Fatalf("expected ErrUnknownCurrency, got %v", err)
	}
}

func TestConvertUsesCachedRate(t *testing.T) {
	svc, db := setupCurrencyTest(t)
	seedRate(t, db, "VND", 1)
	seedRate(t, db, "EUR", 27000)

	ctx := context.Background()
	if _, err := svc.Convert(ctx, 27000, "VND", "EUR"); err != nil {
		t.Fatalf("warm cache: %v", err)
	}

	// A stale table row must not affect conversions until the TTL lapses.
	if err := db.Model(&Rate{}).Where("code = ?", "EUR").Update("per_base_unit", 99999).Error; err != nil {
		t.Fatalf("update rate: %v", err)
	}
	got, err := svc.Convert(ctx, 27000, "VND", "EUR")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if got != 1 {
		t.Fatalf("expected cached rate to yield 1, got %d", got)
	}
}

func TestUserPreference(t *testing.T) {
	svc, db := setupCurrencyTest(t)
	node, err := snowflake.NewNode(7)
	if err != nil {
		t.Fatalf("snowflake: %v", err)
	}
	owner := userdomain.User{
		ID:                node.Generate(),
		Username:          "pref-owner",
		PasswordHash:      "x",
		PreferredCurrency: "usd",
	}
	if err := db.Create(&owner).Error; err != nil {
		t.Fatalf("insert user: %v", err)
	}

	preferred, err := svc.UserPreference(context.Background(), owner.ID)
	if err != nil {
		t.Fatalf("preference: %v", err)
	}
	if preferred != "USD" {
		t.Fatalf("expected USD, got %q", preferred)
	}
}
