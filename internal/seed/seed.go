// Package seed bootstraps demo data for local runs.
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rentora/rentora/internal/auth/password"
	billdomain "github.com/rentora/rentora/internal/bill/domain"
	"github.com/rentora/rentora/internal/currency"
	leasedomain "github.com/rentora/rentora/internal/lease/domain"
	maintenancedomain "github.com/rentora/rentora/internal/maintenance/domain"
	meterdomain "github.com/rentora/rentora/internal/meter/domain"
	propertydomain "github.com/rentora/rentora/internal/property/domain"
	tariffdomain "github.com/rentora/rentora/internal/tariff/domain"
	tenantdomain "github.com/rentora/rentora/internal/tenant/domain"
	userdomain "github.com/rentora/rentora/internal/user/domain"
)

const (
	demoUsername = "demo"
	demoPassword = "demo"
)

// EnsureDemoData seeds a demo owner with properties, tenants, leases, a
// tariff schedule and currency rates. Safe to run repeatedly.
func EnsureDemoData(db *gorm.DB, node *snowflake.Node) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owner, created, err := ensureDemoOwner(tx, node)
		if err != nil || !created {
			return err
		}
		if err := seedRates(tx); err != nil {
			return err
		}
		return seedPortfolio(tx, node, owner)
	})
}

func ensureDemoOwner(tx *gorm.DB, node *snowflake.Node) (*userdomain.User, bool, error) {
	var existing userdomain.User
	err := tx.Where("username = ?", demoUsername).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	hashed, err := password.Hash(demoPassword)
	if err != nil {
		return nil, false, err
	}
	owner := userdomain.User{
		ID:                node.Generate(),
		Username:          demoUsername,
		PasswordHash:      hashed,
		PreferredCurrency: "VND",
	}
	if err := tx.Create(&owner).Error; err != nil {
		return nil, false, err
	}
	return &owner, true, nil
}

func seedRates(tx *gorm.DB) error {
	rates := []currency.Rate{
		{Code: "VND", PerBaseUnit: 1},
		{Code: "USD", PerBaseUnit: 25400},
		{Code: "EUR", PerBaseUnit: 27600},
	}
	return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rates).Error
}

func seedPortfolio(tx *gorm.DB, node *snowflake.Node, owner *userdomain.User) error {
	now := time.Now().UTC()

	house := propertydomain.Property{
		ID:      node.Generate(),
		OwnerID: owner.ID,
		Name:    "Lakeside House",
		Type:    propertydomain.PropertyTypeHouse,
		Address: "12 Hồ Tây, Hà Nội",
	}
	block := propertydomain.Property{
		ID:      node.Generate(),
		OwnerID: owner.ID,
		Name:    "Riverside Apartments",
		Type:    propertydomain.PropertyTypeApartment,
		Address: "35 Bạch Đằng, Đà Nẵng",
	}
	if err := tx.Create([]*propertydomain.Property{&house, &block}).Error; err != nil {
		return err
	}

	units := []propertydomain.Unit{
		{ID: node.Generate(), PropertyID: house.ID, Name: "Whole house", RentAmountCents: 120000000},
		{ID: node.Generate(), PropertyID: block.ID, Name: "A-101", RentAmountCents: 45000000},
		{ID: node.Generate(), PropertyID: block.ID, Name: "A-102", RentAmountCents: 47000000},
	}
	if err := tx.Create(&units).Error; err != nil {
		return err
	}

	tenant := tenantdomain.Tenant{
		ID:      node.Generate(),
		OwnerID: owner.ID,
		Name:    "Nguyễn Văn An",
		Email:   "an.nguyen@example.com",
		Phone:   "+84 90 123 4567",
	}
	if err := tx.Create(&tenant).Error; err != nil {
		return err
	}

	lease := leasedomain.Lease{
		ID:              node.Generate(),
		OwnerID:         owner.ID,
		PropertyID:      block.ID,
		UnitID:          units[1].ID,
		TenantID:        tenant.ID,
		StartDate:       now.AddDate(0, -11, 0),
		EndDate:         now.AddDate(0, 0, 20),
		RentAmountCents: units[1].RentAmountCents,
		Status:          leasedomain.LeaseStatusActive,
	}
	if err := tx.Create(&lease).Error; err != nil {
		return err
	}

	rentBill := billdomain.Bill{
		ID:               node.Generate(),
		OwnerID:          owner.ID,
		PropertyID:       block.ID,
		UnitID:           units[1].ID,
		TenantID:         tenant.ID,
		RentAmountCents:  units[1].RentAmountCents,
		TotalAmountCents: units[1].RentAmountCents,
		DueDate:          now.AddDate(0, 0, 5),
		Status:           billdomain.BillStatusPending,
	}
	if err := tx.Create(&rentBill).Error; err != nil {
		return err
	}

	request := maintenancedomain.MaintenanceRequest{
		ID:          node.Generate(),
		OwnerID:     owner.ID,
		PropertyID:  house.ID,
		UnitID:      units[0].ID,
		Title:       "Leaking kitchen tap",
		Description: "Reported by the tenant after the rainy week.",
		Priority:    "medium",
		Status:      "pending",
	}
	if err := tx.Create(&request).Error; err != nil {
		return err
	}

	schedule := tariffdomain.TariffSchedule{
		ID:          node.Generate(),
		OwnerID:     owner.ID,
		UtilityType: meterdomain.UtilityElectricity,
		Currency:    "VND",
	}
	if err := tx.Create(&schedule).Error; err != nil {
		return err
	}
	tiers := []tariffdomain.TariffTier{
		{ID: node.Generate(), ScheduleID: schedule.ID, UpperLimit: 50, RatePerUnit: 1678},
		{ID: node.Generate(), ScheduleID: schedule.ID, UpperLimit: 100, RatePerUnit: 1734},
		{ID: node.Generate(), ScheduleID: schedule.ID, UpperLimit: 200, RatePerUnit: 2014},
	}
	if err := tx.Create(&tiers).Error; err != nil {
		return err
	}

	readings := []meterdomain.MeterReading{
		{ID: node.Generate(), OwnerID: owner.ID, UnitID: units[1].ID, UtilityType: meterdomain.UtilityElectricity, Value: 64, RecordedAt: now.AddDate(0, 0, -20)},
		{ID: node.Generate(), OwnerID: owner.ID, UnitID: units[1].ID, UtilityType: meterdomain.UtilityElectricity, Value: 56, RecordedAt: now.AddDate(0, 0, -5)},
	}
	return tx.Create(&readings).Error
}
