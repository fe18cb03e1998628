// Package migration creates the schema for every persisted model.
package migration

import (
	"gorm.io/gorm"

	billdomain "github.com/rentora/rentora/internal/bill/domain"
	"github.com/rentora/rentora/internal/currency"
	leasedomain "github.com/rentora/rentora/internal/lease/domain"
	maintenancedomain "github.com/rentora/rentora/internal/maintenance/domain"
	meterdomain "github.com/rentora/rentora/internal/meter/domain"
	paymentdomain "github.com/rentora/rentora/internal/payment/domain"
	propertydomain "github.com/rentora/rentora/internal/property/domain"
	tariffdomain "github.com/rentora/rentora/internal/tariff/domain"
	tenantdomain "github.com/rentora/rentora/internal/tenant/domain"
	userdomain "github.com/rentora/rentora/internal/user/domain"
)

// Run applies the schema for all models.
func Run(db *gorm.DB) error {
	return db.AutoMigrate(
		userdomain.User{},
		propertydomain.Property{},
		propertydomain.Unit{},
		tenantdomain.Tenant{},
		leasedomain.Lease{},
		billdomain.Bill{},
		paymentdomain.Payment{},
		maintenancedomain.MaintenanceRequest{},
		meterdomain.MeterReading{},
		tariffdomain.TariffSchedule{},
		tariffdomain.TariffTier{},
		currency.Rate{},
	)
}
