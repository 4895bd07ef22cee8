package db

import (
	"marketplace/internal/domain"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the application owns
func Migrate(database *gorm.DB) error {
	return database.AutoMigrate(
		&domain.User{},
		&domain.Address{},
		&domain.Kyc{},
		&domain.Category{},
		&domain.Market{},
		&domain.Store{},
		&domain.Product{},
		&domain.Review{},
		&domain.Order{},
		&domain.OrderItem{},
		&domain.OrderTransaction{},
		&domain.Wallet{},
		&domain.WalletTransaction{},
	)
}
