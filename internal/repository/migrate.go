package repository

import "gorm.io/gorm"

// Migrate creates or updates the five marketplace tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&vendorProfileModel{},
		&bookingModel{},
		&reviewModel{},
		&categoryModel{},
	)
}
