package model

import "gorm.io/gorm"

// AutoMigrate creates or updates the room booking schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Room{},
		&Booking{},
		&Event{},
	)
}
