package model

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every entity. Order matters:
// referenced tables must exist before the tables holding foreign keys.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&ApiKey{},
		&User{},
		&Tweet{},
		&Media{},
		&Like{},
		&Subscribe{},
	)
}
