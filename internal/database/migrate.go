package database

import (
	"fmt"

	"gorm.io/gorm"

	"record-tracker/internal/models"
)

// Default administrator credentials seeded into an empty database. The fixed
// password is a known deployment risk (see README); rotate it immediately.
const (
	DefaultAdminName     = "Admin"
	DefaultAdminEmail    = "admin@example.com"
	DefaultAdminPassword = "Admin@123"
)

// Migrate creates or updates the users and records tables. Idempotent.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Record{}); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}
	return nil
}

// SeedDefaultAdmin inserts the default administrator if and only if the store
// holds zero admin rows, so re-initializing an already-seeded database is a
// no-op. The application refuses to start without at least one admin.
func SeedDefaultAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("is_admin = ?", true).Count(&count).Error; err != nil {
		return fmt.Errorf("admin count failed: %w", err)
	}
	if count > 0 {
		log.Debug("Admin account already present, skipping seed")
		return nil
	}

	admin := models.User{
		Name:    DefaultAdminName,
		Email:   DefaultAdminEmail,
		IsAdmin: true,
	}
	if err := admin.SetPassword(DefaultAdminPassword); err != nil {
		return fmt.Errorf("hashing default admin password failed: %w", err)
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("seeding default admin failed: %w", err)
	}

	log.WithField("email", DefaultAdminEmail).Warn("Seeded default admin account with the built-in password; change it before exposing this instance")
	return nil
}
