package database

import (
	"fmt"

	"github.com/Eursukkul/club-admin/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB connects and migrates the activity log.
func NewPostgresDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := db.AutoMigrate(&models.Activity{}); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_activities_resource_occurred ON activities (resource, occurred_at DESC)`).Error; err != nil {
		return nil, fmt.Errorf("create activity index: %w", err)
	}

	return db, nil
}
