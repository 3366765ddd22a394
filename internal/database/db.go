package database

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/justsurfingit/maya-pricing/internal/models"
)

// Connect opens the Postgres database behind dsn and migrates the schema.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("database: connect: %w", err)
	}
	log.Info().Msg("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the tables the service owns.
func Migrate(db *gorm.DB) error {
	log.Info().Msg("Running migrations")
	if err := db.AutoMigrate(
		&models.PricingInfo{},
		&models.Candidate{},
		&models.User{},
		&models.WorkStatus{},
		&models.RecruiterJob{},
		&models.RecruiterApplication{},
		&models.Application{},
	); err != nil {
		return fmt.Errorf("database: migrate: %w", err)
	}
	return nil
}
