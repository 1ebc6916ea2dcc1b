package db

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/savormap/savormap-api/internal/config"
	"github.com/savormap/savormap-api/internal/logger"
	"github.com/savormap/savormap-api/internal/models"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// New creates a new database connection and prepares the restaurants table.
func New(cfg *config.Config) (*gorm.DB, error) {
	database, err := connectToDatabaseWithRetry(cfg.EnvVars.DatabaseUrl)
	if err != nil {
		return nil, err
	}

	if err := database.AutoMigrate(&models.Restaurant{}); err != nil {
		return nil, fmt.Errorf("failed to migrate restaurants table: %w", err)
	}

	if cfg.EnvVars.SeedFile != "" {
		if err := seedIfEmpty(database, cfg.EnvVars.SeedFile); err != nil {
			return nil, err
		}
	}

	return database, nil
}

// connectToDatabaseWithRetry connects to the database and retries if necessary.
func connectToDatabaseWithRetry(databaseURL string) (*gorm.DB, error) {
	logger.Get().Info("connecting to database")
	var database *gorm.DB
	var err error

	start := time.Now()
	for {
		database, err = gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Since(start) > 1*time.Minute {
			return nil, fmt.Errorf("could not connect to database after 1 minute: %w", err)
		}
		logger.Get().Warn("could not connect to database, retrying...", zap.Error(err))
		time.Sleep(5 * time.Second)
	}

	return database, nil
}

// seedIfEmpty loads a JSON catalog file into the restaurants table when the
// table has no rows. Existing data is never touched.
func seedIfEmpty(database *gorm.DB, seedFile string) error {
	var count int64
	if err := database.Model(&models.Restaurant{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count restaurants: %w", err)
	}
	if count > 0 {
		return nil
	}

	data, err := os.ReadFile(seedFile)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var restaurants []models.Restaurant
	if err := json.Unmarshal(data, &restaurants); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	if len(restaurants) == 0 {
		return nil
	}

	if err := database.Create(&restaurants).Error; err != nil {
		return fmt.Errorf("failed to seed restaurants: %w", err)
	}

	logger.Get().Info("seeded restaurant catalog", zap.Int("count", len(restaurants)))
	return nil
}
