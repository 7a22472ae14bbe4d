package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/wedsimplify/wedsimplify-backend/internal/config"
	"github.com/wedsimplify/wedsimplify-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect opens the pool. Repositories rely on TranslateError to see
// unique violations as gorm.ErrDuplicatedKey.
func Connect(cfg *config.Config) error {
	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected")
	return nil
}

// Migrate creates or updates every table the service owns.
func Migrate() error {
	return DB.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Couple{},
		&models.Individual{},
		&models.Vendor{},
		&models.VendorPackage{},
		&models.PortfolioItem{},
		&models.VendorAvailability{},
		&models.Inquiry{},
		&models.BudgetItem{},
		&models.TimelineItem{},
		&models.SavedVendor{},
		&models.Notification{},
		&models.UserSettings{},
		&models.SystemLog{},
	)
}

// Health adapts the pool to the health check.
type Health struct{}

func (Health) Ping(ctx context.Context) error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
