package database

import (
	"fmt"
	"log"
	"time"

	"github.com/teddylu0219/database-final-project-2025/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Initialize initializes the database connection
func Initialize(cfg *config.DatabaseConfig) error {
	return InitializeWithOptions(cfg, false)
}

// InitializeWithOptions initializes the database connection with options
func InitializeWithOptions(cfg *config.DatabaseConfig, disableQueryLog bool) error {
	var err error

	// Configure GORM with custom logger
	var gormLogger logger.Interface
	if disableQueryLog {
		gormLogger = logger.Default.LogMode(logger.Silent)
	} else {
		// Trace every statement into the in-memory query log
		gormLogger = &TracingGormLogger{
			Interface: logger.Default.LogMode(logger.Info),
		}
	}

	gormConfig := &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().Local()
		},
		QueryFields: true,
	}

	// Open database connection
	DB, err = gorm.Open(postgres.Open(cfg.GetDSN()), gormConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL database
	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connection established successfully")
	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}

// CheckConnection verifies the database connection
func CheckConnection(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	return nil
}

// Close closes the database connection
func Close() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
