package database

import (
	"fmt"
	"log"

	"github.com/dcamacho/barkeep-api/internal/config"
	"github.com/dcamacho/barkeep-api/internal/domain/entity"
	"github.com/dcamacho/barkeep-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.Profile{},
		&entity.CompanySettings{},
		&entity.Product{},
		&entity.Sale{},
		&entity.SaleItem{},
		&entity.StockEntry{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the company settings row and, when configured
// via environment variables, an admin profile.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	var settings entity.CompanySettings
	if err := db.First(&settings).Error; err != nil {
		settings = entity.CompanySettings{
			CompanyName: "Mi Bar",
			MaxTables:   entity.DefaultMaxTables,
		}
		if err := db.Create(&settings).Error; err != nil {
			log.Printf("Warning: failed to create default company settings: %v", err)
		}
	}

	adminUserName := viper.GetString("ADMIN_USERNAME")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminUserName != "" && adminPassword != "" {
		var existingAdmin entity.Profile
		if err := db.Where("user_name = ?", adminUserName).First(&existingAdmin).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				if adminName == "" {
					adminName = "Administrador"
				}
				admin := entity.Profile{
					ID:       uuid.New(),
					FullName: adminName,
					UserName: adminUserName,
					Password: string(hashedPassword),
					Role:     enum.RoleAdmin,
				}
				if err := db.Create(&admin).Error; err != nil {
					log.Printf("Warning: failed to create admin profile: %v", err)
				} else {
					log.Printf("Admin profile created: %s", adminUserName)
				}
			}
		} else {
			log.Printf("Admin profile already exists: %s", adminUserName)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
