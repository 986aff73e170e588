package database

import (
	"fmt"

	"github.com/gonetfly/gonetfly-backend/internal/config"
	"github.com/gonetfly/gonetfly-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitDB(cfg config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
	)

	// TranslateError maps unique violations to gorm.ErrDuplicatedKey,
	// which the stores rely on for duplicate emails and booking
	// reference collisions.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	// Auto migrate the schema
	err = db.AutoMigrate(
		&models.User{},
		&models.Booking{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
