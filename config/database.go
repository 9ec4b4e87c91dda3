package config

import (
	"quickbite-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Open connects to the sqlite database at path and migrates the schema.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Rider{},
		&models.Store{},
		&models.FoodItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		return nil, err
	}

	return db, nil
}

// InitDB opens the application database and installs it as the global handle.
func InitDB(path string) error {
	db, err := Open(path)
	if err != nil {
		return err
	}
	DB = db
	return nil
}
