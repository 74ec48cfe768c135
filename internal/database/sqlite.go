package database

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/footydle/search-backend/internal/models"
)

var DB *gorm.DB

func Initialize(dbPath string) error {
	var err error
	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return err
	}

	log.Println("Local index connected successfully")

	// Auto-migrate the schema
	err = DB.AutoMigrate(&models.Entity{})
	if err != nil {
		return err
	}

	log.Println("Local index migration completed")
	return nil
}

func GetDB() *gorm.DB {
	return DB
}
