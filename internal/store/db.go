// internal/store/db.go
package store

import (
	"fmt"
	"log"

	"netshots-service/internal/config"
	"netshots-service/pkg/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

func InitDB(cfg *config.Config) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPass, cfg.DBName, cfg.DBSSLMode,
	)

	var err error
	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("❌ Failed to connect to DB: %v", err)
	}

	// Auto-migrate (safe in dev; use migrations in prod)
	if err := Migrate(db); err != nil {
		log.Fatalf("❌ Failed to migrate: %v", err)
	}

	log.Println("✅ NetShots DB connected & migrated")
}

// Migrate applies the schema to any gorm connection. Split out so tests can
// run it against a throwaway sqlite database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Profile{}, &models.Match{}, &models.Follow{})
}

func GetDB() *gorm.DB {
	return db
}
