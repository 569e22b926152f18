package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/gtnglobal/gtn-backend/config"
	"github.com/gtnglobal/gtn-backend/internal/resource"
)

// Connect opens the Postgres connection described by the config and fails
// hard when the store is unreachable; nothing in this service works
// without it.
func Connect(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	log.Println("✅ Connected to Postgres")
	return db
}

// Migrate creates or updates the five content tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&resource.Project{},
		&resource.Event{},
		&resource.News{},
		&resource.Blog{},
		&resource.JoinRequest{},
	)
}
