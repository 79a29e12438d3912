// Command migrate applies the GORM schema to the configured database.
// In non-production environments the server does this on startup; this
// command exists for production deploys where startup migration is off.
package main

import (
	"log"

	"recipehub/internal/config"
	"recipehub/internal/database"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(database.PersistentModels()...); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Schema migration completed")
}
