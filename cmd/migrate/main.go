package main

import (
	"log"

	"roadmap-be/internal/config"
	"roadmap-be/internal/migration"
	"roadmap-be/pkg/database"

	"gorm.io/gorm/logger"
)

func main() {
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDB(cfg.Database.Driver, cfg.Database.Connection, logger.Warn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	applied, err := migration.Run(db)
	if err != nil {
		log.Fatalf("Error: migration failed: %v", err)
	}

	if len(applied) == 0 {
		log.Println("No migrations to apply.")
		return
	}
	for _, id := range applied {
		log.Printf("Applied %s", id)
	}
	log.Printf("Success: %d migration(s) applied.", len(applied))
}
