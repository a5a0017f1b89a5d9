package main

import (
	"log"

	"github.com/leftovers-tracker/backend/config"
	"github.com/leftovers-tracker/backend/internal/database"
)

// Runs the schema migration against the configured store and exits.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if _, err := database.New(cfg); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migration complete")
}
