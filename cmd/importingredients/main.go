// Command importingredients bulk-loads the ingredient catalog from a
// JSON file. Entries whose names already exist are skipped, so the
// command is safe to re-run on catalog updates.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"recipehub/internal/config"
	"recipehub/internal/database"
	"recipehub/internal/models"
	"recipehub/internal/repository"
)

func main() {
	file := flag.String("file", "", "Path to the ingredients JSON file (defaults to INGREDIENTS_FILE)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	path := *file
	if path == "" {
		path = cfg.IngredientsFile
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", path, err)
	}

	var entries []models.Ingredient
	if err := json.Unmarshal(raw, &entries); err != nil {
		log.Fatalf("Failed to parse %s: %v", path, err)
	}
	if len(entries) == 0 {
		log.Fatalf("No ingredients found in %s", path)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	inserted, err := repository.NewIngredientRepository(db).Import(context.Background(), entries)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	log.Printf("Imported %d of %d ingredients (%d already present)", inserted, len(entries), int64(len(entries))-inserted)
}
