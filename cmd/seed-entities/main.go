// Command seed-entities loads a JSON dataset of players and clubs into the
// embedded local search index.
package main

import (
	"flag"
	"log"

	"github.com/footydle/search-backend/internal/database"
)

func main() {
	dbPath := flag.String("db", "./entity_index.db", "path to the sqlite index")
	dataPath := flag.String("data", "./data/entities.json", "path to the JSON seed dataset")
	flag.Parse()

	if err := database.Initialize(*dbPath); err != nil {
		log.Fatalf("Failed to initialize local index: %v", err)
	}

	count, err := database.SeedFromFile(database.GetDB(), *dataPath)
	if err != nil {
		log.Fatalf("Failed to seed local index: %v", err)
	}

	log.Printf("Seeded %d entities from %s into %s", count, *dataPath, *dbPath)
}
