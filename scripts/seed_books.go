package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"library-ledger/internal/library"
	"library-ledger/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file - using system environment")
	}

	dbPath := os.Getenv("LIBRARY_DB_PATH")
	if dbPath == "" {
		dbPath = "library.db"
	}

	adapter, err := storage.OpenBolt(dbPath)
	if err != nil {
		log.Fatalf("Cannot open database %s: %v", dbPath, err)
	}
	defer adapter.Close()

	lib := library.New(adapter)

	log.Println("Seeding sample books...")
	if !lib.SeedIfEmpty(library.SampleBooks()) {
		log.Println("Catalog is not empty - nothing seeded")
		return
	}

	for _, b := range lib.Catalog.List() {
		log.Printf("Added: %s - %s (%d copies)", b.Title, b.Author, b.TotalCopies)
	}
	log.Println("Done")
}
