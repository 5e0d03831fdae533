package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"library-ledger/internal/handlers"
	"library-ledger/internal/library"
	"library-ledger/internal/profile"
	"library-ledger/internal/storage"
)

func main() {
	// Load environment variables from .env, fall back to the system env.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file - using system environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
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
	log.Printf("Database opened at %s", dbPath)

	// One bus viewer per ledger instance. A single server process has no
	// peers, but embedding setups can join more viewers on the same bus.
	bus := storage.NewBus()
	lib := library.New(adapter, library.WithViewer(bus.Join()))

	if os.Getenv("SEED_ON_EMPTY") != "false" {
		if lib.SeedIfEmpty(library.SampleBooks()) {
			log.Println("Seeded empty catalog with sample books")
		}
	}

	profiles := profile.New(adapter)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Mount("/", handlers.NewRouter(lib, profiles))

	log.Printf("Server listening on port %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("Cannot start server: %v", err)
	}
}
