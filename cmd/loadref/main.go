package main

import (
	"context"
	"flag"
	"log"
	"time"

	"symbol_backend/internal/feature/resolution/adapters"
	"symbol_backend/internal/feature/resolution/usecase"
	infradb "symbol_backend/internal/platform/db"
)

func main() {
	path := flag.String("file", "tickers.json", "path to the tickers JSON file")
	flag.Parse()

	db := infradb.OpenDB()
	refRepo := adapters.NewReferenceRepository(db)
	uc := usecase.NewReferenceUsecase(refRepo, refRepo)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	entries, err := adapters.LoadReferenceFile(*path)
	if err != nil {
		log.Fatal("failed to load reference file:", err)
	}

	n, err := uc.ImportCatalog(ctx, entries)
	if err != nil {
		log.Fatal("failed to import catalog:", err)
	}
	log.Printf("imported %d of %d reference entries from %s", n, len(entries), *path)
}
