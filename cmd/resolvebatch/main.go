package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"symbol_backend/internal/app/di"
	"symbol_backend/internal/feature/resolution/adapters"
	"symbol_backend/internal/feature/resolution/domain/entity"
	"symbol_backend/internal/feature/resolution/usecase"
	infradb "symbol_backend/internal/platform/db"
)

func main() {
	path := flag.String("file", "", "path to a CSV whose first column holds raw symbols")
	workers := flag.Int("workers", 4, "number of concurrent resolution workers")
	flag.Parse()

	if *path == "" {
		log.Fatal("usage: resolvebatch -file symbols.csv [-workers n]")
	}

	rawSymbols, err := readSymbols(*path)
	if err != nil {
		log.Fatal(err)
	}
	if len(rawSymbols) == 0 {
		log.Fatal("no symbols found in", *path)
	}

	db := infradb.OpenDB()
	registryRepo := di.NewRegistryRepository(nil, db)
	refRepo := adapters.NewReferenceRepository(db)
	uc := usecase.NewResolverUsecase(registryRepo, refRepo)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	results, err := uc.ResolveAll(ctx, rawSymbols, *workers)
	if err != nil {
		log.Fatal(err)
	}

	counts := map[entity.State]int{}
	for _, raw := range rawSymbols {
		res := results[raw]
		counts[res.State]++
		switch res.State {
		case entity.StateRegistryHit, entity.StateAutoMatched:
			fmt.Printf("%s\t%s\t%s\t%.2f\n", raw, res.State, res.Ticker, res.Confidence)
		case entity.StateNeedsConfirmation:
			fmt.Printf("%s\t%s\t%d candidates\n", raw, res.State, len(res.Candidates))
		default:
			fmt.Printf("%s\t%s\n", raw, res.State)
		}
	}

	log.Printf("resolved %d symbols: %d registry hits, %d auto-matched, %d need confirmation, %d unresolved",
		len(rawSymbols),
		counts[entity.StateRegistryHit],
		counts[entity.StateAutoMatched],
		counts[entity.StateNeedsConfirmation],
		counts[entity.StateUnresolved],
	)
}

// readSymbols reads the first column of a CSV file, skipping blank cells and
// a header row when the first cell does not look like a symbol.
func readSymbols(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	var out []string
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell := strings.TrimSpace(row[0])
		if cell == "" {
			continue
		}
		// よくあるヘッダー行をスキップ
		if i == 0 && strings.EqualFold(cell, "symbol") {
			continue
		}
		out = append(out, cell)
	}
	return out, nil
}
