// Package db wires up the GORM database connection for the service.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "symbol_backend/internal/feature/auth/domain/entity"
	"symbol_backend/internal/feature/resolution/adapters"
	"symbol_backend/internal/feature/resolution/domain/entity"
)

// OpenDB opens the configured database. With DB_HOST set it connects to
// Postgres, retrying for up to 60 seconds; otherwise it falls back to a
// local SQLite file (DB_PATH, default ./symbol_backend.db).
func OpenDB() *gorm.DB {
	cfg := &gorm.Config{TranslateError: true}

	var (
		db  *gorm.DB
		err error
	)

	host := os.Getenv("DB_HOST")
	if host == "" {
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "./symbol_backend.db"
		}
		db, err = gorm.Open(sqlite.Open(path), cfg)
		if err != nil {
			log.Fatalf("failed to open sqlite database: %v", err)
		}
		log.Println("USING_SQLITE:", path)
	} else {
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			host,
			envOr("DB_PORT", "5432"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			envOr("DB_SSLMODE", "disable"),
		)

		deadline := time.Now().Add(60 * time.Second)
		for {
			db, err = gorm.Open(postgres.Open(dsn), cfg)
			if err == nil {
				break
			}
			if time.Now().After(deadline) {
				log.Fatalf("DB connect failed after 60s: %v", err)
			}
			log.Printf("DB connect failed, retrying...: %v", err)
			time.Sleep(3 * time.Second)
		}
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&authentity.User{},
			&entity.ReferenceEntry{},
			&adapters.RegistryModel{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
