package usecase

import (
	"context"
	"log/slog"
	"strings"

	"symbol_backend/internal/feature/resolution/domain/entity"
)

// ReferenceWriter abstracts bulk writes to the reference catalog.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ReferenceWriter interface {
	// UpsertBatch inserts or updates catalog rows keyed by ticker.
	UpsertBatch(ctx context.Context, entries []entity.ReferenceEntry) error
}

// ReferenceUsecase provides read and bulk-load operations over the
// reference catalog.
type ReferenceUsecase struct {
	reader ReferenceRepository
	writer ReferenceWriter
}

// NewReferenceUsecase はReferenceUsecaseの新しいインスタンスを生成します。
func NewReferenceUsecase(reader ReferenceRepository, writer ReferenceWriter) *ReferenceUsecase {
	return &ReferenceUsecase{reader: reader, writer: writer}
}

// ListActiveEntries returns all active catalog entries.
func (u *ReferenceUsecase) ListActiveEntries(ctx context.Context) ([]entity.ReferenceEntry, error) {
	return u.reader.ListActive(ctx)
}

// ImportCatalog upserts a batch of catalog entries, dropping malformed rows
// (empty name or ticker) before they ever reach the matcher. It returns the
// number of rows actually imported.
func (u *ReferenceUsecase) ImportCatalog(ctx context.Context, entries []entity.ReferenceEntry) (int, error) {
	valid := make([]entity.ReferenceEntry, 0, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e.Name) == "" || strings.TrimSpace(e.Ticker) == "" {
			slog.Warn("skipping malformed reference entry", "name", e.Name, "ticker", e.Ticker)
			continue
		}
		valid = append(valid, e)
	}
	if len(valid) == 0 {
		return 0, nil
	}
	if err := u.writer.UpsertBatch(ctx, valid); err != nil {
		return 0, err
	}
	return len(valid), nil
}
