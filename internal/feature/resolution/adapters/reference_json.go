package adapters

import (
	"encoding/json"
	"fmt"
	"os"

	"symbol_backend/internal/feature/resolution/domain/entity"
)

// referenceRecord is the wire shape of one catalog row in a tickers JSON file.
type referenceRecord struct {
	Name   string `json:"name"`
	Ticker string `json:"ticker"`
}

// LoadReferenceFile はtickers JSONファイルから参照カタログを読み込みます。
// ファイル内の並び順がsort_keyとして保持されます。空のnameまたはtickerを持つ
// 行のフィルタリングはusecase側（ImportCatalog）で行われます。
func LoadReferenceFile(path string) ([]entity.ReferenceEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reference file: %w", err)
	}

	var records []referenceRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse reference file %s: %w", path, err)
	}

	entries := make([]entity.ReferenceEntry, 0, len(records))
	for i, rec := range records {
		entries = append(entries, entity.ReferenceEntry{
			Name:     rec.Name,
			Ticker:   rec.Ticker,
			IsActive: true,
			SortKey:  i,
		})
	}
	return entries, nil
}
