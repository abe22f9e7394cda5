package adapters

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"symbol_backend/internal/feature/resolution/domain/entity"
	"symbol_backend/internal/feature/resolution/usecase"
)

// referenceGorm は参照カタログのGORM実装です。
type referenceGorm struct {
	db *gorm.DB
}

var (
	_ usecase.ReferenceRepository = (*referenceGorm)(nil)
	_ usecase.ReferenceWriter     = (*referenceGorm)(nil)
)

// NewReferenceRepository は指定されたDB接続でreferenceGormリポジトリの新しいインスタンスを生成します。
func NewReferenceRepository(db *gorm.DB) *referenceGorm {
	return &referenceGorm{db: db}
}

// ListActive はsort_key順にすべてのアクティブな参照エントリを返します。
func (r *referenceGorm) ListActive(ctx context.Context) ([]entity.ReferenceEntry, error) {
	var entries []entity.ReferenceEntry
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_key ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// UpsertBatch はカタログ行をtickerをキーとして一括でupsertします。
func (r *referenceGorm) UpsertBatch(ctx context.Context, entries []entity.ReferenceEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "ticker"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "is_active", "sort_key", "updated_at"}),
	}).Create(&entries).Error
}
