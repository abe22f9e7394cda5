// Package adapters はresolutionフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"symbol_backend/internal/feature/resolution/domain/entity"
	"symbol_backend/internal/feature/resolution/usecase"
)

// registryGorm はRegistryRepositoryインターフェースのGORM実装です。
type registryGorm struct {
	db *gorm.DB
}

var _ usecase.RegistryRepository = (*registryGorm)(nil)

// NewRegistryRepository は指定されたDB接続でregistryGormリポジトリの新しいインスタンスを生成します。
func NewRegistryRepository(db *gorm.DB) *registryGorm {
	return &registryGorm{db: db}
}

// RegistryModel is the persistence shape of a confirmed symbol mapping.
type RegistryModel struct {
	ID         uint      `gorm:"primaryKey"`
	RawSymbol  string    `gorm:"size:64;not null;uniqueIndex"`
	Ticker     string    `gorm:"size:32;not null"`
	Source     string    `gorm:"size:16;not null"`
	Confidence float64   `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName overrides the default table name.
func (RegistryModel) TableName() string {
	return "symbol_mappings"
}

func toModel(e entity.RegistryEntry) RegistryModel {
	return RegistryModel{
		RawSymbol:  e.RawSymbol,
		Ticker:     e.Ticker,
		Source:     string(e.Source),
		Confidence: e.Confidence,
		UpdatedAt:  e.UpdatedAt,
	}
}

func toEntity(m RegistryModel) entity.RegistryEntry {
	return entity.RegistryEntry{
		RawSymbol:  m.RawSymbol,
		Ticker:     m.Ticker,
		Source:     entity.Source(m.Source),
		Confidence: m.Confidence,
		UpdatedAt:  m.UpdatedAt,
	}
}

// Get は生シンボルのライブエントリを取得します。
// エントリが存在しない場合、usecase.ErrMappingNotFoundを返します。
func (r *registryGorm) Get(ctx context.Context, rawSymbol string) (*entity.RegistryEntry, error) {
	var m RegistryModel
	if err := r.db.WithContext(ctx).
		Where("raw_symbol = ?", rawSymbol).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrMappingNotFound
		}
		return nil, err
	}
	e := toEntity(m)
	return &e, nil
}

// Put はエントリをupsertします。同じ生シンボルの既存行は上書きされます（last write wins）。
func (r *registryGorm) Put(ctx context.Context, e entity.RegistryEntry) error {
	m := toModel(e)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "raw_symbol"}},
		DoUpdates: clause.AssignmentColumns([]string{"ticker", "source", "confidence", "updated_at"}),
	}).Create(&m).Error
}

// ListAll は全マッピングを生シンボルの昇順で返します。
func (r *registryGorm) ListAll(ctx context.Context) ([]entity.RegistryEntry, error) {
	var rows []RegistryModel
	if err := r.db.WithContext(ctx).
		Order("raw_symbol ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.RegistryEntry, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}
