// Package entity defines the domain models for the resolution feature.
package entity

import "time"

// ReferenceEntry is one row of the reference catalog: a known security name
// paired with the canonical market-data ticker downstream consumers use.
// The catalog is the match universe for resolution and type-ahead search.
type ReferenceEntry struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"size:255;not null"`
	Ticker   string `gorm:"size:32;not null;uniqueIndex"`
	IsActive bool   `gorm:"not null;default:true"`
	SortKey  int    `gorm:"not null;default:0"`

	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName overrides the default table name.
func (ReferenceEntry) TableName() string {
	return "reference_entries"
}
