package models

import "time"

// StoreEntry is a key value pair persisted on postgres.
// ExpiresAt is nil for entries without expiration.
type StoreEntry struct {
	EntryKey   string     `gorm:"primaryKey;autoIncrement:false"`
	EntryValue string     `gorm:"type:text;not null"`
	ExpiresAt  *time.Time `gorm:"index"`
}

// TableName overrides the table used by gorm.
func (StoreEntry) TableName() string {
	return "store_entries"
}
