package kvstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"lolscope/pkg/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostgresStore persists the entries on the store_entries table.
type PostgresStore struct {
	db  *gorm.DB
	now func() time.Time
}

// NewPostgresStore creates a store over a gorm connection.
func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db, now: time.Now}
}

// Get returns the value of a key, removing it when expired.
func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry models.StoreEntry

	err := s.db.WithContext(ctx).Where("entry_key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if entry.ExpiresAt != nil && s.now().After(*entry.ExpiresAt) {
		if err := s.Delete(ctx, key); err != nil {
			return nil, err
		}
		return nil, ErrNotFound
	}

	return []byte(entry.EntryValue), nil
}

// Set upserts the value.
func (s *PostgresStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	entry := models.StoreEntry{
		EntryKey:   key,
		EntryValue: string(value),
	}
	if ttl > 0 {
		expiresAt := s.now().Add(ttl)
		entry.ExpiresAt = &expiresAt
	}

	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"entry_value", "expires_at"}),
	}).Create(&entry).Error
}

// Delete removes a key.
func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where("entry_key = ?", key).Delete(&models.StoreEntry{}).Error
}

// Keys lists the live keys starting with prefix.
func (s *PostgresStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string

	err := s.db.WithContext(ctx).
		Model(&models.StoreEntry{}).
		Where("entry_key LIKE ?", escapeLike(prefix)+"%").
		Where("expires_at IS NULL OR expires_at > ?", s.now()).
		Pluck("entry_key", &keys).Error
	if err != nil {
		return nil, err
	}

	return keys, nil
}

// Close closes the underlying connection pool.
func (s *PostgresStore) Close() error {
	sqlDb, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDb.Close()
}

// escapeLike escapes the LIKE wildcards of a literal prefix.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
