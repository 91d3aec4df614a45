// Package store provides the durable local key/value storage backing the
// token store and the persisted session snapshot. Values live in a
// single-file SQLite database under the CLI data directory.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("key not found")

// Fixed keys used across the application.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyAuthSnapshot = "auth_snapshot"
)

// dbFileName is the SQLite file created inside the data directory.
const dbFileName = "cv-builder.db"

// KV is the minimal key/value contract the stores are built on.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// entry is the GORM entity for one stored key/value pair.
type entry struct {
	Key       string    `gorm:"primarykey;size:64"`
	Value     string    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName keeps the table name explicit and stable.
func (entry) TableName() string { return "kv_entries" }

// Store is the SQLite-backed KV implementation.
type Store struct {
	db *gorm.DB
}

// Open creates the data directory if needed, opens the SQLite database
// and migrates the key/value table.
func Open(dataDir string) (*Store, error) {
	if dataDir == "" {
		return nil, errors.New("data directory is empty")
	}
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}

	path := filepath.Join(dataDir, dbFileName)
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open local store %s: %w", path, err)
	}

	if err := db.AutoMigrate(&entry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate local store: %w", err)
	}

	return &Store{db: db}, nil
}

// Get returns the value stored under key, or ErrNotFound.
func (s *Store) Get(key string) (string, error) {
	var e entry
	if err := s.db.First(&e, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return e.Value, nil
}

// Set stores value under key, overwriting any previous value.
func (s *Store) Set(key, value string) error {
	e := entry{Key: key, Value: value, UpdatedAt: time.Now()}
	if err := s.db.Save(&e).Error; err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

// Delete removes key if present. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	if err := s.db.Delete(&entry{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to access underlying database: %w", err)
	}
	return sqlDB.Close()
}
