package database

import (
	"errors"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// KVEntry adalah satu pasangan key/value persisten. Nilai disimpan sebagai
// JSON string, meniru localStorage di aplikasi mobile.
type KVEntry struct {
	Key   string `gorm:"primaryKey;size:64" json:"key"`
	Value string `gorm:"type:text" json:"value"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}

// Open opens (or creates) the SQLite database backing the key-value store.
// Use ":memory:" in tests.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		return nil, err
	}
	return db, nil
}

// KVStore is the persistent string-keyed store the session mirrors into.
type KVStore struct {
	db *gorm.DB
}

func NewKVStore(db *gorm.DB) *KVStore {
	return &KVStore{db: db}
}

// Get returns the stored value and whether the key exists. A missing key is
// not an error; it means "default" to the caller.
func (s *KVStore) Get(key string) (string, bool, error) {
	var entry KVEntry
	err := s.db.First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

// Set writes the value for a key, replacing any previous value.
func (s *KVStore) Set(key, value string) error {
	return s.db.Save(&KVEntry{Key: key, Value: value}).Error
}

// Delete removes the key entirely. Deleting a missing key is a no-op.
func (s *KVStore) Delete(key string) error {
	return s.db.Delete(&KVEntry{}, "key = ?", key).Error
}

// Clear wipes the whole store. Logout clears everything, not just the
// session keys, matching the original localStorage.clear() behavior.
func (s *KVStore) Clear() error {
	return s.db.Where("1 = 1").Delete(&KVEntry{}).Error
}
