// store/kv.go
package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"game-showcase-system/metrics"
)

// Collection keys. Each key holds one whole JSON document: there is no
// row-level storage; every mutation is load → modify → save.
const (
	KeyGames         = "games"
	KeyStudios       = "studios"
	KeyUsers         = "users"
	KeyNotifications = "notifications"
	KeyConfig        = "config"
)

// LegacyUserKey is where pre-migration credential records live.
func LegacyUserKey(username string) string {
	return "user:" + username
}

// Entry is one stored collection. The version column makes saves a
// compare-and-swap so two concurrent editors cannot silently clobber each
// other.
type Entry struct {
	Key     string         `gorm:"primaryKey"`
	Value   datatypes.JSON `gorm:"not null"`
	Version int64          `gorm:"not null;default:0"`
}

func (Entry) TableName() string { return "kv_entries" }

// ErrVersionConflict means another writer saved the key between our load
// and our save.
var ErrVersionConflict = errors.New("store: version conflict")

type KV struct {
	DB *gorm.DB
}

func NewKV(db *gorm.DB) (*KV, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate kv_entries: %w", err)
	}
	return &KV{DB: db}, nil
}

// Get reads the document under key without seeding anything. The second
// return is the version to pass to SaveCollection; ok is false when the
// key is absent.
func Get[T any](kv *KV, key string) (value T, version int64, ok bool, err error) {
	var entry Entry
	res := kv.DB.First(&entry, "key = ?", key)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return value, 0, false, nil
	}
	if res.Error != nil {
		return value, 0, false, fmt.Errorf("failed to load %q: %w", key, res.Error)
	}
	if err := json.Unmarshal(entry.Value, &value); err != nil {
		return value, 0, false, fmt.Errorf("failed to decode %q: %w", key, err)
	}
	return value, entry.Version, true, nil
}

// LoadCollection fetches the document under key, seeding it with defaults
// when absent. Seeding is written through, so the first read of a fresh
// collection performs a write and every later read returns the same data.
func LoadCollection[T any](kv *KV, key string, defaults T) (T, int64, error) {
	value, version, ok, err := Get[T](kv, key)
	if err != nil {
		return value, 0, err
	}
	if ok {
		return value, version, nil
	}

	raw, err := json.Marshal(defaults)
	if err != nil {
		return defaults, 0, fmt.Errorf("failed to encode defaults for %q: %w", key, err)
	}
	if err := kv.DB.Create(&Entry{Key: key, Value: datatypes.JSON(raw)}).Error; err != nil {
		// Lost the seeding race to a concurrent first read; take theirs.
		value, version, ok, err2 := Get[T](kv, key)
		if err2 == nil && ok {
			return value, version, nil
		}
		return defaults, 0, fmt.Errorf("failed to seed %q: %w", key, err)
	}
	return defaults, 0, nil
}

// SaveCollection overwrites the document under key wholesale, but only if
// the stored version still matches: otherwise ErrVersionConflict. Version
// 0 with no stored row creates the row.
func SaveCollection[T any](kv *KV, key string, value T, version int64) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}

	res := kv.DB.Model(&Entry{}).
		Where("key = ? AND version = ?", key, version).
		Updates(map[string]any{"value": datatypes.JSON(raw), "version": version + 1})
	if res.Error != nil {
		return fmt.Errorf("failed to save %q: %w", key, res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}

	if version == 0 {
		if err := kv.DB.Create(&Entry{Key: key, Value: datatypes.JSON(raw), Version: 1}).Error; err == nil {
			return nil
		}
	}
	return fmt.Errorf("save of %q lost the race: %w", key, ErrVersionConflict)
}

const updateAttempts = 3

// Update is the read-modify-write primitive behind every mutating
// endpoint: load (seeding defaults), apply mutate, save with
// compare-and-swap. A conflicting concurrent save triggers a reload and a
// fresh mutate, a bounded number of times. Errors from mutate abort the
// cycle unchanged; nothing is written on failure.
func Update[T any](kv *KV, key string, defaults T, mutate func(*T) error) (T, error) {
	var zero T
	for attempt := 0; attempt < updateAttempts; attempt++ {
		value, version, err := LoadCollection(kv, key, defaults)
		if err != nil {
			return zero, err
		}
		if err := mutate(&value); err != nil {
			return zero, err
		}
		err = SaveCollection(kv, key, value, version)
		if err == nil {
			return value, nil
		}
		if !errors.Is(err, ErrVersionConflict) {
			return zero, err
		}
		metrics.StoreConflicts.Inc()
	}
	return zero, fmt.Errorf("update of %q exhausted retries: %w", key, ErrVersionConflict)
}
