package store

import (
	"context"

	"github.com/Baconcat1912/encryptify/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SettingsRepository is the process-wide key/value settings store. Every
// persisted setting of the application (the serialized history ledger, the
// last-used algorithm) lives under one fixed key each.
type SettingsRepository interface {
	// Get returns the value stored under key. A missing key yields
	// [ErrSettingNotFound].
	Get(ctx context.Context, key string) (string, error)

	// Put stores value under key, overwriting any previous value.
	Put(ctx context.Context, key string, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// HistoryRepository persists the history ledger as one serialized sequence
// of records under a fixed settings key.
type HistoryRepository interface {
	// Load returns all persisted entries in insertion order. Missing or
	// corrupt data yields an empty slice, never an error: a damaged
	// ledger must not make the application unusable.
	Load(ctx context.Context) []models.HistoryEntry

	// Save overwrites the persisted sequence with entries.
	Save(ctx context.Context, entries []models.HistoryEntry) error
}
