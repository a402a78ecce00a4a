package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Baconcat1912/encryptify/internal/logger"
)

// Well-known settings keys.
const (
	// KeyHistory holds the serialized history ledger.
	KeyHistory = "history"

	// KeyAlgorithm holds the last-used cipher algorithm identifier.
	KeyAlgorithm = "algorithm"
)

type settingsRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{
		db:     db,
		logger: logger,
	}
}

func (s *settingsRepository) Get(ctx context.Context, key string) (string, error) {
	query, args, err := buildGetSettingQuery(key)
	if err != nil {
		s.logger.Err(err).
			Str("func", "settingsRepository.Get").
			Str("key", key).
			Msg("failed to build select query")
		return "", fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var value string
	row := s.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrSettingNotFound
		}
		s.logger.Err(err).
			Str("func", "settingsRepository.Get").
			Str("key", key).
			Msg("failed to scan settings row")
		return "", fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return value, nil
}

func (s *settingsRepository) Put(ctx context.Context, key string, value string) error {
	query, args, err := buildPutSettingQuery(key, value)
	if err != nil {
		s.logger.Err(err).
			Str("func", "settingsRepository.Put").
			Str("key", key).
			Msg("failed to build upsert query")
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "settingsRepository.Put").
			Str("key", key).
			Msg("failed to execute upsert")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}

func (s *settingsRepository) Delete(ctx context.Context, key string) error {
	query, args, err := buildDeleteSettingQuery(key)
	if err != nil {
		s.logger.Err(err).
			Str("func", "settingsRepository.Delete").
			Str("key", key).
			Msg("failed to build delete query")
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "settingsRepository.Delete").
			Str("key", key).
			Msg("failed to execute delete")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}
