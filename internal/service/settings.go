package service

import (
	"context"
	"errors"

	"github.com/Baconcat1912/encryptify/internal/logger"
	"github.com/Baconcat1912/encryptify/internal/store"
)

// SettingsService exposes the small set of persisted user preferences.
type SettingsService struct {
	settings store.SettingsRepository
	logger   *logger.Logger
}

func NewSettingsService(settings store.SettingsRepository, log *logger.Logger) *SettingsService {
	return &SettingsService{
		settings: settings,
		logger:   log,
	}
}

// LastAlgorithm returns the persisted last-used algorithm, or fallback when
// none has been stored yet (or the store is unreadable).
func (s *SettingsService) LastAlgorithm(ctx context.Context, fallback string) string {
	value, err := s.settings.Get(ctx, store.KeyAlgorithm)
	if err != nil {
		if !errors.Is(err, store.ErrSettingNotFound) {
			s.logger.Warn().
				Str("func", "SettingsService.LastAlgorithm").
				Err(err).
				Msg("failed to read last-used algorithm")
		}
		return fallback
	}
	return value
}

// RememberAlgorithm persists algorithm as the last-used one.
func (s *SettingsService) RememberAlgorithm(ctx context.Context, algorithm string) error {
	return s.settings.Put(ctx, store.KeyAlgorithm, algorithm)
}
