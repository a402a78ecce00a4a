package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Baconcat1912/encryptify/internal/logger"
	"github.com/Baconcat1912/encryptify/models"
)

// historyRepository persists the ledger as a JSON array of entries under the
// [KeyHistory] settings key. The whole sequence is rewritten on every save;
// the ledger is small (one record per completed file action) and the
// simplicity buys atomic replacement for free.
type historyRepository struct {
	settings SettingsRepository
	logger   *logger.Logger
}

func NewHistoryRepository(settings SettingsRepository, logger *logger.Logger) HistoryRepository {
	return &historyRepository{
		settings: settings,
		logger:   logger,
	}
}

// Load implements [HistoryRepository]. A missing key means a fresh install,
// a corrupt value means a damaged settings database; both yield an empty
// ledger rather than an error.
func (h *historyRepository) Load(ctx context.Context) []models.HistoryEntry {
	raw, err := h.settings.Get(ctx, KeyHistory)
	if err != nil {
		if !errors.Is(err, ErrSettingNotFound) {
			h.logger.Err(err).
				Str("func", "historyRepository.Load").
				Msg("failed to read persisted history, starting empty")
		}
		return nil
	}

	var entries []models.HistoryEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		h.logger.Err(err).
			Str("func", "historyRepository.Load").
			Msg("persisted history is corrupt, starting empty")
		return nil
	}

	return entries
}

// Save implements [HistoryRepository].
func (h *historyRepository) Save(ctx context.Context, entries []models.HistoryEntry) error {
	if entries == nil {
		entries = []models.HistoryEntry{}
	}

	payload, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	if err := h.settings.Put(ctx, KeyHistory, string(payload)); err != nil {
		return fmt.Errorf("persist history: %w", err)
	}

	return nil
}
