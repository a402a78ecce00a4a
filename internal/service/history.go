// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Baconcat1912/encryptify/internal/logger"
	"github.com/Baconcat1912/encryptify/internal/store"
	"github.com/Baconcat1912/encryptify/internal/utils"
	"github.com/Baconcat1912/encryptify/models"
)

// HistoryService owns the history ledger: an append-only, user-clearable
// record of completed file actions. The persisted sequence is loaded once at
// construction and rewritten on every mutation.
//
// The service is owned by a single control thread (the interactive loop);
// mutations only happen after a file operation fully completes, so no
// partial updates are ever observable and no locking is needed.
type HistoryService struct {
	repo      store.HistoryRepository
	processor FileProcessor
	walker    *WalkerService
	uuidGen   *utils.UUIDGenerator

	entries []models.HistoryEntry
	logger  *logger.Logger
}

func NewHistoryService(repo store.HistoryRepository, processor FileProcessor, walker *WalkerService, log *logger.Logger) *HistoryService {
	return &HistoryService{
		repo:      repo,
		processor: processor,
		walker:    walker,
		uuidGen:   utils.NewUUIDGenerator(),
		entries:   repo.Load(context.Background()),
		logger:    log,
	}
}

// List returns the ledger in insertion order. The returned slice is a copy;
// mutating it does not affect the ledger.
func (h *HistoryService) List() []models.HistoryEntry {
	out := make([]models.HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Append adds entry to the ledger and persists the whole sequence.
func (h *HistoryService) Append(ctx context.Context, entry models.HistoryEntry) error {
	h.entries = append(h.entries, entry)
	if err := h.repo.Save(ctx, h.entries); err != nil {
		return fmt.Errorf("append history entry: %w", err)
	}
	return nil
}

// AppendFolder builds and appends the summary entry for a completed folder
// batch.
func (h *HistoryService) AppendFolder(ctx context.Context, folder string, algorithm string) (models.HistoryEntry, error) {
	entry := models.HistoryEntry{
		ID:        h.uuidGen.Generate(),
		FileName:  filepath.Base(folder),
		Action:    models.ActionProcessedFolder,
		Algorithm: algorithm,
	}
	if err := h.Append(ctx, entry); err != nil {
		return models.HistoryEntry{}, err
	}
	return entry, nil
}

// Clear removes all entries and persists the empty sequence.
func (h *HistoryService) Clear(ctx context.Context) error {
	h.entries = nil
	if err := h.repo.Save(ctx, nil); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

// Reverse replays entry in the opposite direction: the file the entry refers
// to is re-derived from the recorded name and action under root, fresh
// credentials are collected through the prompter, and the processor runs
// again — classification of the re-derived path yields exactly the inverted
// mode. The original entry stays in place; the reversal appends its own
// entry, which is returned.
//
// Reversing an [models.ActionProcessedFolder] entry re-processes the folder,
// toggling each file back.
func (h *HistoryService) Reverse(ctx context.Context, entry models.HistoryEntry, root string, prompter Prompter) (models.HistoryEntry, error) {
	creds, ok := prompter.PromptCredentials(ctx)
	if !ok {
		return models.HistoryEntry{}, ErrPromptCancelled
	}

	if entry.Action == models.ActionProcessedFolder {
		return h.reverseFolder(ctx, entry, root, creds)
	}

	target := filepath.Join(root, entry.FileName)
	if entry.Action == models.ActionEncrypted {
		target = EncryptedPath(target)
	}
	if _, err := os.Stat(target); err != nil {
		return models.HistoryEntry{}, fmt.Errorf("%w: %s", ErrReverseTargetNotFound, target)
	}

	reversal, err := h.processor.Process(ctx, target, entry.Algorithm, creds)
	if err != nil {
		return models.HistoryEntry{}, err
	}

	if err := h.Append(ctx, reversal); err != nil {
		return models.HistoryEntry{}, err
	}
	return reversal, nil
}

func (h *HistoryService) reverseFolder(ctx context.Context, entry models.HistoryEntry, root string, creds models.Credentials) (models.HistoryEntry, error) {
	folder := filepath.Join(root, entry.FileName)
	if _, err := os.Stat(folder); err != nil {
		return models.HistoryEntry{}, fmt.Errorf("%w: %s", ErrReverseTargetNotFound, folder)
	}

	outcomes, err := h.walker.ProcessFolder(ctx, folder, entry.Algorithm, creds)
	if err != nil {
		return models.HistoryEntry{}, err
	}

	for _, outcome := range outcomes {
		if outcome.Err != nil {
			continue
		}
		if appendErr := h.Append(ctx, outcome.Entry); appendErr != nil {
			return models.HistoryEntry{}, appendErr
		}
	}

	return h.AppendFolder(ctx, folder, entry.Algorithm)
}
