package service

import (
	"context"
	"path/filepath"

	"github.com/Baconcat1912/encryptify/internal/logger"
	"github.com/Baconcat1912/encryptify/models"
)

// FolderReport summarises a completed folder batch.
type FolderReport struct {
	// Folder is the processed root.
	Folder string

	// Outcomes holds one per-file result in processing order.
	Outcomes []FileOutcome

	// Summary is the ProcessedFolder ledger entry for the batch.
	Summary models.HistoryEntry
}

// Succeeded returns how many files processed cleanly.
func (r *FolderReport) Succeeded() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns how many files failed.
func (r *FolderReport) Failed() int {
	return len(r.Outcomes) - r.Succeeded()
}

// BatchService runs the two destructive batch shapes — one file, one folder
// — with the confirmation gate in front and the ledger behind. Every file
// mutation in the application goes through here.
type BatchService struct {
	processor FileProcessor
	walker    *WalkerService
	history   *HistoryService
	gate      *ConfirmationGate
	logger    *logger.Logger
}

func NewBatchService(processor FileProcessor, walker *WalkerService, history *HistoryService, gate *ConfirmationGate, log *logger.Logger) *BatchService {
	return &BatchService{
		processor: processor,
		walker:    walker,
		history:   history,
		gate:      gate,
		logger:    log,
	}
}

// ProcessFile runs the single-file batch: gate, transform, ledger append.
// A rejected confirmation aborts before the file is touched, returning
// [ErrConfirmationMismatch].
func (b *BatchService) ProcessFile(ctx context.Context, path string, algorithm string, creds models.Credentials, prompter Prompter) (models.HistoryEntry, error) {
	if !b.gate.Confirm(ctx, creds, prompter) {
		return models.HistoryEntry{}, ErrConfirmationMismatch
	}

	entry, err := b.processor.Process(ctx, path, algorithm, creds)
	if err != nil {
		return models.HistoryEntry{}, err
	}

	if err := b.history.Append(ctx, entry); err != nil {
		return models.HistoryEntry{}, err
	}
	return entry, nil
}

// ProcessFolder runs the folder batch: gate, sequential per-file transforms,
// per-file ledger appends for the successes, and one ProcessedFolder summary
// entry. Per-file failures are reported in the outcomes and never abort the
// batch; a rejected confirmation or an unreadable root aborts it before any
// file is touched.
func (b *BatchService) ProcessFolder(ctx context.Context, root string, algorithm string, creds models.Credentials, prompter Prompter) (*FolderReport, error) {
	if !b.gate.Confirm(ctx, creds, prompter) {
		return nil, ErrConfirmationMismatch
	}

	outcomes, err := b.walker.ProcessFolder(ctx, root, algorithm, creds)
	if err != nil {
		return nil, err
	}

	for _, outcome := range outcomes {
		if outcome.Err != nil {
			continue
		}
		if appendErr := b.history.Append(ctx, outcome.Entry); appendErr != nil {
			return nil, appendErr
		}
	}

	summary, err := b.history.AppendFolder(ctx, filepath.Base(root), algorithm)
	if err != nil {
		return nil, err
	}

	report := &FolderReport{Folder: root, Outcomes: outcomes, Summary: summary}
	b.logger.Info().
		Str("func", "BatchService.ProcessFolder").
		Str("folder", root).
		Int("succeeded", report.Succeeded()).
		Int("failed", report.Failed()).
		Msg("folder batch finished")

	return report, nil
}
