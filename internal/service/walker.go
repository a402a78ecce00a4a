package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Baconcat1912/encryptify/internal/logger"
	"github.com/Baconcat1912/encryptify/models"
)

// FileOutcome is the per-file result of a folder batch.
type FileOutcome struct {
	// Path is the file the processor was fed.
	Path string

	// Entry is the resulting history entry. Only valid when Err is nil.
	Entry models.HistoryEntry

	// Err is the classified per-file failure, nil on success.
	Err error
}

// WalkerService enumerates files under a folder and feeds each to the
// single-file processor.
type WalkerService struct {
	processor FileProcessor
	logger    *logger.Logger
}

func NewWalkerService(processor FileProcessor, log *logger.Logger) *WalkerService {
	return &WalkerService{
		processor: processor,
		logger:    log,
	}
}

// Walk enumerates regular files under root recursively. Hidden entries
// (dot-prefixed) are skipped, subdirectories are descended into, and a
// per-entry enumeration error is logged and skipped rather than aborting
// the walk. Only a failure to read root itself is fatal, reported as
// [ErrFolderRead].
func (w *WalkerService) Walk(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFolderRead, err)
	}

	var files []string
	w.collect(root, entries, &files)
	return files, nil
}

func (w *WalkerService) collect(dir string, entries []os.DirEntry, files *[]string) {
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			sub, err := os.ReadDir(path)
			if err != nil {
				// Unreadable entry: skip, do not abort the walk.
				w.logger.Warn().
					Str("func", "WalkerService.collect").
					Str("path", path).
					Err(err).
					Msg("skipping unreadable directory")
				continue
			}
			w.collect(path, sub, files)
			continue
		}

		if entry.Type().IsRegular() {
			*files = append(*files, path)
		}
	}
}

// ProcessFolder feeds every file under root to the processor, strictly
// sequentially. Per-file failures are captured in the returned outcomes and
// never abort the batch; only a root enumeration failure returns an error,
// before any file is touched.
func (w *WalkerService) ProcessFolder(ctx context.Context, root string, algorithm string, creds models.Credentials) ([]FileOutcome, error) {
	files, err := w.Walk(root)
	if err != nil {
		return nil, err
	}

	outcomes := make([]FileOutcome, 0, len(files))
	for _, path := range files {
		entry, procErr := w.processor.Process(ctx, path, algorithm, creds)
		if procErr != nil {
			w.logger.Warn().
				Str("func", "WalkerService.ProcessFolder").
				Str("path", path).
				Err(procErr).
				Msg("file failed, continuing batch")
		}
		outcomes = append(outcomes, FileOutcome{Path: path, Entry: entry, Err: procErr})
	}

	return outcomes, nil
}
