package service

import (
	"context"

	"github.com/Baconcat1912/encryptify/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// FileProcessor toggles a single file between plaintext and ciphertext.
type FileProcessor interface {
	// Process classifies path, runs the matching transform, deletes the
	// source on success, and returns the history entry describing what
	// was done. See [ProcessorService.Process] for the full contract.
	Process(ctx context.Context, path string, algorithm string, creds models.Credentials) (models.HistoryEntry, error)
}

// Prompter re-collects credentials from the user. It is implemented by the
// front end (a modal re-entry form in the terminal UI) and consumed by the
// confirmation gate and by history reversal.
type Prompter interface {
	// PromptCredentials returns the re-entered credentials, or ok=false
	// if the user cancelled.
	PromptCredentials(ctx context.Context) (creds models.Credentials, ok bool)
}
