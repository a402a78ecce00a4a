package service

import (
	"errors"

	"github.com/Baconcat1912/encryptify/internal/validators"
)

// Sentinel errors of the orchestration engine. Callers should use
// [errors.Is] to match against these values; every one of them maps to a
// single human-readable status message in the front end.
var (
	// ErrInvalidIterations is returned when the iteration count is not a
	// positive integer. The processor re-validates it as the last line of
	// defense before the cipher executor is invoked.
	ErrInvalidIterations = validators.ErrInvalidIterations

	// ErrEmptyPassphrase is returned when the passphrase is empty.
	ErrEmptyPassphrase = validators.ErrEmptyPassphrase

	// ErrCipherExecutionFailed is returned when the cipher executor could
	// not run or failed during an encrypt (or any non-decrypt-specific
	// failure).
	ErrCipherExecutionFailed = errors.New("cipher execution failed")

	// ErrWrongCredentials is returned when a decrypt ran and failed,
	// which in practice almost always means a wrong passphrase or
	// iteration count.
	ErrWrongCredentials = errors.New("wrong passphrase or iteration count")

	// ErrFolderRead is returned when the batch root folder itself cannot
	// be enumerated. Distinct from per-file failures, which never abort
	// a batch.
	ErrFolderRead = errors.New("failed to read folder")

	// ErrConfirmationMismatch is returned when the confirmation gate
	// rejected the re-entered credentials; the batch is aborted with no
	// files touched and no history appended.
	ErrConfirmationMismatch = errors.New("confirmation did not match")

	// ErrReverseTargetNotFound is returned when the file a history entry
	// refers to no longer exists under the selected root.
	ErrReverseTargetNotFound = errors.New("file to reverse was not found")

	// ErrPromptCancelled is returned when the user cancelled a
	// credentials prompt.
	ErrPromptCancelled = errors.New("prompt was cancelled")
)
