// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"errors"

	"github.com/Baconcat1912/encryptify/internal/crypto"
	"github.com/Baconcat1912/encryptify/internal/service"
)

// humanizeError maps the engine's sentinel errors to the one-line status
// messages shown in the UI.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrWrongCredentials):
		return "Wrong passphrase or iteration count"
	case errors.Is(err, service.ErrConfirmationMismatch):
		return "Confirmation did not match, nothing was done"
	case errors.Is(err, service.ErrFolderRead):
		return "Folder could not be read"
	case errors.Is(err, service.ErrReverseTargetNotFound):
		return "The file to reverse was not found"
	case errors.Is(err, service.ErrPromptCancelled):
		return "Cancelled"
	case errors.Is(err, service.ErrInvalidIterations):
		return "Iterations must be a positive number"
	case errors.Is(err, service.ErrEmptyPassphrase):
		return "Passphrase must not be empty"
	case errors.Is(err, crypto.ErrUnknownAlgorithm):
		return "Unknown algorithm"
	case errors.Is(err, crypto.ErrExecutorStart):
		return "Cipher tool could not be started, is it installed?"
	case errors.Is(err, service.ErrCipherExecutionFailed):
		return "Cipher execution failed"
	default:
		return err.Error()
	}
}
