// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Baconcat1912/encryptify/internal/crypto"
	"github.com/Baconcat1912/encryptify/internal/logger"
	"github.com/Baconcat1912/encryptify/internal/utils"
	"github.com/Baconcat1912/encryptify/internal/validators"
	"github.com/Baconcat1912/encryptify/models"
)

// ProcessorService is the single-file processor: it decides per file whether
// to encrypt or decrypt, invokes the cipher executor, and enforces the
// commit and cleanup rules around the transform.
type ProcessorService struct {
	executor  crypto.Executor
	validator validators.Validator
	uuidGen   *utils.UUIDGenerator
	logger    *logger.Logger
}

func NewProcessorService(executor crypto.Executor, log *logger.Logger) *ProcessorService {
	return &ProcessorService{
		executor:  executor,
		validator: validators.NewCryptoJobValidator(),
		uuidGen:   utils.NewUUIDGenerator(),
		logger:    log,
	}
}

// Process implements [FileProcessor].
//
// The path is classified by its name alone: a file carrying the reserved
// suffix is decrypted to the bare name, anything else is encrypted to
// name+suffix.
//
// Commit rule: the source file is deleted only if the executor reports
// success. Cleanup rule: on executor failure any partial output at the
// target path is removed best-effort before returning; a failed removal
// never masks the original error.
//
// Errors are classified as [ErrInvalidIterations], [ErrWrongCredentials]
// (a decrypt that ran and failed) or [ErrCipherExecutionFailed] (anything
// else), so the caller can surface one precise status message per file.
func (p *ProcessorService) Process(ctx context.Context, path string, algorithm string, creds models.Credentials) (models.HistoryEntry, error) {
	if err := p.validator.Validate(ctx, creds); err != nil {
		return models.HistoryEntry{}, err
	}
	if !crypto.IsRegistered(algorithm) {
		return models.HistoryEntry{}, fmt.Errorf("%w: %q", crypto.ErrUnknownAlgorithm, algorithm)
	}

	job := models.CryptoJob{
		Path:       path,
		Algorithm:  algorithm,
		Iterations: creds.Iterations,
		Passphrase: creds.Passphrase,
	}

	var outputPath string
	var action models.Action
	if Classify(path) == Ciphertext {
		job.Mode = models.Decrypt
		outputPath = PlainPath(path)
		action = models.ActionDecrypted
	} else {
		job.Mode = models.Encrypt
		outputPath = EncryptedPath(path)
		action = models.ActionEncrypted
	}

	err := p.executor.Run(ctx, crypto.Request{
		Mode:       job.Mode,
		Algorithm:  job.Algorithm,
		Iterations: job.Iterations,
		Passphrase: job.Passphrase,
		InputPath:  job.Path,
		OutputPath: outputPath,
	})
	if err != nil {
		p.removePartialOutput(outputPath)
		return models.HistoryEntry{}, p.classifyExecutorError(job.Mode, err)
	}

	// Commit: the transform succeeded, the source is replaced by the output.
	if rmErr := os.Remove(path); rmErr != nil {
		p.logger.Warn().
			Str("func", "ProcessorService.Process").
			Str("path", path).
			Err(rmErr).
			Msg("transform succeeded but source file could not be removed")
	}

	entry := models.HistoryEntry{
		ID:        p.uuidGen.Generate(),
		FileName:  filepath.Base(PlainPath(path)),
		Action:    action,
		Algorithm: algorithm,
	}

	p.logger.Debug().
		Str("func", "ProcessorService.Process").
		Str("file", entry.FileName).
		Str("action", string(action)).
		Str("algorithm", algorithm).
		Msg("file processed")

	return entry, nil
}

// removePartialOutput deletes a half-written output artifact, if any. The
// engine never leaves one on disk, but the cleanup is advisory: a failure
// here is logged and suppressed.
func (p *ProcessorService) removePartialOutput(outputPath string) {
	if _, err := os.Stat(outputPath); err != nil {
		return
	}
	if err := os.Remove(outputPath); err != nil {
		p.logger.Warn().
			Str("func", "ProcessorService.removePartialOutput").
			Str("path", outputPath).
			Err(err).
			Msg("failed to remove partial output")
	}
}

func (p *ProcessorService) classifyExecutorError(mode models.Mode, err error) error {
	var exitErr *crypto.ExitError
	if mode == models.Decrypt && errors.As(err, &exitErr) {
		// The process ran and rejected the input. For a decrypt the
		// dominant real-world cause is a bad passphrase or iteration
		// count, so it gets its own message.
		return fmt.Errorf("%w: %v", ErrWrongCredentials, err)
	}
	return fmt.Errorf("%w: %v", ErrCipherExecutionFailed, err)
}
