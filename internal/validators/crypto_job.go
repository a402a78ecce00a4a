package validators

import (
	"context"
	"fmt"

	"github.com/Baconcat1912/encryptify/internal/crypto"
	"github.com/Baconcat1912/encryptify/models"
)

const (
	FieldPath       = "path"
	FieldPassphrase = "passphrase"
	FieldIterations = "iterations"
	FieldAlgorithm  = "algorithm"
	FieldMode       = "mode"
)

// CryptoJobValidator validates credentials and cipher jobs before they
// reach the executor. It is the last line of defense: the UI validates the
// same rules on input, but every job is re-checked here.
type CryptoJobValidator struct {
}

func NewCryptoJobValidator() Validator {
	return &CryptoJobValidator{}
}

func (v *CryptoJobValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.CryptoJob:
		return v.validateCryptoJob(ctx, value, fields...)
	case *models.CryptoJob:
		return v.validateCryptoJob(ctx, *value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *CryptoJobValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPassphrase, FieldIterations}
	}

	for _, field := range fields {
		switch field {
		case FieldPassphrase:
			if creds.Passphrase == "" {
				return ErrEmptyPassphrase
			}
		case FieldIterations:
			if creds.Iterations <= 0 {
				return fmt.Errorf("%w: %d", ErrInvalidIterations, creds.Iterations)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *CryptoJobValidator) validateCryptoJob(_ context.Context, job models.CryptoJob, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPath, FieldPassphrase, FieldIterations, FieldAlgorithm, FieldMode}
	}

	for _, field := range fields {
		switch field {
		case FieldPath:
			if job.Path == "" {
				return ErrEmptyPath
			}
		case FieldPassphrase:
			if job.Passphrase == "" {
				return ErrEmptyPassphrase
			}
		case FieldIterations:
			if job.Iterations <= 0 {
				return fmt.Errorf("%w: %d", ErrInvalidIterations, job.Iterations)
			}
		case FieldAlgorithm:
			if !crypto.IsRegistered(job.Algorithm) {
				return fmt.Errorf("%w: %q", crypto.ErrUnknownAlgorithm, job.Algorithm)
			}
		case FieldMode:
			if job.Mode != models.Encrypt && job.Mode != models.Decrypt {
				return fmt.Errorf("%w: %d", ErrInvalidMode, job.Mode)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}
