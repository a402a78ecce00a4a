package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Baconcat1912/encryptify/internal/crypto"
	"github.com/Baconcat1912/encryptify/models"
)

func validJob() models.CryptoJob {
	return models.CryptoJob{
		Path:       "/tmp/file.txt",
		Mode:       models.Encrypt,
		Algorithm:  "aes-256-cbc",
		Iterations: 10000,
		Passphrase: "secret",
	}
}

func TestCryptoJobValidator_Credentials(t *testing.T) {
	v := NewCryptoJobValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		creds   models.Credentials
		wantErr error
	}{
		{
			name:  "valid",
			creds: models.Credentials{Passphrase: "secret", Iterations: 10000},
		},
		{
			name:    "empty passphrase",
			creds:   models.Credentials{Passphrase: "", Iterations: 10000},
			wantErr: ErrEmptyPassphrase,
		},
		{
			name:    "zero iterations",
			creds:   models.Credentials{Passphrase: "secret", Iterations: 0},
			wantErr: ErrInvalidIterations,
		},
		{
			name:    "negative iterations",
			creds:   models.Credentials{Passphrase: "secret", Iterations: -5},
			wantErr: ErrInvalidIterations,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.creds)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCryptoJobValidator_CredentialsPointer(t *testing.T) {
	v := NewCryptoJobValidator()

	creds := &models.Credentials{Passphrase: "secret", Iterations: 1}
	require.NoError(t, v.Validate(context.Background(), creds))
}

func TestCryptoJobValidator_CredentialsFieldScoping(t *testing.T) {
	v := NewCryptoJobValidator()
	ctx := context.Background()

	// Only the iterations field is checked; the empty passphrase passes.
	creds := models.Credentials{Passphrase: "", Iterations: 10000}
	require.NoError(t, v.Validate(ctx, creds, FieldIterations))

	err := v.Validate(ctx, creds, FieldPassphrase)
	assert.ErrorIs(t, err, ErrEmptyPassphrase)
}

func TestCryptoJobValidator_CryptoJob(t *testing.T) {
	v := NewCryptoJobValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.CryptoJob)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(*models.CryptoJob) {},
		},
		{
			name:    "empty path",
			mutate:  func(j *models.CryptoJob) { j.Path = "" },
			wantErr: ErrEmptyPath,
		},
		{
			name:    "empty passphrase",
			mutate:  func(j *models.CryptoJob) { j.Passphrase = "" },
			wantErr: ErrEmptyPassphrase,
		},
		{
			name:    "bad iterations",
			mutate:  func(j *models.CryptoJob) { j.Iterations = 0 },
			wantErr: ErrInvalidIterations,
		},
		{
			name:    "unregistered algorithm",
			mutate:  func(j *models.CryptoJob) { j.Algorithm = "rot13" },
			wantErr: crypto.ErrUnknownAlgorithm,
		},
		{
			name:    "zero mode",
			mutate:  func(j *models.CryptoJob) { j.Mode = 0 },
			wantErr: ErrInvalidMode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := validJob()
			tt.mutate(&job)

			err := v.Validate(ctx, job)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCryptoJobValidator_UnsupportedType(t *testing.T) {
	v := NewCryptoJobValidator()

	err := v.Validate(context.Background(), "a string")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestCryptoJobValidator_UnknownField(t *testing.T) {
	v := NewCryptoJobValidator()

	err := v.Validate(context.Background(), validJob(), "no-such-field")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownField)
}
