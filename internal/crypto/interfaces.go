package crypto

import (
	"context"

	"github.com/Baconcat1912/encryptify/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/executor_mock.go -package=mock

// Executor performs one cipher transform. It knows nothing about file
// classification, history, or the rest of the engine; it reads InputPath,
// writes OutputPath, and reports a binary outcome.
//
// Implementations must distinguish two failure kinds:
//   - the transform could not even begin (wrap [ErrExecutorStart]);
//   - the transform ran and failed (return [*ExitError]).
//
// Callers map the two to different messages but identical cleanup.
// An Executor never deletes InputPath and never cleans up a partial
// OutputPath; both are the caller's responsibility.
type Executor interface {
	Run(ctx context.Context, req Request) error
}

// Request carries all parameters of a single transform.
type Request struct {
	// Mode selects encryption or decryption.
	Mode models.Mode

	// Algorithm is a registered cipher algorithm identifier,
	// e.g. "aes-256-cbc".
	Algorithm string

	// Iterations is the key-derivation iteration count. Must be positive.
	Iterations int

	// Passphrase is the secret the key is derived from.
	Passphrase string

	// InputPath is the file the transform reads.
	InputPath string

	// OutputPath is the file the transform writes. An existing file at
	// this path is overwritten.
	OutputPath string
}
