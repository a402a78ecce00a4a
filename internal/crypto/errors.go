package crypto

import (
	"errors"
	"fmt"
)

// ErrExecutorStart is returned (wrapped) when a transform could not begin at
// all: the external binary was not found, the process failed to spawn, or the
// input file could not be read. Match with [errors.Is].
var ErrExecutorStart = errors.New("cipher executor could not be started")

// ErrUnknownAlgorithm is returned when a request names an algorithm that is
// not present in the registry.
var ErrUnknownAlgorithm = errors.New("unknown cipher algorithm")

// ExitError reports that the transform ran and failed. For the external
// executor this is a non-zero process exit; for the native executor it is a
// transform-level failure such as a bad decrypt. Match with [errors.As].
type ExitError struct {
	// Code is the process exit code, or 1 for native transform failures.
	Code int

	// Stderr is the captured diagnostic output, possibly empty.
	Stderr string
}

func (e *ExitError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("cipher executor exited with code %d", e.Code)
	}
	return fmt.Sprintf("cipher executor exited with code %d: %s", e.Code, e.Stderr)
}
