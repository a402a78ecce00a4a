package crypto

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/Baconcat1912/encryptify/internal/logger"
	"github.com/Baconcat1912/encryptify/models"
)

// OpenSSLExecutor runs transforms by invoking the `openssl enc` command.
// The engine treats the process as a black box: a zero exit commits the
// transform, anything else fails it.
type OpenSSLExecutor struct {
	binary string
	logger *logger.Logger
}

// NewOpenSSLExecutor constructs an [OpenSSLExecutor] invoking the given
// binary. An empty binary defaults to "openssl" resolved via PATH.
func NewOpenSSLExecutor(binary string, log *logger.Logger) *OpenSSLExecutor {
	if binary == "" {
		binary = "openssl"
	}
	return &OpenSSLExecutor{binary: binary, logger: log}
}

// Run implements [Executor]. It blocks until the process exits; no timeout
// is imposed, so a hung openssl hangs the batch.
//
// The passphrase is fed through stdin (`-pass stdin`) rather than argv so it
// never shows up in the process table.
func (o *OpenSSLExecutor) Run(ctx context.Context, req Request) error {
	if !IsRegistered(req.Algorithm) {
		return fmt.Errorf("%w: %s", ErrUnknownAlgorithm, req.Algorithm)
	}

	args := []string{
		"enc", "-" + req.Algorithm,
		"-pbkdf2",
		"-iter", strconv.Itoa(req.Iterations),
		"-in", req.InputPath,
		"-out", req.OutputPath,
		"-pass", "stdin",
	}
	if req.Mode == models.Decrypt {
		args = append(args, "-d")
	} else {
		args = append(args, "-salt")
	}

	cmd := exec.CommandContext(ctx, o.binary, args...)
	cmd.Stdin = strings.NewReader(req.Passphrase + "\n")

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		o.logger.Debug().
			Str("func", "OpenSSLExecutor.Run").
			Int("code", exitErr.ExitCode()).
			Str("mode", req.Mode.String()).
			Msg("openssl exited non-zero")
		return &ExitError{Code: exitErr.ExitCode(), Stderr: strings.TrimSpace(stderr.String())}
	}

	o.logger.Err(err).
		Str("func", "OpenSSLExecutor.Run").
		Str("binary", o.binary).
		Msg("failed to start openssl")
	return fmt.Errorf("%w: %v", ErrExecutorStart, err)
}
