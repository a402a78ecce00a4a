package service

import (
	"context"

	"github.com/Baconcat1912/encryptify/internal/logger"
	"github.com/Baconcat1912/encryptify/models"
)

// ConfirmationGate guards destructive batches. Before any batch that will
// delete source files runs, it re-collects the passphrase and the iteration
// count through the prompter and requires an exact match against the values
// already staged.
type ConfirmationGate struct {
	logger *logger.Logger
}

func NewConfirmationGate(log *logger.Logger) *ConfirmationGate {
	return &ConfirmationGate{logger: log}
}

// Confirm returns true only when the prompter yields credentials exactly
// equal to staged. A cancelled prompt or any mismatch returns false; the
// caller must then abort the batch with no files touched and no history
// appended.
func (g *ConfirmationGate) Confirm(ctx context.Context, staged models.Credentials, prompter Prompter) bool {
	reentered, ok := prompter.PromptCredentials(ctx)
	if !ok {
		g.logger.Debug().
			Str("func", "ConfirmationGate.Confirm").
			Msg("confirmation cancelled")
		return false
	}

	if !staged.Equal(reentered) {
		g.logger.Debug().
			Str("func", "ConfirmationGate.Confirm").
			Msg("confirmation mismatch")
		return false
	}

	return true
}
