package tui

import (
	"context"

	"github.com/Baconcat1912/encryptify/models"
)

// staticPrompter satisfies [service.Prompter] with values already collected
// by a UI screen. The confirmation gate and history reversal both ask for
// credentials through the interface; in the TUI the asking happened on the
// previous screen, so the prompter just replays what was typed there.
type staticPrompter struct {
	creds models.Credentials
	ok    bool
}

func (p staticPrompter) PromptCredentials(context.Context) (models.Credentials, bool) {
	return p.creds, p.ok
}
