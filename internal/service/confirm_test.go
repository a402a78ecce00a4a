package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Baconcat1912/encryptify/internal/logger"
	"github.com/Baconcat1912/encryptify/internal/mock"
	"github.com/Baconcat1912/encryptify/models"
)

func TestConfirmationGate_Confirm_ExactMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gate := NewConfirmationGate(logger.Nop())
	mockPrompter := mock.NewMockPrompter(ctrl)
	ctx := context.Background()

	staged := models.Credentials{Passphrase: "secret", Iterations: 10000}
	mockPrompter.EXPECT().PromptCredentials(ctx).Return(staged, true)

	assert.True(t, gate.Confirm(ctx, staged, mockPrompter))
}

func TestConfirmationGate_Confirm_PassphraseMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gate := NewConfirmationGate(logger.Nop())
	mockPrompter := mock.NewMockPrompter(ctrl)
	ctx := context.Background()

	staged := models.Credentials{Passphrase: "secret", Iterations: 10000}
	mockPrompter.EXPECT().PromptCredentials(ctx).
		Return(models.Credentials{Passphrase: "secrte", Iterations: 10000}, true)

	assert.False(t, gate.Confirm(ctx, staged, mockPrompter))
}

func TestConfirmationGate_Confirm_IterationsMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gate := NewConfirmationGate(logger.Nop())
	mockPrompter := mock.NewMockPrompter(ctrl)
	ctx := context.Background()

	staged := models.Credentials{Passphrase: "secret", Iterations: 10000}
	mockPrompter.EXPECT().PromptCredentials(ctx).
		Return(models.Credentials{Passphrase: "secret", Iterations: 9999}, true)

	assert.False(t, gate.Confirm(ctx, staged, mockPrompter))
}

func TestConfirmationGate_Confirm_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gate := NewConfirmationGate(logger.Nop())
	mockPrompter := mock.NewMockPrompter(ctrl)
	ctx := context.Background()

	staged := models.Credentials{Passphrase: "secret", Iterations: 10000}
	mockPrompter.EXPECT().PromptCredentials(ctx).Return(models.Credentials{}, false)

	assert.False(t, gate.Confirm(ctx, staged, mockPrompter))
}
