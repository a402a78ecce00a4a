package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Baconcat1912/encryptify/internal/logger"
	"github.com/Baconcat1912/encryptify/internal/mock"
	"github.com/Baconcat1912/encryptify/models"
)

func newTestBatchSvc(
	ctrl *gomock.Controller,
) (*BatchService, *mock.MockFileProcessor, *mock.MockHistoryRepository, *mock.MockPrompter) {
	mockProcessor := mock.NewMockFileProcessor(ctrl)
	mockRepo := mock.NewMockHistoryRepository(ctrl)
	mockPrompter := mock.NewMockPrompter(ctrl)
	log := logger.Nop()

	mockRepo.EXPECT().Load(gomock.Any()).Return(nil)

	walker := NewWalkerService(mockProcessor, log)
	history := NewHistoryService(mockRepo, mockProcessor, walker, log)
	gate := NewConfirmationGate(log)
	svc := NewBatchService(mockProcessor, walker, history, gate, log)
	return svc, mockProcessor, mockRepo, mockPrompter
}

// ── ProcessFile ──────────────────────────────────────────────────────────────

func TestBatchService_ProcessFile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProcessor, mockRepo, mockPrompter := newTestBatchSvc(ctrl)
	ctx := context.Background()

	creds := models.Credentials{Passphrase: "secret", Iterations: 10000}
	entry := models.HistoryEntry{ID: "1", FileName: "a.txt", Action: models.ActionEncrypted, Algorithm: "aes-256-cbc"}

	gomock.InOrder(
		mockPrompter.EXPECT().PromptCredentials(ctx).Return(creds, true),
		mockProcessor.EXPECT().Process(ctx, "/tmp/a.txt", "aes-256-cbc", creds).Return(entry, nil),
		mockRepo.EXPECT().Save(ctx, gomock.Any()).Return(nil),
	)

	got, err := svc.ProcessFile(ctx, "/tmp/a.txt", "aes-256-cbc", creds, mockPrompter)
	require.NoError(t, err)
	assert.Equal(t, entry, got)
}

func TestBatchService_ProcessFile_ConfirmationMismatchAbortsBeforeTheFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No Process and no Save expectations: a rejected confirmation must
	// abort with nothing touched and nothing recorded.
	svc, _, _, mockPrompter := newTestBatchSvc(ctrl)
	ctx := context.Background()

	creds := models.Credentials{Passphrase: "secret", Iterations: 10000}
	mockPrompter.EXPECT().PromptCredentials(ctx).
		Return(models.Credentials{Passphrase: "typo", Iterations: 10000}, true)

	_, err := svc.ProcessFile(ctx, "/tmp/a.txt", "aes-256-cbc", creds, mockPrompter)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfirmationMismatch)
}

func TestBatchService_ProcessFile_ProcessorFailureIsNotRecorded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProcessor, _, mockPrompter := newTestBatchSvc(ctrl)
	ctx := context.Background()

	creds := models.Credentials{Passphrase: "secret", Iterations: 10000}
	gomock.InOrder(
		mockPrompter.EXPECT().PromptCredentials(ctx).Return(creds, true),
		mockProcessor.EXPECT().Process(ctx, "/tmp/a.txt.enc", "aes-256-cbc", creds).
			Return(models.HistoryEntry{}, ErrWrongCredentials),
	)

	_, err := svc.ProcessFile(ctx, "/tmp/a.txt.enc", "aes-256-cbc", creds, mockPrompter)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWrongCredentials)
}

// ── ProcessFolder ────────────────────────────────────────────────────────────

func TestBatchService_ProcessFolder_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProcessor, mockRepo, mockPrompter := newTestBatchSvc(ctrl)
	ctx := context.Background()

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.txt": "a",
		"b.txt": "b",
	})

	creds := models.Credentials{Passphrase: "secret", Iterations: 10000}
	mockPrompter.EXPECT().PromptCredentials(ctx).Return(creds, true)
	mockProcessor.EXPECT().Process(ctx, gomock.Any(), "aes-256-cbc", creds).
		DoAndReturn(func(_ context.Context, path, algorithm string, _ models.Credentials) (models.HistoryEntry, error) {
			return models.HistoryEntry{
				ID:        filepath.Base(path),
				FileName:  filepath.Base(path),
				Action:    models.ActionEncrypted,
				Algorithm: algorithm,
			}, nil
		}).Times(2)
	// One save per successful file plus one for the folder summary.
	mockRepo.EXPECT().Save(ctx, gomock.Any()).Return(nil).Times(3)

	report, err := svc.ProcessFolder(ctx, root, "aes-256-cbc", creds, mockPrompter)
	require.NoError(t, err)

	assert.Equal(t, root, report.Folder)
	assert.Equal(t, 2, report.Succeeded())
	assert.Equal(t, 0, report.Failed())
	assert.Equal(t, models.ActionProcessedFolder, report.Summary.Action)
	assert.Equal(t, filepath.Base(root), report.Summary.FileName)
}

func TestBatchService_ProcessFolder_PartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProcessor, mockRepo, mockPrompter := newTestBatchSvc(ctrl)
	ctx := context.Background()

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"bad.txt":  "x",
		"good.txt": "x",
	})

	creds := models.Credentials{Passphrase: "secret", Iterations: 10000}
	mockPrompter.EXPECT().PromptCredentials(ctx).Return(creds, true)
	mockProcessor.EXPECT().Process(ctx, gomock.Any(), "aes-256-cbc", creds).
		DoAndReturn(func(_ context.Context, path, _ string, _ models.Credentials) (models.HistoryEntry, error) {
			if filepath.Base(path) == "bad.txt" {
				return models.HistoryEntry{}, ErrCipherExecutionFailed
			}
			return models.HistoryEntry{ID: "ok", FileName: filepath.Base(path), Action: models.ActionEncrypted}, nil
		}).Times(2)
	// Only the success and the summary reach the ledger.
	mockRepo.EXPECT().Save(ctx, gomock.Any()).Return(nil).Times(2)

	report, err := svc.ProcessFolder(ctx, root, "aes-256-cbc", creds, mockPrompter)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Succeeded())
	assert.Equal(t, 1, report.Failed())
}

func TestBatchService_ProcessFolder_ConfirmationCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, mockPrompter := newTestBatchSvc(ctrl)
	ctx := context.Background()

	creds := models.Credentials{Passphrase: "secret", Iterations: 10000}
	mockPrompter.EXPECT().PromptCredentials(ctx).Return(models.Credentials{}, false)

	_, err := svc.ProcessFolder(ctx, t.TempDir(), "aes-256-cbc", creds, mockPrompter)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfirmationMismatch)
}

func TestBatchService_ProcessFolder_UnreadableRoot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, mockPrompter := newTestBatchSvc(ctrl)
	ctx := context.Background()

	creds := models.Credentials{Passphrase: "secret", Iterations: 10000}
	mockPrompter.EXPECT().PromptCredentials(ctx).Return(creds, true)

	_, err := svc.ProcessFolder(ctx, filepath.Join(t.TempDir(), "gone"), "aes-256-cbc", creds, mockPrompter)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFolderRead)
}
