package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/Baconcat1912/encryptify/internal/logger"
)

func newTestSettingsRepo(t *testing.T) (*settingsRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &settingsRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestSettingsRepository_Get_Success(t *testing.T) {
	repo, mock, db := newTestSettingsRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"value"}).AddRow("aes-256-cbc")
	mock.ExpectQuery("SELECT value FROM settings").
		WithArgs(KeyAlgorithm).
		WillReturnRows(rows)

	got, err := repo.Get(context.Background(), KeyAlgorithm)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "aes-256-cbc" {
		t.Errorf("expected value aes-256-cbc, got %q", got)
	}
}

func TestSettingsRepository_Get_NotFound(t *testing.T) {
	repo, mock, db := newTestSettingsRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM settings").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "missing")
	if !errors.Is(err, ErrSettingNotFound) {
		t.Errorf("expected ErrSettingNotFound, got %v", err)
	}
}

func TestSettingsRepository_Get_QueryError(t *testing.T) {
	repo, mock, db := newTestSettingsRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM settings").
		WithArgs(KeyHistory).
		WillReturnError(errors.New("database is locked"))

	_, err := repo.Get(context.Background(), KeyHistory)
	if !errors.Is(err, ErrScanningRow) {
		t.Errorf("expected ErrScanningRow, got %v", err)
	}
}

func TestSettingsRepository_Put_Success(t *testing.T) {
	repo, mock, db := newTestSettingsRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO settings").
		WithArgs(KeyHistory, `[]`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Put(context.Background(), KeyHistory, `[]`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSettingsRepository_Put_ExecError(t *testing.T) {
	repo, mock, db := newTestSettingsRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO settings").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("disk I/O error"))

	err := repo.Put(context.Background(), KeyHistory, `[]`)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Errorf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestSettingsRepository_Delete_Success(t *testing.T) {
	repo, mock, db := newTestSettingsRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM settings").
		WithArgs(KeyHistory).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), KeyHistory); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
