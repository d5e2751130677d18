package sqlite

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clipdigest/internal/domain/entity"
)

var (
	upsertPattern = regexp.QuoteMeta(`
INSERT INTO extension_state (key, value, updated_at)
VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`)
	selectPattern = regexp.QuoteMeta(`SELECT value FROM extension_state WHERE key = ? LIMIT 1`)
	deletePattern = regexp.QuoteMeta(`DELETE FROM extension_state WHERE key = ?`)
)

func newMockRepo(t *testing.T) (*StateRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &StateRepo{db: db}, mock
}

func TestStateRepo_SaveCredential(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(upsertPattern).
		WithArgs("credential.api_key", "sk-abcdefghijklmnopqrstuvwx", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveCredential(context.Background(), "sk-abcdefghijklmnopqrstuvwx")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStateRepo_Credential(t *testing.T) {
	t.Run("returns stored key", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(selectPattern).
			WithArgs("credential.api_key").
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("sk-abcdefghijklmnopqrstuvwx"))

		got, err := repo.Credential(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "sk-abcdefghijklmnopqrstuvwx", got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent key yields empty string", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(selectPattern).
			WithArgs("credential.api_key").
			WillReturnRows(sqlmock.NewRows([]string{"value"}))

		got, err := repo.Credential(context.Background())

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("query error is wrapped", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(selectPattern).
			WithArgs("credential.api_key").
			WillReturnError(errors.New("database is locked"))

		_, err := repo.Credential(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "credential.api_key")
	})
}

func TestStateRepo_ClearCredential(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(deletePattern).
		WithArgs("credential.api_key").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ClearCredential(context.Background())

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStateRepo_Selection(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(upsertPattern).
		WithArgs("summarize.selected_text", "some selected text", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(selectPattern).
		WithArgs("summarize.selected_text").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("some selected text"))

	ctx := context.Background()
	require.NoError(t, repo.SaveSelection(ctx, "some selected text"))

	got, err := repo.Selection(ctx)
	require.NoError(t, err)
	assert.Equal(t, "some selected text", got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStateRepo_SaveSummary(t *testing.T) {
	repo, mock := newMockRepo(t)

	createdAt := time.Date(2025, 10, 26, 12, 0, 0, 123456789, time.UTC)

	mock.ExpectExec(upsertPattern).
		WithArgs("summarize.last_summary", "A short summary.", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(upsertPattern).
		WithArgs("summarize.last_summary_at", createdAt.Format(time.RFC3339Nano), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveSummary(context.Background(), &entity.Summary{
		Text:      "A short summary.",
		CreatedAt: createdAt,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStateRepo_LastSummary(t *testing.T) {
	t.Run("returns text and timestamp", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		createdAt := time.Date(2025, 10, 26, 12, 0, 0, 0, time.UTC)

		mock.ExpectQuery(selectPattern).
			WithArgs("summarize.last_summary").
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("A short summary."))
		mock.ExpectQuery(selectPattern).
			WithArgs("summarize.last_summary_at").
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(createdAt.Format(time.RFC3339Nano)))

		got, err := repo.LastSummary(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "A short summary.", got.Text)
		assert.True(t, got.CreatedAt.Equal(createdAt))
	})

	t.Run("no summary stored", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(selectPattern).
			WithArgs("summarize.last_summary").
			WillReturnRows(sqlmock.NewRows([]string{"value"}))

		_, err := repo.LastSummary(context.Background())

		assert.ErrorIs(t, err, entity.ErrNotFound)
	})

	t.Run("malformed timestamp degrades to zero time", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(selectPattern).
			WithArgs("summarize.last_summary").
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("A short summary."))
		mock.ExpectQuery(selectPattern).
			WithArgs("summarize.last_summary_at").
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("not a timestamp"))

		got, err := repo.LastSummary(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "A short summary.", got.Text)
		assert.True(t, got.CreatedAt.IsZero())
	})
}
