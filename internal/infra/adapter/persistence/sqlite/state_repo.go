// Package sqlite implements the state repository on the local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"clipdigest/internal/domain/entity"
	"clipdigest/internal/repository"
)

// Fixed keys in the extension_state table. The credential lives under its own
// key; selection and summary share the summarize namespace.
const (
	keyCredential = "credential.api_key"
	keySelection  = "summarize.selected_text"
	keySummary    = "summarize.last_summary"
	keySummaryAt  = "summarize.last_summary_at"
)

type StateRepo struct{ db *sql.DB }

func NewStateRepo(db *sql.DB) repository.StateRepository {
	return &StateRepo{db: db}
}

const upsertQuery = `
INSERT INTO extension_state (key, value, updated_at)
VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

// set stores value under key, replacing any previous value.
func (repo *StateRepo) set(ctx context.Context, key, value string) error {
	if _, err := repo.db.ExecContext(ctx, upsertQuery, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// get returns the value stored under key, or "" when the key is absent.
func (repo *StateRepo) get(ctx context.Context, key string) (string, error) {
	const query = `SELECT value FROM extension_state WHERE key = ? LIMIT 1`
	var value string
	err := repo.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

func (repo *StateRepo) SaveCredential(ctx context.Context, token string) error {
	return repo.set(ctx, keyCredential, token)
}

func (repo *StateRepo) Credential(ctx context.Context) (string, error) {
	return repo.get(ctx, keyCredential)
}

func (repo *StateRepo) ClearCredential(ctx context.Context) error {
	const query = `DELETE FROM extension_state WHERE key = ?`
	if _, err := repo.db.ExecContext(ctx, query, keyCredential); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}

func (repo *StateRepo) SaveSelection(ctx context.Context, text string) error {
	return repo.set(ctx, keySelection, text)
}

func (repo *StateRepo) Selection(ctx context.Context) (string, error) {
	return repo.get(ctx, keySelection)
}

// SaveSummary persists the summary text and its timestamp as two writes.
// There are deliberately no transactional semantics; last write wins.
func (repo *StateRepo) SaveSummary(ctx context.Context, summary *entity.Summary) error {
	if err := repo.set(ctx, keySummary, summary.Text); err != nil {
		return err
	}
	return repo.set(ctx, keySummaryAt, summary.CreatedAt.UTC().Format(time.RFC3339Nano))
}

func (repo *StateRepo) LastSummary(ctx context.Context) (*entity.Summary, error) {
	text, err := repo.get(ctx, keySummary)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, entity.ErrNotFound
	}

	summary := &entity.Summary{Text: text}

	// A missing or malformed timestamp degrades to a zero CreatedAt rather
	// than hiding the stored summary.
	stamp, err := repo.get(ctx, keySummaryAt)
	if err != nil {
		return nil, err
	}
	if stamp != "" {
		if createdAt, parseErr := time.Parse(time.RFC3339Nano, stamp); parseErr == nil {
			summary.CreatedAt = createdAt
		}
	}

	return summary, nil
}
