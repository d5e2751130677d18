package repository

import (
	"context"

	"clipdigest/internal/domain/entity"
)

// StateRepository persists the extension's small key-value state: the saved
// credential, the most recent selection, and the last successful summary.
// There are no transactional semantics; last write wins.
type StateRepository interface {
	// SaveCredential stores the provider API key, replacing any existing one.
	SaveCredential(ctx context.Context, token string) error
	// Credential returns the stored API key, or "" when none is saved.
	Credential(ctx context.Context) (string, error)
	// ClearCredential removes the stored API key. Clearing an absent key is not an error.
	ClearCredential(ctx context.Context) error

	// SaveSelection stores the current selection text, overwriting the previous one.
	SaveSelection(ctx context.Context, text string) error
	// Selection returns the stored selection text, or "" when none is present.
	Selection(ctx context.Context) (string, error)

	// SaveSummary stores the last successful summary, overwriting the previous one.
	SaveSummary(ctx context.Context, summary *entity.Summary) error
	// LastSummary returns the last persisted summary.
	// Returns entity.ErrNotFound when no summary has been stored yet.
	LastSummary(ctx context.Context) (*entity.Summary, error)
}
