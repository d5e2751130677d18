package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clipdigest/internal/domain/entity"
	"clipdigest/internal/infra/adapter/persistence/memory"
)

func TestStateRepo_Credential(t *testing.T) {
	repo := memory.NewStateRepo()
	ctx := context.Background()

	got, err := repo.Credential(ctx)
	require.NoError(t, err)
	assert.Empty(t, got, "starts empty")

	require.NoError(t, repo.SaveCredential(ctx, "sk-abcdefghijklmnopqrstuvwx"))

	got, err = repo.Credential(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sk-abcdefghijklmnopqrstuvwx", got)

	require.NoError(t, repo.ClearCredential(ctx))

	got, err = repo.Credential(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStateRepo_Selection(t *testing.T) {
	repo := memory.NewStateRepo()
	ctx := context.Background()

	got, err := repo.Selection(ctx)
	require.NoError(t, err)
	assert.Empty(t, got, "starts empty")

	require.NoError(t, repo.SaveSelection(ctx, "first selection"))
	require.NoError(t, repo.SaveSelection(ctx, "second selection"))

	got, err = repo.Selection(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second selection", got, "last write wins")
}

func TestStateRepo_Summary(t *testing.T) {
	repo := memory.NewStateRepo()
	ctx := context.Background()

	_, err := repo.LastSummary(ctx)
	assert.ErrorIs(t, err, entity.ErrNotFound)

	stored := &entity.Summary{Text: "A short summary.", CreatedAt: time.Now()}
	require.NoError(t, repo.SaveSummary(ctx, stored))

	got, err := repo.LastSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, stored.Text, got.Text)

	// the repository hands out copies, not the stored value
	got.Text = "mutated"
	again, err := repo.LastSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, "A short summary.", again.Text)
}
