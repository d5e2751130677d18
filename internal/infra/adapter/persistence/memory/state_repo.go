// Package memory implements the state repository in process memory.
// It backs the one-shot CLI and tests, where persistence across runs is not needed.
package memory

import (
	"context"
	"sync"

	"clipdigest/internal/domain/entity"
	"clipdigest/internal/repository"
)

type StateRepo struct {
	mu         sync.Mutex
	credential string
	selection  string
	summary    *entity.Summary
}

func NewStateRepo() repository.StateRepository {
	return &StateRepo{}
}

func (repo *StateRepo) SaveCredential(_ context.Context, token string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.credential = token
	return nil
}

func (repo *StateRepo) Credential(_ context.Context) (string, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	return repo.credential, nil
}

func (repo *StateRepo) ClearCredential(_ context.Context) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.credential = ""
	return nil
}

func (repo *StateRepo) SaveSelection(_ context.Context, text string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.selection = text
	return nil
}

func (repo *StateRepo) Selection(_ context.Context) (string, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	return repo.selection, nil
}

func (repo *StateRepo) SaveSummary(_ context.Context, summary *entity.Summary) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	copied := *summary
	repo.summary = &copied
	return nil
}

func (repo *StateRepo) LastSummary(_ context.Context) (*entity.Summary, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.summary == nil {
		return nil, entity.ErrNotFound
	}
	copied := *repo.summary
	return &copied, nil
}
