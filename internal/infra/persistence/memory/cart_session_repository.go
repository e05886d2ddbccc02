package memory

import (
	"context"

	"efood/internal/domain/entity"
	"efood/internal/domain/repository"
	"efood/internal/infra/persistence/model"

	"github.com/pkg/errors"
)

type cartSessionRepository struct {
	store *Store
}

// NewCartSessionRepository is the constructor for cartSessionRepository.
func NewCartSessionRepository(store *Store) repository.CartSessionRepository {
	return &cartSessionRepository{store: store}
}

func (repo *cartSessionRepository) Load(_ context.Context, sessionID string) (entity.CartState, error) {
	raw, ok := repo.store.get(cartSessionKey(sessionID))
	if !ok {
		return entity.CartState{}, repository.ErrCartSessionNotFound
	}

	return model.DecodeCartSession(raw)
}

func (repo *cartSessionRepository) Save(_ context.Context, sessionID string, state entity.CartState) error {
	raw, err := model.EncodeCartSession(state, repo.store.now())
	if err != nil {
		return errors.Wrap(err, "failed to encode cart session")
	}
	repo.store.set(cartSessionKey(sessionID), raw)

	return nil
}

func (repo *cartSessionRepository) Delete(_ context.Context, sessionID string) error {
	repo.store.delete(cartSessionKey(sessionID))

	return nil
}

func cartSessionKey(sessionID string) string {
	return "cart:session:" + sessionID
}
