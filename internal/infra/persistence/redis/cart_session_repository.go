package redis

import (
	"context"
	"time"

	"efood/config"
	"efood/internal/domain/entity"
	domainerrors "efood/internal/domain/errors"
	"efood/internal/domain/repository"
	"efood/internal/infra/persistence/model"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
)

// cartSessionRepository implements repository.CartSessionRepository on Redis.
type cartSessionRepository struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
	now    func() time.Time
}

// NewCartSessionRepository is the constructor for cartSessionRepository.
func NewCartSessionRepository(client *goredis.Client, cfg *config.Config) repository.CartSessionRepository {
	return &cartSessionRepository{
		client: client,
		prefix: cfg.Redis.KeyPrefix,
		ttl:    cfg.Session.TTL,
		now:    time.Now,
	}
}

// Load returns the stored cart state of a session.
func (repo *cartSessionRepository) Load(ctx context.Context, sessionID string) (entity.CartState, error) {
	raw, err := repo.client.Get(ctx, cartSessionKey(repo.prefix, sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return entity.CartState{}, repository.ErrCartSessionNotFound
		}

		return entity.CartState{}, domainerrors.NewStorageError(err, "failed to load cart session")
	}

	state, err := model.DecodeCartSession(raw)
	if err != nil {
		return entity.CartState{}, domainerrors.NewStorageError(err, "failed to decode cart session")
	}

	return state, nil
}

// Save stores the cart state and refreshes the session expiry.
func (repo *cartSessionRepository) Save(ctx context.Context, sessionID string, state entity.CartState) error {
	raw, err := model.EncodeCartSession(state, repo.now())
	if err != nil {
		return errors.Wrap(err, "failed to encode cart session")
	}

	if err := repo.client.Set(ctx, cartSessionKey(repo.prefix, sessionID), raw, repo.ttl).Err(); err != nil {
		return domainerrors.NewStorageError(err, "failed to save cart session")
	}

	return nil
}

// Delete removes the stored cart state. Deleting a missing session is not an error.
func (repo *cartSessionRepository) Delete(ctx context.Context, sessionID string) error {
	if err := repo.client.Del(ctx, cartSessionKey(repo.prefix, sessionID)).Err(); err != nil {
		return domainerrors.NewStorageError(err, "failed to delete cart session")
	}

	return nil
}
