package impl

import (
	"context"
	"log/slog"
	"sync"

	"efood/internal/domain/cart"
	"efood/internal/domain/entity"
	"efood/internal/domain/repository"
	"efood/internal/errors"
)

// CartSessions loads a session's cart store, runs one operation on it and
// persists the result. Operations of one session never interleave.
type CartSessions struct {
	repo   repository.CartSessionRepository
	locks  *keyedMutex
	logger *slog.Logger
}

// NewCartSessions creates the cart session coordinator
func NewCartSessions(repo repository.CartSessionRepository, logger *slog.Logger) *CartSessions {
	return &CartSessions{
		repo:   repo,
		locks:  newKeyedMutex(),
		logger: logger,
	}
}

// View runs fn against the session's carts without persisting anything.
func (c *CartSessions) View(ctx context.Context, sessionID string, fn func(store *cart.Store) error) error {
	unlock := c.locks.lock(sessionID)
	defer unlock()

	store, err := c.load(ctx, sessionID)
	if err != nil {
		return err
	}

	return fn(store)
}

// Update runs fn against the session's carts and saves every change it makes.
// A session whose last cart disappears is deleted from storage.
func (c *CartSessions) Update(ctx context.Context, sessionID string, fn func(store *cart.Store) error) error {
	unlock := c.locks.lock(sessionID)
	defer unlock()

	store, err := c.load(ctx, sessionID)
	if err != nil {
		return err
	}

	var saveErr error
	store.OnChange(func(state entity.CartState) {
		if len(state.Stores) == 0 {
			saveErr = errors.Join(saveErr, c.repo.Delete(ctx, sessionID))

			return
		}
		saveErr = errors.Join(saveErr, c.repo.Save(ctx, sessionID, state))
	})

	if err := fn(store); err != nil {
		return err
	}

	return saveErr
}

func (c *CartSessions) load(ctx context.Context, sessionID string) (*cart.Store, error) {
	state, err := c.repo.Load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrCartSessionNotFound) {
			return cart.New(), nil
		}

		return nil, err
	}

	store := cart.Restore(state)
	if restored := len(store.Stores()); restored != len(state.Stores) {
		c.logger.WarnContext(ctx, "Dropped invalid carts while restoring session",
			slog.String("session_id", sessionID),
			slog.Int("stored", len(state.Stores)),
			slog.Int("restored", restored),
		)
	}

	return store, nil
}

// keyedMutex hands out one mutex per key and forgets keys nobody holds.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

type keyedLock struct {
	mu      sync.Mutex
	waiters int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*keyedLock)}
}

func (k *keyedMutex) lock(key string) (unlock func()) {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &keyedLock{}
		k.locks[key] = l
	}
	l.waiters++
	k.mu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()

		k.mu.Lock()
		l.waiters--
		if l.waiters == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

func (k *keyedMutex) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()

	return len(k.locks)
}
