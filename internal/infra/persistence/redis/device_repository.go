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

// deviceRepository implements repository.DeviceRepository on Redis.
type deviceRepository struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(client *goredis.Client, cfg *config.Config) repository.DeviceRepository {
	return &deviceRepository{
		client: client,
		prefix: cfg.Redis.KeyPrefix,
		ttl:    cfg.Session.TTL,
	}
}

// SaveDevice stores the device of a session, replacing any previous one.
func (repo *deviceRepository) SaveDevice(ctx context.Context, device *entity.Device) error {
	raw, err := model.EncodeDevice(device)
	if err != nil {
		return errors.Wrap(err, "failed to encode device")
	}

	if err := repo.client.Set(ctx, deviceKey(repo.prefix, device.SessionID), raw, repo.ttl).Err(); err != nil {
		return domainerrors.NewStorageError(err, "failed to save device")
	}

	return nil
}

// FindDevice returns the device registered by a session.
func (repo *deviceRepository) FindDevice(ctx context.Context, sessionID string) (*entity.Device, error) {
	raw, err := repo.client.Get(ctx, deviceKey(repo.prefix, sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, domainerrors.NewStorageError(err, "failed to find device")
	}

	device, err := model.DecodeDevice(raw)
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to decode device")
	}

	return device, nil
}

// DeleteDevice removes the device of a session.
func (repo *deviceRepository) DeleteDevice(ctx context.Context, sessionID string) error {
	deleted, err := repo.client.Del(ctx, deviceKey(repo.prefix, sessionID)).Result()
	if err != nil {
		return domainerrors.NewStorageError(err, "failed to delete device")
	}
	if deleted == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}
