package memory

import (
	"context"

	"efood/internal/domain/entity"
	"efood/internal/domain/repository"
	"efood/internal/infra/persistence/model"

	"github.com/pkg/errors"
)

type deviceRepository struct {
	store *Store
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(store *Store) repository.DeviceRepository {
	return &deviceRepository{store: store}
}

func (repo *deviceRepository) SaveDevice(_ context.Context, device *entity.Device) error {
	raw, err := model.EncodeDevice(device)
	if err != nil {
		return errors.Wrap(err, "failed to encode device")
	}
	repo.store.set(deviceKey(device.SessionID), raw)

	return nil
}

func (repo *deviceRepository) FindDevice(_ context.Context, sessionID string) (*entity.Device, error) {
	raw, ok := repo.store.get(deviceKey(sessionID))
	if !ok {
		return nil, repository.ErrDeviceNotFound
	}

	return model.DecodeDevice(raw)
}

func (repo *deviceRepository) DeleteDevice(_ context.Context, sessionID string) error {
	if !repo.store.delete(deviceKey(sessionID)) {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func deviceKey(sessionID string) string {
	return "device:session:" + sessionID
}
