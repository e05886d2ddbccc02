package repository

import (
	"context"

	"efood/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrDeviceNotFound is returned when a session has no registered device.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository stores the push-notification device registered by a session.
type DeviceRepository interface {
	// SaveDevice registers or replaces the session's device.
	SaveDevice(ctx context.Context, device *entity.Device) error

	// FindDevice retrieves the device registered by a session.
	FindDevice(ctx context.Context, sessionID string) (*entity.Device, error)

	// DeleteDevice forgets the session's device.
	DeleteDevice(ctx context.Context, sessionID string) error
}
