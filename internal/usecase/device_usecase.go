package usecase

import (
	"context"

	"efood/internal/domain/entity"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string `json:"fcm_token" validate:"required,max=4096"`
	Platform string `json:"platform" validate:"omitempty,oneof=web android ios"`
	Language string `json:"language" validate:"omitempty,max=10"`
}

// DeviceUsecase defines the interface for push notification device management
type DeviceUsecase interface {
	// RegisterDevice stores the FCM token of the session, replacing any previous one
	RegisterDevice(ctx context.Context, sessionID string, info *DeviceInfo) (*entity.Device, error)

	// ForgetDevice removes the session's device; forgetting an unknown device is not an error
	ForgetDevice(ctx context.Context, sessionID string) error
}
