package model

import (
	"time"

	"efood/internal/domain/entity"
)

// DeviceModel is the JSON document stored for a session's push notification device.
type DeviceModel struct {
	SessionID    string    `json:"session_id"`
	FCMToken     string    `json:"fcm_token"`
	Platform     string    `json:"platform,omitempty"`
	Language     string    `json:"language,omitempty"`
	RegisteredAt time.Time `json:"registered_at"`
}

// FromDevice converts a domain device into its stored form.
func FromDevice(device *entity.Device) *DeviceModel {
	return &DeviceModel{
		SessionID:    device.SessionID,
		FCMToken:     device.FCMToken,
		Platform:     device.Platform,
		Language:     device.Language,
		RegisteredAt: device.RegisteredAt,
	}
}

// ToDevice converts the stored form back into a domain device.
func (m *DeviceModel) ToDevice() *entity.Device {
	return &entity.Device{
		SessionID:    m.SessionID,
		FCMToken:     m.FCMToken,
		Platform:     m.Platform,
		Language:     m.Language,
		RegisteredAt: m.RegisteredAt,
	}
}
