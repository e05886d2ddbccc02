// Package entity contains the core business objects of the project.
package entity

import "time"

// Device is the push-notification target registered by a cart session.
type Device struct {
	SessionID    string    `json:"session_id"`    // The cart session that owns this device.
	FCMToken     string    `json:"fcm_token"`     // Firebase Cloud Messaging token for push notifications.
	Platform     string    `json:"platform"`      // Device platform (ios, android, web).
	Language     string    `json:"language"`      // Preferred notification language.
	RegisteredAt time.Time `json:"registered_at"` // Timestamp of the last registration.
}
