package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrNotificationTokenInvalid is returned when the push provider no longer accepts a device token
var ErrNotificationTokenInvalid = errors.New("notification token invalid or unregistered")

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendSingleNotification sends a push notification to a single device token
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
