package impl

import (
	"context"
	"log/slog"
	"strconv"

	"efood/internal/domain/entity"
	"efood/internal/domain/lifecycle"
	"efood/internal/domain/repository"
	"efood/internal/domain/service"
	"efood/internal/errors"
)

type statusMessage struct {
	title string
	body  string
}

// statusMessages holds the notification text per language and status.
var statusMessages = map[string]map[entity.OrderStatus]statusMessage{
	"en": {
		entity.OrderStatusProcessing:     {"Order accepted", "The store is preparing your order."},
		entity.OrderStatusOutForDelivery: {"On its way", "Your order is out for delivery."},
		entity.OrderStatusCompleted:      {"Delivered", "Enjoy your meal!"},
		entity.OrderStatusCancelled:      {"Order cancelled", "Your order was cancelled."},
	},
	"el": {
		entity.OrderStatusProcessing:     {"Η παραγγελία έγινε δεκτή", "Το κατάστημα ετοιμάζει την παραγγελία σου."},
		entity.OrderStatusOutForDelivery: {"Έρχεται", "Η παραγγελία σου είναι καθ' οδόν."},
		entity.OrderStatusCompleted:      {"Παραδόθηκε", "Καλή όρεξη!"},
		entity.OrderStatusCancelled:      {"Η παραγγελία ακυρώθηκε", "Η παραγγελία σου ακυρώθηκε."},
	},
}

func messageFor(language string, status entity.OrderStatus) (statusMessage, bool) {
	messages, ok := statusMessages[language]
	if !ok {
		messages = statusMessages["en"]
	}
	msg, ok := messages[status]

	return msg, ok
}

// statusNotifier pushes order status changes to the session's device.
type statusNotifier struct {
	notifications service.NotificationService
	devices       repository.DeviceRepository
	device        *entity.Device
	logger        *slog.Logger
}

func (n *statusNotifier) OnStatusChange(_, next entity.OrderSnapshot) {
	msg, ok := messageFor(n.device.Language, next.Status)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	data := map[string]string{
		"order_id": strconv.FormatInt(next.OrderID, 10),
		"status":   next.Status.String(),
	}
	err := n.notifications.SendSingleNotification(ctx, n.device.FCMToken, msg.title, msg.body, data)
	if err == nil {
		return
	}

	if errors.Is(err, service.ErrNotificationTokenInvalid) {
		n.logger.Info("Removing unregistered device token", slog.String("session_id", n.device.SessionID))
		if err := errors.Ignore(n.devices.DeleteDevice(ctx, n.device.SessionID), repository.ErrDeviceNotFound); err != nil {
			n.logger.Warn("Failed to remove device", slog.Any("error", err))
		}

		return
	}

	n.logger.Warn("Failed to send order status notification",
		slog.Int64("order_id", next.OrderID),
		slog.String("status", next.Status.String()),
		slog.Any("error", err),
	)
}
