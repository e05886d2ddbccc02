package service

import (
	"context"

	"efood/internal/domain/entity"
)

// OrderAPI is the upstream order service the gateway talks to.
type OrderAPI interface {
	// FetchOrder returns the authoritative current snapshot of an order.
	FetchOrder(ctx context.Context, orderID int64) (*entity.OrderSnapshot, error)

	// SubmitOrder places an order for one store's cart.
	SubmitOrder(ctx context.Context, submission *entity.OrderSubmission) (*entity.OrderReceipt, error)

	// RegisterDeviceToken links an FCM token to the signed-in customer upstream.
	RegisterDeviceToken(ctx context.Context, fcmToken string) error
}
