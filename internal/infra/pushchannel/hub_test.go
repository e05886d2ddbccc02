package pushchannel

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"efood/internal/domain/entity"
	"efood/internal/domain/tracking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderID int64 = 7

func newTestHub(buffer int, deliveryTimeout time.Duration) *Hub {
	return NewHub(buffer, deliveryTimeout, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func receive(t *testing.T, ch <-chan entity.TrackingEvent) entity.TrackingEvent {
	t.Helper()

	select {
	case event, ok := <-ch:
		require.True(t, ok, "events channel closed")

		return event
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for an event")

		return entity.TrackingEvent{}
	}
}

func assertClosed(t *testing.T, ch <-chan entity.TrackingEvent) {
	t.Helper()

	select {
	case _, ok := <-ch:
		assert.False(t, ok, "expected closed channel")
	case <-time.After(time.Second):
		t.Fatal("events channel was not closed")
	}
}

func TestHub_FansOutPerOrder(t *testing.T) {
	hub := newTestHub(4, 10*time.Millisecond)
	ctx := context.Background()

	first, err := hub.Subscribe(ctx, orderID)
	require.NoError(t, err)
	second, err := hub.Subscribe(ctx, orderID)
	require.NoError(t, err)
	other, err := hub.Subscribe(ctx, orderID+1)
	require.NoError(t, err)

	delivered := hub.Dispatch(ctx, entity.NewOrderStatusEvent(orderID, entity.OrderStatusProcessing))

	assert.Equal(t, 2, delivered)
	assert.Equal(t, entity.OrderStatusProcessing, receive(t, first.Events()).Status)
	assert.Equal(t, entity.OrderStatusProcessing, receive(t, second.Events()).Status)
	assert.Empty(t, other.Events())
}

func TestHub_UnsubscribeClosesEvents(t *testing.T) {
	hub := newTestHub(4, 10*time.Millisecond)

	sub, err := hub.Subscribe(context.Background(), orderID)
	require.NoError(t, err)
	require.Equal(t, 1, hub.SubscriberCount(orderID))

	require.NoError(t, sub.Unsubscribe())
	require.NoError(t, sub.Unsubscribe())

	assertClosed(t, sub.Events())
	assert.Equal(t, 0, hub.SubscriberCount(orderID))
	assert.Equal(t, 0, hub.Dispatch(context.Background(), entity.NewOrderStatusEvent(orderID, entity.OrderStatusCompleted)))
}

func TestHub_ContextCancelUnsubscribes(t *testing.T) {
	hub := newTestHub(4, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	sub, err := hub.Subscribe(ctx, orderID)
	require.NoError(t, err)

	cancel()

	assertClosed(t, sub.Events())
	assert.Eventually(t, func() bool { return hub.SubscriberCount(orderID) == 0 }, time.Second, 5*time.Millisecond)
}

func TestHub_FullBufferDropsLocationKeepsStatus(t *testing.T) {
	hub := newTestHub(1, 50*time.Millisecond)
	ctx := context.Background()

	sub, err := hub.Subscribe(ctx, orderID)
	require.NoError(t, err)

	require.Equal(t, 1, hub.Dispatch(ctx, entity.NewOrderStatusEvent(orderID, entity.OrderStatusOutForDelivery)))
	assert.Equal(t, 0, hub.Dispatch(ctx, entity.NewDriverLocationEvent(orderID, 1, 1)))

	// A status event waits for room instead of being dropped.
	result := make(chan int, 1)
	go func() {
		result <- hub.Dispatch(ctx, entity.NewOrderStatusEvent(orderID, entity.OrderStatusCompleted))
	}()

	assert.Equal(t, entity.OrderStatusOutForDelivery, receive(t, sub.Events()).Status)
	assert.Equal(t, 1, <-result)
	assert.Equal(t, entity.OrderStatusCompleted, receive(t, sub.Events()).Status)
}

func TestHub_StatusEvictsBufferedLocation(t *testing.T) {
	hub := newTestHub(3, 20*time.Millisecond)
	ctx := context.Background()

	sub, err := hub.Subscribe(ctx, orderID)
	require.NoError(t, err)

	require.Equal(t, 1, hub.Dispatch(ctx, entity.NewDriverLocationEvent(orderID, 1, 1)))
	require.Equal(t, 1, hub.Dispatch(ctx, entity.NewOrderStatusEvent(orderID, entity.OrderStatusOutForDelivery)))
	require.Equal(t, 1, hub.Dispatch(ctx, entity.NewDriverLocationEvent(orderID, 2, 2)))
	require.Equal(t, 0, hub.Dispatch(ctx, entity.NewDriverLocationEvent(orderID, 3, 3)))

	// Nobody is reading, yet the terminal status still gets in.
	assert.Equal(t, 1, hub.Dispatch(ctx, entity.NewOrderStatusEvent(orderID, entity.OrderStatusCompleted)))

	assert.Equal(t, entity.OrderStatusOutForDelivery, receive(t, sub.Events()).Status)
	assert.Equal(t, 2.0, receive(t, sub.Events()).Latitude)
	assert.Equal(t, entity.OrderStatusCompleted, receive(t, sub.Events()).Status)
	assert.Empty(t, sub.Events())
}

func TestHub_StatusDeliveryTimesOut(t *testing.T) {
	hub := newTestHub(1, 20*time.Millisecond)
	ctx := context.Background()

	_, err := hub.Subscribe(ctx, orderID)
	require.NoError(t, err)

	require.Equal(t, 1, hub.Dispatch(ctx, entity.NewOrderStatusEvent(orderID, entity.OrderStatusProcessing)))
	assert.Equal(t, 0, hub.Dispatch(ctx, entity.NewOrderStatusEvent(orderID, entity.OrderStatusOutForDelivery)))
}

func TestHub_CloseEndsSubscriptions(t *testing.T) {
	hub := newTestHub(4, 10*time.Millisecond)

	sub, err := hub.Subscribe(context.Background(), orderID)
	require.NoError(t, err)

	require.NoError(t, hub.Close())

	assertClosed(t, sub.Events())
	_, err = hub.Subscribe(context.Background(), orderID)
	assert.ErrorIs(t, err, ErrHubClosed)
}

func TestHub_TerminalStatusReachesSessionBehindSlowObserver(t *testing.T) {
	hub := newTestHub(16, 20*time.Millisecond)
	ctx := context.Background()
	release := make(chan struct{})
	defer close(release)

	sub, err := hub.Subscribe(ctx, orderID)
	require.NoError(t, err)
	session := tracking.NewSession(
		entity.OrderSnapshot{OrderID: orderID, Status: entity.OrderStatusProcessing},
		sub,
		tracking.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		tracking.WithObserver(tracking.ObserverFunc(func(_, _ entity.OrderSnapshot) { <-release })),
	)
	t.Cleanup(func() { _ = session.Close() })

	require.Equal(t, 1, hub.Dispatch(ctx, entity.NewOrderStatusEvent(orderID, entity.OrderStatusOutForDelivery)))
	for i := range 20 {
		hub.Dispatch(ctx, entity.NewDriverLocationEvent(orderID, float64(i+1), 0))
	}
	assert.Equal(t, 1, hub.Dispatch(ctx, entity.NewOrderStatusEvent(orderID, entity.OrderStatusCompleted)))

	select {
	case <-session.Done():
	case <-time.After(time.Second):
		t.Fatal("session did not close after the terminal status")
	}
	assert.Equal(t, entity.OrderStatusCompleted, session.Snapshot().Status)
	assert.Equal(t, tracking.Closed, session.State())
}
