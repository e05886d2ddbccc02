package impl

import (
	"context"
	"testing"
	"time"

	"efood/config"
	"efood/internal/domain/entity"
	domainerrors "efood/internal/domain/errors"
	"efood/internal/domain/repository"
	"efood/internal/domain/service"
	"efood/internal/domain/tracking"
	mockRepo "efood/internal/mocks/repository"
	mockService "efood/internal/mocks/service"
	"efood/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const trackedOrderID int64 = 42

// trackingServiceFixtures holds all test dependencies for tracking service tests.
type trackingServiceFixtures struct {
	service       usecase.TrackingUsecase
	orderAPI      *mockService.MockOrderAPI
	pushChannel   *mockService.MockPushChannel
	deviceRepo    *mockRepo.MockDeviceRepository
	notifications *mockService.MockNotificationService
}

func createTestTrackingService(t *testing.T, fetchTimeout time.Duration) trackingServiceFixtures {
	orderAPI := mockService.NewMockOrderAPI(t)
	pushChannel := mockService.NewMockPushChannel(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notifications := mockService.NewMockNotificationService(t)
	cfg := &config.Config{Tracking: &config.TrackingConfig{FetchTimeout: fetchTimeout}}

	service := NewTrackingService(cfg, orderAPI, pushChannel, deviceRepo, notifications, newTestLogger())

	return trackingServiceFixtures{
		service:       service,
		orderAPI:      orderAPI,
		pushChannel:   pushChannel,
		deviceRepo:    deviceRepo,
		notifications: notifications,
	}
}

func trackedSnapshot(status entity.OrderStatus) *entity.OrderSnapshot {
	return &entity.OrderSnapshot{
		OrderID:     trackedOrderID,
		Status:      status,
		Destination: entity.Coordinate{Latitude: 40.64, Longitude: 22.94},
	}
}

// newSubscription returns a subscription mock fed by the returned channel.
func newSubscription(t *testing.T) (*mockService.MockSubscription, chan entity.TrackingEvent) {
	events := make(chan entity.TrackingEvent, 8)
	sub := mockService.NewMockSubscription(t)
	sub.EXPECT().Events().Return((<-chan entity.TrackingEvent)(events))
	sub.EXPECT().Unsubscribe().Return(nil).Maybe()

	return sub, events
}

func openSession(t *testing.T, fx trackingServiceFixtures, ctx context.Context) *tracking.Session {
	t.Helper()

	session, err := fx.service.Open(ctx, sessionID, trackedOrderID)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	return session
}

func TestTrackingService_Open_FetchFailureNeverSubscribes(t *testing.T) {
	fx := createTestTrackingService(t, time.Second)
	ctx := context.Background()

	fx.orderAPI.EXPECT().
		FetchOrder(mock.Anything, trackedOrderID).
		Return(nil, domainerrors.ErrOrderNotFound)

	session, err := fx.service.Open(ctx, sessionID, trackedOrderID)

	assert.Nil(t, session)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestTrackingService_Open_FetchTimeout(t *testing.T) {
	fx := createTestTrackingService(t, 10*time.Millisecond)
	ctx := context.Background()

	fx.orderAPI.EXPECT().
		FetchOrder(mock.Anything, trackedOrderID).
		RunAndReturn(func(ctx context.Context, _ int64) (*entity.OrderSnapshot, error) {
			<-ctx.Done()

			return nil, errors.Wrap(ctx.Err(), "GET /client/orders/42")
		})

	_, err := fx.service.Open(ctx, sessionID, trackedOrderID)

	assert.ErrorIs(t, err, domainerrors.ErrOrderFetchFailed)
}

func TestTrackingService_Open_WithoutDevice(t *testing.T) {
	fx := createTestTrackingService(t, time.Second)
	ctx := context.Background()
	sub, events := newSubscription(t)

	fx.orderAPI.EXPECT().FetchOrder(mock.Anything, trackedOrderID).Return(trackedSnapshot(entity.OrderStatusProcessing), nil)
	fx.pushChannel.EXPECT().Subscribe(ctx, trackedOrderID).Return(sub, nil)
	fx.deviceRepo.EXPECT().FindDevice(ctx, sessionID).Return(nil, repository.ErrDeviceNotFound)

	session := openSession(t, fx, ctx)
	initial := <-session.Updates()
	assert.Equal(t, entity.OrderStatusProcessing, initial.Status)

	events <- entity.NewOrderStatusEvent(trackedOrderID, entity.OrderStatusOutForDelivery)
	select {
	case snapshot := <-session.Updates():
		assert.Equal(t, entity.OrderStatusOutForDelivery, snapshot.Status)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for update")
	}
}

func TestTrackingService_Open_SubscribeFailure(t *testing.T) {
	fx := createTestTrackingService(t, time.Second)
	ctx := context.Background()

	fx.orderAPI.EXPECT().FetchOrder(mock.Anything, trackedOrderID).Return(trackedSnapshot(entity.OrderStatusPending), nil)
	fx.pushChannel.EXPECT().Subscribe(ctx, trackedOrderID).Return(nil, errors.New("hub closed"))

	session, err := fx.service.Open(ctx, sessionID, trackedOrderID)

	assert.Nil(t, session)
	assert.Error(t, err)
}

func TestTrackingService_Open_NotifiesDevice(t *testing.T) {
	fx := createTestTrackingService(t, time.Second)
	ctx := context.Background()
	sub, events := newSubscription(t)
	device := &entity.Device{SessionID: sessionID, FCMToken: "fcm-1", Language: "en"}
	sent := make(chan map[string]string, 1)

	fx.orderAPI.EXPECT().FetchOrder(mock.Anything, trackedOrderID).Return(trackedSnapshot(entity.OrderStatusProcessing), nil)
	fx.pushChannel.EXPECT().Subscribe(ctx, trackedOrderID).Return(sub, nil)
	fx.deviceRepo.EXPECT().FindDevice(ctx, sessionID).Return(device, nil)
	fx.notifications.EXPECT().
		SendSingleNotification(mock.Anything, "fcm-1", "On its way", "Your order is out for delivery.", mock.Anything).
		Run(func(_ context.Context, _, _, _ string, data map[string]string) { sent <- data }).
		Return(nil)

	openSession(t, fx, ctx)
	events <- entity.NewOrderStatusEvent(trackedOrderID, entity.OrderStatusOutForDelivery)

	select {
	case data := <-sent:
		assert.Equal(t, map[string]string{"order_id": "42", "status": "out_for_delivery"}, data)
	case <-time.After(2 * time.Second):
		t.Fatal("notification not sent")
	}
}

func TestTrackingService_Open_DropsUnregisteredToken(t *testing.T) {
	fx := createTestTrackingService(t, time.Second)
	ctx := context.Background()
	sub, events := newSubscription(t)
	device := &entity.Device{SessionID: sessionID, FCMToken: "stale", Language: "el"}
	deleted := make(chan struct{})

	fx.orderAPI.EXPECT().FetchOrder(mock.Anything, trackedOrderID).Return(trackedSnapshot(entity.OrderStatusOutForDelivery), nil)
	fx.pushChannel.EXPECT().Subscribe(ctx, trackedOrderID).Return(sub, nil)
	fx.deviceRepo.EXPECT().FindDevice(ctx, sessionID).Return(device, nil)
	fx.notifications.EXPECT().
		SendSingleNotification(mock.Anything, "stale", "Παραδόθηκε", "Καλή όρεξη!", mock.Anything).
		Return(errors.Wrap(service.ErrNotificationTokenInvalid, "unregistered"))
	fx.deviceRepo.EXPECT().
		DeleteDevice(mock.Anything, sessionID).
		Run(func(context.Context, string) { close(deleted) }).
		Return(nil)

	session := openSession(t, fx, ctx)
	events <- entity.NewOrderStatusEvent(trackedOrderID, entity.OrderStatusCompleted)

	select {
	case <-deleted:
	case <-time.After(2 * time.Second):
		t.Fatal("device not removed")
	}
	<-session.Done()
	assert.Equal(t, tracking.Closed, session.State())
}

func TestMessageFor_FallsBackToEnglish(t *testing.T) {
	msg, ok := messageFor("fr", entity.OrderStatusCancelled)

	require.True(t, ok)
	assert.Equal(t, "Order cancelled", msg.title)

	_, ok = messageFor("en", entity.OrderStatusPending)
	assert.False(t, ok)
}
