package impl

import (
	"context"
	"log/slog"
	"time"

	"efood/config"
	"efood/internal/domain/entity"
	domainerrors "efood/internal/domain/errors"
	"efood/internal/domain/repository"
	"efood/internal/domain/service"
	"efood/internal/domain/tracking"
	"efood/internal/errors"
	"efood/internal/usecase"
)

type trackingService struct {
	orderAPI      service.OrderAPI
	pushChannel   service.PushChannel
	devices       repository.DeviceRepository
	notifications service.NotificationService
	fetchTimeout  time.Duration
	logger        *slog.Logger
}

// NewTrackingService creates a new tracking service instance
func NewTrackingService(
	cfg *config.Config,
	orderAPI service.OrderAPI,
	pushChannel service.PushChannel,
	devices repository.DeviceRepository,
	notifications service.NotificationService,
	logger *slog.Logger,
) usecase.TrackingUsecase {
	return &trackingService{
		orderAPI:      orderAPI,
		pushChannel:   pushChannel,
		devices:       devices,
		notifications: notifications,
		fetchTimeout:  cfg.Tracking.FetchTimeout,
		logger:        logger,
	}
}

// Open fetches the snapshot first and only subscribes once it is known.
func (s *trackingService) Open(ctx context.Context, sessionID string, orderID int64) (*tracking.Session, error) {
	snapshot, err := s.fetch(ctx, orderID)
	if err != nil {
		return nil, err
	}

	sub, err := s.pushChannel.Subscribe(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to subscribe to order events")
	}

	logger := s.logger.With(slog.Int64("order_id", orderID), slog.String("session_id", sessionID))
	opts := []tracking.Option{tracking.WithLogger(logger)}
	if device := s.findDevice(ctx, sessionID); device != nil {
		opts = append(opts, tracking.WithObserver(&statusNotifier{
			notifications: s.notifications,
			devices:       s.devices,
			device:        device,
			logger:        logger,
		}))
	}

	session := tracking.NewSession(*snapshot, sub, opts...)
	logger.InfoContext(ctx, "Tracking session opened",
		slog.String("status", snapshot.Status.String()),
		slog.String("state", session.State().String()),
	)

	return session, nil
}

func (s *trackingService) fetch(ctx context.Context, orderID int64) (*entity.OrderSnapshot, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	snapshot, err := s.orderAPI.FetchOrder(fetchCtx, orderID)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, domainerrors.ErrOrderFetchFailed.WithDetails("timed out")
		}

		return nil, err
	}

	// Events are matched on the requested id.
	snapshot.OrderID = orderID

	return snapshot, nil
}

func (s *trackingService) findDevice(ctx context.Context, sessionID string) *entity.Device {
	device, err := s.devices.FindDevice(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, repository.ErrDeviceNotFound) {
			s.logger.WarnContext(ctx, "Failed to look up device, notifications disabled for this session",
				slog.String("session_id", sessionID),
				slog.Any("error", err),
			)
		}

		return nil
	}

	return device
}
