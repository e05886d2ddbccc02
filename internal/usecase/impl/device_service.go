package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "efood/internal/delivery/context"
	"efood/internal/domain/entity"
	domainerrors "efood/internal/domain/errors"
	"efood/internal/domain/repository"
	"efood/internal/domain/service"
	"efood/internal/errors"
	"efood/internal/usecase"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	orderAPI   service.OrderAPI
	logger     *slog.Logger
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository, orderAPI service.OrderAPI, logger *slog.Logger) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		orderAPI:   orderAPI,
		logger:     logger,
	}
}

// RegisterDevice stores the session's FCM token. Signed-in callers also get
// the token linked to their account upstream.
func (s *deviceService) RegisterDevice(ctx context.Context, sessionID string, info *usecase.DeviceInfo) (*entity.Device, error) {
	token := strings.TrimSpace(info.FCMToken)
	if token == "" {
		return nil, domainerrors.ErrDeviceTokenInvalid
	}

	device := &entity.Device{
		SessionID:    sessionID,
		FCMToken:     token,
		Platform:     info.Platform,
		Language:     info.Language,
		RegisteredAt: time.Now().UTC(),
	}
	if device.Language == "" {
		device.Language = languageFromContext(ctx)
	}

	if err := s.deviceRepo.SaveDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to save device")
	}

	if deliverycontext.GetUpstream(ctx).Authorization != "" {
		if err := s.orderAPI.RegisterDeviceToken(ctx, token); err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Failed to link device token upstream",
				slog.String("session_id", sessionID),
				slog.Any("error", err),
			)
		}
	}

	return device, nil
}

// ForgetDevice removes the session's device
func (s *deviceService) ForgetDevice(ctx context.Context, sessionID string) error {
	err := errors.Ignore(s.deviceRepo.DeleteDevice(ctx, sessionID), repository.ErrDeviceNotFound)

	return errors.Wrap(err, "failed to delete device")
}

// languageFromContext returns the primary language tag of the caller's Accept-Language.
func languageFromContext(ctx context.Context) string {
	header := deliverycontext.GetUpstream(ctx).AcceptLanguage
	if header == "" {
		return ""
	}

	tag, _, _ := strings.Cut(header, ",")
	tag, _, _ = strings.Cut(tag, ";")
	tag, _, _ = strings.Cut(tag, "-")

	return strings.ToLower(strings.TrimSpace(tag))
}
