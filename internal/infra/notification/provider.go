package notification

import (
	"context"
	"log/slog"

	"efood/config"
	"efood/internal/domain/service"
)

type noopService struct {
	logger *slog.Logger
}

// NewNoopService returns a notification service that only logs.
func NewNoopService(logger *slog.Logger) service.NotificationService {
	return &noopService{logger: logger}
}

func (s *noopService) SendSingleNotification(ctx context.Context, _, title, _ string, data map[string]string) error {
	s.logger.DebugContext(ctx, "Push notification skipped, Firebase not configured",
		slog.String("title", title),
		slog.Any("data", data),
	)

	return nil
}

// NewService picks Firebase when it is configured and the noop service otherwise
func NewService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if cfg.Firebase == nil || (cfg.Firebase.ProjectID == "" && cfg.Firebase.CredentialsPath == "") {
		logger.Info("Firebase not configured, push notifications disabled")

		return NewNoopService(logger), nil
	}

	svc, err := NewFirebaseService(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, err
	}

	logger.Info("Firebase push notifications enabled", slog.String("project_id", cfg.Firebase.ProjectID))

	return svc, nil
}
