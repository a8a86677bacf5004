package notification

import (
	"context"
	"log/slog"

	"agrisense/config"
	"agrisense/internal/domain/service"

	"go.uber.org/fx"
)

// noopNotificationService is a no-op implementation when Firebase is disabled
type noopNotificationService struct {
	logger *slog.Logger
}

func (s *noopNotificationService) SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error {
	s.logger.Debug("[NoopNotification] Push notifications disabled, skipping",
		slog.String("topic", topic),
		slog.String("title", title),
	)

	return nil
}

// NotificationParams holds dependencies for NotificationService, injected by Fx
type NotificationParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationService creates a NotificationService based on configuration.
// Without Firebase credentials the advisory pipeline still runs, it just
// skips the push step.
func NewNotificationService(params NotificationParams) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	logger := params.Logger

	if cfg == nil || cfg.CredentialsPath == "" {
		logger.Info("Firebase not configured, using no-op notification service")

		return &noopNotificationService{logger: logger}, nil
	}

	logger.Info("Using Firebase Cloud Messaging for push notifications",
		slog.String("project_id", cfg.ProjectID),
	)

	return NewFirebaseService(params.Ctx, cfg.CredentialsPath)
}

// Module provides the notification service to the Fx container
var Module = fx.Options(
	fx.Provide(NewNotificationService),
)
