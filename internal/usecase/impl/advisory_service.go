package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"agrisense/config"
	"agrisense/internal/analysis"
	deliverycontext "agrisense/internal/delivery/context"
	"agrisense/internal/domain/constants"
	"agrisense/internal/domain/entity"
	domainerrors "agrisense/internal/domain/errors"
	"agrisense/internal/domain/repository"
	"agrisense/internal/domain/service"
	"agrisense/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// advisoryService implements the AdvisoryUsecase interface.
type advisoryService struct {
	deviceRepo   repository.DeviceRepository
	readingRepo  repository.ReadingRepository
	advisoryRepo repository.AdvisoryRepository
	engine       service.AdvisoryEngine
	publisher    service.EventPublisher
	notifier     service.NotificationService
	settings     config.AdvisoryConfig
	logger       *slog.Logger
}

// AdvisoryServiceParams holds dependencies for AdvisoryService, injected by Fx.
type AdvisoryServiceParams struct {
	fx.In

	DeviceRepo   repository.DeviceRepository
	ReadingRepo  repository.ReadingRepository
	AdvisoryRepo repository.AdvisoryRepository
	Engine       service.AdvisoryEngine
	Publisher    service.EventPublisher
	Notifier     service.NotificationService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAdvisoryService is the constructor for advisoryService.
func NewAdvisoryService(params AdvisoryServiceParams) usecase.AdvisoryUsecase {
	return &advisoryService{
		deviceRepo:   params.DeviceRepo,
		readingRepo:  params.ReadingRepo,
		advisoryRepo: params.AdvisoryRepo,
		engine:       params.Engine,
		publisher:    params.Publisher,
		notifier:     params.Notifier,
		settings:     params.Config.AdvisorySettings(),
		logger:       params.Logger,
	}
}

func (srv *advisoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GenerateAdvisories runs the advisory pipeline for one device: load the
// recent readings, aggregate them, ask the engine for recommendations and
// persist the results. Skipped runs (no data, suppression window) succeed
// with an empty result and a reason.
func (srv *advisoryService) GenerateAdvisories(ctx context.Context, input *usecase.GenerateAdvisoriesInput) (*usecase.GenerateAdvisoriesOutput, error) {
	logger := srv.log(ctx)
	logger.Info("Starting advisory generation",
		slog.String("device_id", input.DeviceID),
		slog.Bool("force", input.ForceGenerate),
	)

	device, err := srv.resolveDevice(ctx, input.UserID, input.DeviceID)
	if err != nil {
		return nil, err
	}

	readings, err := srv.readingRepo.FindRecentByDevice(ctx, device.DeviceID, time.Now().Add(-srv.settings.ReadingWindow), srv.settings.ReadingLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load readings for advisory generation")
	}

	if len(readings) == 0 {
		logger.Info("No recent readings, skipping generation", slog.String("device_id", device.DeviceID))

		return &usecase.GenerateAdvisoriesOutput{
			Skipped:    true,
			SkipReason: usecase.SkipReasonNoRecentData,
		}, nil
	}

	// The suppression window keeps repeated triggers from burning engine
	// calls. A forced run bypasses it.
	if !input.ForceGenerate {
		hasRecent, err := srv.advisoryRepo.HasRecentAdvisories(ctx, device.DeviceID, time.Now().Add(-srv.settings.SuppressionWindow))
		if err != nil {
			return nil, errors.Wrap(err, "failed to check for recent advisories")
		}
		if hasRecent {
			logger.Info("Recent advisories exist, skipping generation", slog.String("device_id", device.DeviceID))

			return &usecase.GenerateAdvisoriesOutput{
				Skipped:    true,
				SkipReason: usecase.SkipReasonRecentAdvisories,
			}, nil
		}
	}

	summary := analysis.Summarize(readings)

	drafts, err := srv.engine.GenerateAdvisories(ctx, device, summary)
	if err != nil {
		logger.Error("Advisory engine failed",
			slog.String("device_id", device.DeviceID),
			slog.Any("error", err),
		)

		return nil, err
	}

	advisories := make([]*entity.Advisory, 0, len(drafts))
	for _, draft := range drafts {
		advisories = append(advisories, &entity.Advisory{
			UserID:       device.UserID,
			DeviceID:     device.DeviceID,
			Title:        draft.Title,
			Message:      draft.Message,
			Priority:     draft.Priority,
			Category:     draft.Category,
			SensorData:   summary,
			AIConfidence: draft.Confidence,
		})
	}

	if len(advisories) > 0 {
		if err := srv.advisoryRepo.CreateAdvisories(ctx, advisories); err != nil {
			return nil, errors.Wrap(err, "failed to store advisories")
		}

		srv.announceAdvisories(ctx, device, advisories)
	}

	logger.Debug("Advisory generation completed",
		slog.String("device_id", device.DeviceID),
		slog.Int("count", len(advisories)),
	)

	return &usecase.GenerateAdvisoriesOutput{Advisories: advisories}, nil
}

// announceAdvisories publishes the change event and pushes a notification
// to the owner's topic. Both are best-effort: the advisories are already durable.
func (srv *advisoryService) announceAdvisories(ctx context.Context, device *entity.Device, advisories []*entity.Advisory) {
	logger := srv.log(ctx)

	event := &service.ChangeEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Table:     constants.TableRecommendations,
		Kind:      constants.EventKindInsert,
		DeviceID:  device.DeviceID,
		UserID:    device.UserID.String(),
		RowCount:  len(advisories),
	}
	if err := srv.publisher.PublishChangeEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish change event",
			slog.String("device_id", device.DeviceID),
			slog.Any("error", err),
		)
	}

	topic := userAdvisoryTopic(device.UserID)
	title := advisories[0].Title
	body := fmt.Sprintf("%d new recommendations for %s", len(advisories), device.DeviceName)
	data := map[string]string{
		"device_id": device.DeviceID,
		"count":     fmt.Sprintf("%d", len(advisories)),
	}
	if err := srv.notifier.SendTopicNotification(ctx, topic, title, body, data); err != nil {
		logger.Warn("Failed to push advisory notification",
			slog.String("topic", topic),
			slog.Any("error", err),
		)
	}
}

// userAdvisoryTopic is the FCM topic that the owner's dashboard clients subscribe to.
func userAdvisoryTopic(userID uuid.UUID) string {
	return "advisories-" + userID.String()
}

// ListAdvisories returns the user's advisories, newest first.
func (srv *advisoryService) ListAdvisories(ctx context.Context, input *usecase.ListAdvisoriesInput) ([]*entity.Advisory, error) {
	filter := repository.AdvisoryListFilter{
		UnreadOnly:       input.UnreadOnly,
		IncludeDismissed: input.IncludeDismissed,
		Limit:            input.Limit,
	}

	advisories, err := srv.advisoryRepo.FindAdvisoriesByUser(ctx, input.UserID, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list advisories")
	}

	return advisories, nil
}

// MarkAdvisoryRead marks one of the user's advisories as read.
func (srv *advisoryService) MarkAdvisoryRead(ctx context.Context, userID, advisoryID uuid.UUID) error {
	if err := srv.resolveOwnedAdvisory(ctx, userID, advisoryID); err != nil {
		return err
	}

	if err := srv.advisoryRepo.MarkRead(ctx, advisoryID); err != nil {
		return errors.Wrap(err, "failed to mark advisory as read")
	}

	return nil
}

// MarkAdvisoryDismissed dismisses one of the user's advisories.
func (srv *advisoryService) MarkAdvisoryDismissed(ctx context.Context, userID, advisoryID uuid.UUID) error {
	if err := srv.resolveOwnedAdvisory(ctx, userID, advisoryID); err != nil {
		return err
	}

	if err := srv.advisoryRepo.MarkDismissed(ctx, advisoryID); err != nil {
		return errors.Wrap(err, "failed to dismiss advisory")
	}

	return nil
}

// resolveDevice loads the device and enforces ownership.
func (srv *advisoryService) resolveDevice(ctx context.Context, userID uuid.UUID, deviceID string) (*entity.Device, error) {
	device, err := srv.deviceRepo.FindDeviceByDeviceID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDeviceNotFound, "device not found")
		}

		return nil, errors.Wrap(err, "failed to load device")
	}

	if device.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrDeviceOwnershipViolation, "device belongs to another account")
	}

	return device, nil
}

// resolveOwnedAdvisory verifies the advisory exists and belongs to the user.
// Advisories owned by other accounts read as not found.
func (srv *advisoryService) resolveOwnedAdvisory(ctx context.Context, userID, advisoryID uuid.UUID) error {
	advisory, err := srv.advisoryRepo.FindAdvisoryByID(ctx, advisoryID)
	if err != nil {
		if errors.Is(err, repository.ErrAdvisoryNotFound) {
			return errors.Wrap(domainerrors.ErrAdvisoryNotFound, "advisory not found")
		}

		return errors.Wrap(err, "failed to load advisory")
	}

	if advisory.UserID != userID {
		return errors.Wrap(domainerrors.ErrAdvisoryNotFound, "advisory not found")
	}

	return nil
}
