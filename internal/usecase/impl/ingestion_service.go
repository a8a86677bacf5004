package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "agrisense/internal/delivery/context"
	"agrisense/internal/domain/constants"
	"agrisense/internal/domain/entity"
	domainerrors "agrisense/internal/domain/errors"
	"agrisense/internal/domain/repository"
	"agrisense/internal/domain/service"
	"agrisense/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ingestionService implements the IngestionUsecase interface.
type ingestionService struct {
	deviceRepo  repository.DeviceRepository
	readingRepo repository.ReadingRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// IngestionServiceParams holds dependencies for IngestionService, injected by Fx.
type IngestionServiceParams struct {
	fx.In

	DeviceRepo  repository.DeviceRepository
	ReadingRepo repository.ReadingRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewIngestionService is the constructor for ingestionService.
func NewIngestionService(params IngestionServiceParams) usecase.IngestionUsecase {
	return &ingestionService{
		deviceRepo:  params.DeviceRepo,
		readingRepo: params.ReadingRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

func (srv *ingestionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IngestReadings stores a batch of measurements reported by a device.
// The batch is inserted atomically: either every row lands or none do.
func (srv *ingestionService) IngestReadings(ctx context.Context, input *usecase.IngestReadingsInput) (*usecase.IngestOutput, error) {
	device, err := srv.deviceRepo.FindDeviceByDeviceID(ctx, input.DeviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			srv.log(ctx).Warn("Readings from unknown device", slog.String("device_id", input.DeviceID))

			return nil, errors.Wrap(domainerrors.ErrDeviceNotFound, "device not registered")
		}

		return nil, errors.Wrap(err, "failed to load device for ingestion")
	}

	if !device.IsActive {
		srv.log(ctx).Warn("Readings from inactive device", slog.String("device_id", input.DeviceID))

		return nil, errors.Wrap(domainerrors.ErrDeviceInactive, "device is deactivated")
	}

	// Missing timestamps default to the server receive time.
	receivedAt := time.Now()
	readings := make([]*entity.SensorReading, 0, len(input.Readings))
	for _, in := range input.Readings {
		timestamp := receivedAt
		if in.Timestamp != nil {
			timestamp = *in.Timestamp
		}

		readings = append(readings, &entity.SensorReading{
			DeviceID:   device.DeviceID,
			SensorType: in.SensorType,
			Value:      in.Value,
			Unit:       in.Unit,
			Timestamp:  timestamp,
		})
	}

	if err := srv.readingRepo.CreateReadings(ctx, readings); err != nil {
		srv.log(ctx).Error("Failed to store readings",
			slog.String("device_id", input.DeviceID),
			slog.Int("count", len(readings)),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to store readings")
	}

	// Change feed publishing is best-effort: the rows are already durable.
	event := &service.ChangeEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Table:     constants.TableSensorReadings,
		Kind:      constants.EventKindInsert,
		DeviceID:  device.DeviceID,
		UserID:    device.UserID.String(),
		RowCount:  len(readings),
	}
	if err := srv.publisher.PublishChangeEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish change event",
			slog.String("device_id", device.DeviceID),
			slog.Any("error", err),
		)
	}

	srv.log(ctx).Debug("Readings ingested",
		slog.String("device_id", device.DeviceID),
		slog.Int("count", len(readings)),
	)

	return &usecase.IngestOutput{Inserted: len(readings)}, nil
}
