package impl

import (
	"context"
	"log/slog"
	"time"

	"agrisense/config"
	deliverycontext "agrisense/internal/delivery/context"
	"agrisense/internal/domain/entity"
	domainerrors "agrisense/internal/domain/errors"
	"agrisense/internal/domain/repository"
	"agrisense/internal/domain/service"
	"agrisense/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	deviceRepo    repository.DeviceRepository
	readingRepo   repository.ReadingRepository
	qrcodeService service.QRCodeService
	exporter      service.ReadingExporter
	settings      config.AdvisoryConfig
	logger        *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo    repository.DeviceRepository
	ReadingRepo   repository.ReadingRepository
	QRCodeService service.QRCodeService
	Exporter      service.ReadingExporter
	Config        *config.Config
	Logger        *slog.Logger
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo:    params.DeviceRepo,
		readingRepo:   params.ReadingRepo,
		qrcodeService: params.QRCodeService,
		exporter:      params.Exporter,
		settings:      params.Config.AdvisorySettings(),
		logger:        params.Logger,
	}
}

func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterDevice registers a field device under the user's account.
func (srv *deviceService) RegisterDevice(ctx context.Context, input *usecase.RegisterDeviceInput) (*entity.Device, error) {
	srv.log(ctx).Info("Registering device",
		slog.String("device_id", input.DeviceID),
		slog.Any("userID", input.UserID),
	)

	deviceType := input.DeviceType
	if deviceType == "" {
		deviceType = entity.DefaultDeviceType
	}

	newDevice := &entity.Device{
		DeviceID:   input.DeviceID,
		DeviceName: input.DeviceName,
		DeviceType: deviceType,
		Location:   input.Location,
		UserID:     input.UserID,
		IsActive:   true,
	}

	if err := srv.deviceRepo.CreateDevice(ctx, newDevice); err != nil {
		srv.log(ctx).Warn("Device registration failed",
			slog.String("device_id", input.DeviceID),
			slog.Any("error", err),
		)

		if errors.Is(err, repository.ErrDuplicateDevice) {
			return nil, errors.Wrap(domainerrors.ErrDeviceAlreadyExists, "device ID already registered")
		}

		return nil, errors.Wrap(err, "failed to create device")
	}

	srv.log(ctx).Debug("Device registered", slog.String("device_id", newDevice.DeviceID))

	return newDevice, nil
}

// ListDevices returns all devices registered under the user's account.
func (srv *deviceService) ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error) {
	devices, err := srv.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	return devices, nil
}

// SetDeviceActive toggles ingestion for a device the user owns.
func (srv *deviceService) SetDeviceActive(ctx context.Context, userID uuid.UUID, deviceID string, active bool) (*entity.Device, error) {
	device, err := srv.resolveOwnedDevice(ctx, userID, deviceID)
	if err != nil {
		return nil, err
	}

	if err := srv.deviceRepo.UpdateActive(ctx, deviceID, active); err != nil {
		return nil, errors.Wrap(err, "failed to update device active state")
	}

	device.IsActive = active

	srv.log(ctx).Info("Device active state changed",
		slog.String("device_id", deviceID),
		slog.Bool("is_active", active),
	)

	return device, nil
}

// GetDeviceQR returns a provisioning QR code PNG for a device the user owns.
func (srv *deviceService) GetDeviceQR(ctx context.Context, userID uuid.UUID, deviceID string) ([]byte, error) {
	if _, err := srv.resolveOwnedDevice(ctx, userID, deviceID); err != nil {
		return nil, err
	}

	pngBytes, err := srv.qrcodeService.GenerateDeviceQR(deviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate device QR code")
	}

	return pngBytes, nil
}

// ListReadings returns the device's readings within the trailing window, newest first.
func (srv *deviceService) ListReadings(ctx context.Context, input *usecase.ListReadingsInput) ([]*entity.SensorReading, error) {
	if _, err := srv.resolveOwnedDevice(ctx, input.UserID, input.DeviceID); err != nil {
		return nil, err
	}

	window := input.Window
	if window <= 0 {
		window = srv.settings.ReadingWindow
	}
	limit := input.Limit
	if limit <= 0 {
		limit = srv.settings.ReadingLimit
	}

	readings, err := srv.readingRepo.FindRecentByDevice(ctx, input.DeviceID, time.Now().Add(-window), limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list readings")
	}

	return readings, nil
}

// ExportReadings archives the device's recent readings as a CSV object.
func (srv *deviceService) ExportReadings(ctx context.Context, userID uuid.UUID, deviceID string) (*usecase.ExportReadingsOutput, error) {
	device, err := srv.resolveOwnedDevice(ctx, userID, deviceID)
	if err != nil {
		return nil, err
	}

	readings, err := srv.readingRepo.FindRecentByDevice(ctx, deviceID, time.Now().Add(-srv.settings.ReadingWindow), srv.settings.ReadingLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load readings for export")
	}

	objectKey, err := srv.exporter.ExportReadings(ctx, device, readings)
	if err != nil {
		srv.log(ctx).Error("Readings export failed",
			slog.String("device_id", deviceID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to export readings")
	}

	return &usecase.ExportReadingsOutput{
		ObjectKey: objectKey,
		RowCount:  len(readings),
	}, nil
}

// resolveOwnedDevice loads a device and enforces that the user owns it.
func (srv *deviceService) resolveOwnedDevice(ctx context.Context, userID uuid.UUID, deviceID string) (*entity.Device, error) {
	device, err := srv.deviceRepo.FindDeviceByDeviceID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDeviceNotFound, "device not found")
		}

		return nil, errors.Wrap(err, "failed to load device")
	}

	if device.UserID != userID {
		srv.log(ctx).Warn("Device ownership violation",
			slog.String("device_id", deviceID),
			slog.Any("userID", userID),
		)

		return nil, errors.Wrap(domainerrors.ErrDeviceOwnershipViolation, "device belongs to another account")
	}

	return device, nil
}
