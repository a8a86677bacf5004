package impl

import (
	"context"
	"testing"
	"time"

	"agrisense/config"
	"agrisense/internal/domain/entity"
	mockRepo "agrisense/internal/mocks/repository"
	mockSvc "agrisense/internal/mocks/service"
	"agrisense/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service       usecase.DeviceUsecase
	deviceRepo    *mockRepo.MockDeviceRepository
	readingRepo   *mockRepo.MockReadingRepository
	qrcodeService *mockSvc.MockQRCodeService
	exporter      *mockSvc.MockReadingExporter
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	readingRepo := mockRepo.NewMockReadingRepository(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)
	exporter := mockSvc.NewMockReadingExporter(t)

	service := NewDeviceService(DeviceServiceParams{
		DeviceRepo:    deviceRepo,
		ReadingRepo:   readingRepo,
		QRCodeService: qrcodeService,
		Exporter:      exporter,
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})

	return deviceServiceFixtures{
		service:       service,
		deviceRepo:    deviceRepo,
		readingRepo:   readingRepo,
		qrcodeService: qrcodeService,
		exporter:      exporter,
	}
}

func TestDeviceService_RegisterDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	input := &usecase.RegisterDeviceInput{
		UserID:     uuid.New(),
		DeviceID:   "greenhouse-01",
		DeviceName: "North Greenhouse",
		DeviceType: "ESP32-S3",
		Location:   "north field",
	}

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.Device")).
		Run(func(ctx context.Context, device *entity.Device) {
			device.ID = uuid.New()
		}).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.DeviceID, device.DeviceID)
	assert.Equal(t, "ESP32-S3", device.DeviceType)
	assert.Equal(t, input.UserID, device.UserID)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_DefaultType(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	input := &usecase.RegisterDeviceInput{
		UserID:     uuid.New(),
		DeviceID:   "greenhouse-02",
		DeviceName: "South Greenhouse",
	}

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.Device")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultDeviceType, device.DeviceType)
}

func TestDeviceService_ListDevices_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := []*entity.Device{
		{DeviceID: "greenhouse-02", UserID: userID},
		{DeviceID: "greenhouse-01", UserID: userID},
	}

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return(stored, nil)

	devices, err := fx.service.ListDevices(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, devices, 2)
	assert.Equal(t, "greenhouse-02", devices[0].DeviceID)
}

func TestDeviceService_SetDeviceActive_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.Device{
		DeviceID: "greenhouse-01",
		UserID:   userID,
		IsActive: true,
	}

	fx.deviceRepo.EXPECT().FindDeviceByDeviceID(ctx, "greenhouse-01").Return(existing, nil)
	fx.deviceRepo.EXPECT().UpdateActive(ctx, "greenhouse-01", false).Return(nil)

	device, err := fx.service.SetDeviceActive(ctx, userID, "greenhouse-01", false)

	require.NoError(t, err)
	assert.False(t, device.IsActive)
}

func TestDeviceService_GetDeviceQR_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.Device{DeviceID: "greenhouse-01", UserID: userID}
	pngBytes := []byte{0x89, 0x50, 0x4E, 0x47}

	fx.deviceRepo.EXPECT().FindDeviceByDeviceID(ctx, "greenhouse-01").Return(existing, nil)
	fx.qrcodeService.EXPECT().GenerateDeviceQR("greenhouse-01").Return(pngBytes, nil)

	qr, err := fx.service.GetDeviceQR(ctx, userID, "greenhouse-01")

	require.NoError(t, err)
	assert.Equal(t, pngBytes, qr)
}

func TestDeviceService_ListReadings_DefaultsApplied(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.Device{DeviceID: "greenhouse-01", UserID: userID}
	stored := []*entity.SensorReading{
		{DeviceID: "greenhouse-01", SensorType: "temperature", Value: 24.5, Unit: "°C", Timestamp: time.Now()},
	}

	fx.deviceRepo.EXPECT().FindDeviceByDeviceID(ctx, "greenhouse-01").Return(existing, nil)
	fx.readingRepo.EXPECT().
		FindRecentByDevice(ctx, "greenhouse-01", mock.AnythingOfType("time.Time"), config.DefaultReadingLimit).
		Run(func(ctx context.Context, deviceID string, since time.Time, limit int) {
			assert.WithinDuration(t, time.Now().Add(-config.DefaultReadingWindow), since, time.Minute)
		}).
		Return(stored, nil)

	readings, err := fx.service.ListReadings(ctx, &usecase.ListReadingsInput{
		UserID:   userID,
		DeviceID: "greenhouse-01",
	})

	require.NoError(t, err)
	assert.Len(t, readings, 1)
}

func TestDeviceService_ListReadings_ExplicitWindow(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.Device{DeviceID: "greenhouse-01", UserID: userID}

	fx.deviceRepo.EXPECT().FindDeviceByDeviceID(ctx, "greenhouse-01").Return(existing, nil)
	fx.readingRepo.EXPECT().
		FindRecentByDevice(ctx, "greenhouse-01", mock.AnythingOfType("time.Time"), 10).
		Run(func(ctx context.Context, deviceID string, since time.Time, limit int) {
			assert.WithinDuration(t, time.Now().Add(-time.Hour), since, time.Minute)
		}).
		Return([]*entity.SensorReading{}, nil)

	readings, err := fx.service.ListReadings(ctx, &usecase.ListReadingsInput{
		UserID:   userID,
		DeviceID: "greenhouse-01",
		Window:   time.Hour,
		Limit:    10,
	})

	require.NoError(t, err)
	assert.Empty(t, readings)
}

func TestDeviceService_ExportReadings_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.Device{DeviceID: "greenhouse-01", UserID: userID}
	stored := []*entity.SensorReading{
		{DeviceID: "greenhouse-01", SensorType: "temperature", Value: 24.5, Unit: "°C", Timestamp: time.Now()},
		{DeviceID: "greenhouse-01", SensorType: "humidity", Value: 61.0, Unit: "%", Timestamp: time.Now()},
	}

	fx.deviceRepo.EXPECT().FindDeviceByDeviceID(ctx, "greenhouse-01").Return(existing, nil)
	fx.readingRepo.EXPECT().
		FindRecentByDevice(ctx, "greenhouse-01", mock.AnythingOfType("time.Time"), config.DefaultReadingLimit).
		Return(stored, nil)
	fx.exporter.EXPECT().
		ExportReadings(ctx, existing, stored).
		Return("readings/greenhouse-01/20260830T120000Z.csv", nil)

	output, err := fx.service.ExportReadings(ctx, userID, "greenhouse-01")

	require.NoError(t, err)
	assert.Equal(t, "readings/greenhouse-01/20260830T120000Z.csv", output.ObjectKey)
	assert.Equal(t, 2, output.RowCount)
}
