package impl

import (
	"context"
	"testing"
	"time"

	"agrisense/internal/domain/constants"
	"agrisense/internal/domain/entity"
	domainerrors "agrisense/internal/domain/errors"
	"agrisense/internal/domain/repository"
	"agrisense/internal/domain/service"
	mockRepo "agrisense/internal/mocks/repository"
	mockSvc "agrisense/internal/mocks/service"
	"agrisense/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ingestionServiceFixtures holds all test dependencies for ingestion service tests.
type ingestionServiceFixtures struct {
	service     usecase.IngestionUsecase
	deviceRepo  *mockRepo.MockDeviceRepository
	readingRepo *mockRepo.MockReadingRepository
	publisher   *mockSvc.MockEventPublisher
}

func createTestIngestionService(t *testing.T) ingestionServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	readingRepo := mockRepo.NewMockReadingRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewIngestionService(IngestionServiceParams{
		DeviceRepo:  deviceRepo,
		ReadingRepo: readingRepo,
		Publisher:   publisher,
		Logger:      newDiscardLogger(),
	})

	return ingestionServiceFixtures{
		service:     service,
		deviceRepo:  deviceRepo,
		readingRepo: readingRepo,
		publisher:   publisher,
	}
}

func TestIngestionService_IngestReadings_Success(t *testing.T) {
	fx := createTestIngestionService(t)

	ctx := context.Background()
	userID := uuid.New()
	device := &entity.Device{
		DeviceID: "greenhouse-01",
		UserID:   userID,
		IsActive: true,
	}
	reported := time.Now().Add(-2 * time.Minute)

	input := &usecase.IngestReadingsInput{
		DeviceID: "greenhouse-01",
		Readings: []usecase.SensorReadingInput{
			{SensorType: "temperature", Value: 24.5, Unit: "°C", Timestamp: &reported},
			{SensorType: "humidity", Value: 61.0, Unit: "%"},
		},
	}

	fx.deviceRepo.EXPECT().FindDeviceByDeviceID(ctx, "greenhouse-01").Return(device, nil)

	fx.readingRepo.EXPECT().
		CreateReadings(ctx, mock.AnythingOfType("[]*entity.SensorReading")).
		Run(func(ctx context.Context, readings []*entity.SensorReading) {
			require.Len(t, readings, 2)
			assert.Equal(t, "temperature", readings[0].SensorType)
			assert.True(t, readings[0].Timestamp.Equal(reported))
			// Missing timestamp defaults to the server receive time.
			assert.WithinDuration(t, time.Now(), readings[1].Timestamp, time.Minute)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishChangeEvent(ctx, mock.AnythingOfType("*service.ChangeEvent")).
		Run(func(ctx context.Context, event *service.ChangeEvent) {
			assert.Equal(t, constants.TableSensorReadings, event.Table)
			assert.Equal(t, constants.EventKindInsert, event.Kind)
			assert.Equal(t, "greenhouse-01", event.DeviceID)
			assert.Equal(t, userID.String(), event.UserID)
			assert.Equal(t, 2, event.RowCount)
		}).
		Return(nil)

	output, err := fx.service.IngestReadings(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, 2, output.Inserted)
}

func TestIngestionService_IngestReadings_UnknownDevice(t *testing.T) {
	fx := createTestIngestionService(t)

	ctx := context.Background()
	input := &usecase.IngestReadingsInput{
		DeviceID: "unregistered-device",
		Readings: []usecase.SensorReadingInput{
			{SensorType: "temperature", Value: 24.5, Unit: "°C"},
		},
	}

	fx.deviceRepo.EXPECT().
		FindDeviceByDeviceID(ctx, "unregistered-device").
		Return(nil, repository.ErrDeviceNotFound)

	output, err := fx.service.IngestReadings(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
}

func TestIngestionService_IngestReadings_InactiveDevice(t *testing.T) {
	fx := createTestIngestionService(t)

	ctx := context.Background()
	device := &entity.Device{
		DeviceID: "greenhouse-01",
		UserID:   uuid.New(),
		IsActive: false,
	}
	input := &usecase.IngestReadingsInput{
		DeviceID: "greenhouse-01",
		Readings: []usecase.SensorReadingInput{
			{SensorType: "temperature", Value: 24.5, Unit: "°C"},
		},
	}

	fx.deviceRepo.EXPECT().FindDeviceByDeviceID(ctx, "greenhouse-01").Return(device, nil)

	output, err := fx.service.IngestReadings(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceInactive))
}

func TestIngestionService_IngestReadings_StoreError(t *testing.T) {
	fx := createTestIngestionService(t)

	ctx := context.Background()
	device := &entity.Device{
		DeviceID: "greenhouse-01",
		UserID:   uuid.New(),
		IsActive: true,
	}
	input := &usecase.IngestReadingsInput{
		DeviceID: "greenhouse-01",
		Readings: []usecase.SensorReadingInput{
			{SensorType: "temperature", Value: 24.5, Unit: "°C"},
		},
	}

	fx.deviceRepo.EXPECT().FindDeviceByDeviceID(ctx, "greenhouse-01").Return(device, nil)
	fx.readingRepo.EXPECT().
		CreateReadings(ctx, mock.AnythingOfType("[]*entity.SensorReading")).
		Return(errors.New("database error"))

	output, err := fx.service.IngestReadings(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.Contains(t, err.Error(), "failed to store readings")
}

func TestIngestionService_IngestReadings_PublishFailureTolerated(t *testing.T) {
	fx := createTestIngestionService(t)

	ctx := context.Background()
	device := &entity.Device{
		DeviceID: "greenhouse-01",
		UserID:   uuid.New(),
		IsActive: true,
	}
	input := &usecase.IngestReadingsInput{
		DeviceID: "greenhouse-01",
		Readings: []usecase.SensorReadingInput{
			{SensorType: "temperature", Value: 24.5, Unit: "°C"},
		},
	}

	fx.deviceRepo.EXPECT().FindDeviceByDeviceID(ctx, "greenhouse-01").Return(device, nil)
	fx.readingRepo.EXPECT().
		CreateReadings(ctx, mock.AnythingOfType("[]*entity.SensorReading")).
		Return(nil)
	fx.publisher.EXPECT().
		PublishChangeEvent(ctx, mock.AnythingOfType("*service.ChangeEvent")).
		Return(errors.New("broker unavailable"))

	// The rows are durable before the publish, so the request still succeeds.
	output, err := fx.service.IngestReadings(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, 1, output.Inserted)
}
