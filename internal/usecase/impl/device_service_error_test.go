package impl

import (
	"context"
	"testing"

	"agrisense/internal/domain/entity"
	domainerrors "agrisense/internal/domain/errors"
	"agrisense/internal/domain/repository"
	"agrisense/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDeviceService_RegisterDevice_Duplicate(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	input := &usecase.RegisterDeviceInput{
		UserID:     uuid.New(),
		DeviceID:   "greenhouse-01",
		DeviceName: "North Greenhouse",
	}

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.Device")).
		Return(repository.ErrDuplicateDevice)

	device, err := fx.service.RegisterDevice(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, device)
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceAlreadyExists))
}

func TestDeviceService_SetDeviceActive_NotFound(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		FindDeviceByDeviceID(ctx, "missing-device").
		Return(nil, repository.ErrDeviceNotFound)

	device, err := fx.service.SetDeviceActive(ctx, uuid.New(), "missing-device", false)

	assert.Error(t, err)
	assert.Nil(t, device)
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
}

func TestDeviceService_SetDeviceActive_OwnershipViolation(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	otherOwner := &entity.Device{
		DeviceID: "greenhouse-01",
		UserID:   uuid.New(),
	}

	fx.deviceRepo.EXPECT().
		FindDeviceByDeviceID(ctx, "greenhouse-01").
		Return(otherOwner, nil)

	device, err := fx.service.SetDeviceActive(ctx, uuid.New(), "greenhouse-01", false)

	assert.Error(t, err)
	assert.Nil(t, device)
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceOwnershipViolation))
}

func TestDeviceService_GetDeviceQR_OwnershipViolation(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	otherOwner := &entity.Device{
		DeviceID: "greenhouse-01",
		UserID:   uuid.New(),
	}

	fx.deviceRepo.EXPECT().
		FindDeviceByDeviceID(ctx, "greenhouse-01").
		Return(otherOwner, nil)

	qr, err := fx.service.GetDeviceQR(ctx, uuid.New(), "greenhouse-01")

	assert.Error(t, err)
	assert.Nil(t, qr)
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceOwnershipViolation))
}

func TestDeviceService_ListReadings_FindError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.Device{DeviceID: "greenhouse-01", UserID: userID}

	fx.deviceRepo.EXPECT().FindDeviceByDeviceID(ctx, "greenhouse-01").Return(existing, nil)
	fx.readingRepo.EXPECT().
		FindRecentByDevice(ctx, "greenhouse-01", mock.AnythingOfType("time.Time"), mock.AnythingOfType("int")).
		Return(nil, errors.New("database error"))

	readings, err := fx.service.ListReadings(ctx, &usecase.ListReadingsInput{
		UserID:   userID,
		DeviceID: "greenhouse-01",
	})

	assert.Error(t, err)
	assert.Nil(t, readings)
	assert.Contains(t, err.Error(), "failed to list readings")
}

func TestDeviceService_ExportReadings_ExporterError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.Device{DeviceID: "greenhouse-01", UserID: userID}

	fx.deviceRepo.EXPECT().FindDeviceByDeviceID(ctx, "greenhouse-01").Return(existing, nil)
	fx.readingRepo.EXPECT().
		FindRecentByDevice(ctx, "greenhouse-01", mock.AnythingOfType("time.Time"), mock.AnythingOfType("int")).
		Return([]*entity.SensorReading{{DeviceID: "greenhouse-01"}}, nil)
	fx.exporter.EXPECT().
		ExportReadings(ctx, existing, mock.AnythingOfType("[]*entity.SensorReading")).
		Return("", errors.New("bucket unavailable"))

	output, err := fx.service.ExportReadings(ctx, userID, "greenhouse-01")

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.Contains(t, err.Error(), "failed to export readings")
}
