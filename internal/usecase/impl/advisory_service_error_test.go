package impl

import (
	"context"
	"testing"

	"agrisense/internal/domain/entity"
	domainerrors "agrisense/internal/domain/errors"
	"agrisense/internal/domain/repository"
	"agrisense/internal/domain/service"
	"agrisense/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdvisoryService_GenerateAdvisories_DeviceNotFound(t *testing.T) {
	fx := createTestAdvisoryService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		FindDeviceByDeviceID(ctx, "missing-device").
		Return(nil, repository.ErrDeviceNotFound)

	output, err := fx.service.GenerateAdvisories(ctx, &usecase.GenerateAdvisoriesInput{
		UserID:   uuid.New(),
		DeviceID: "missing-device",
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
}

func TestAdvisoryService_GenerateAdvisories_OwnershipViolation(t *testing.T) {
	fx := createTestAdvisoryService(t)

	ctx := context.Background()
	otherOwner := &entity.Device{
		DeviceID: "greenhouse-01",
		UserID:   uuid.New(),
	}

	fx.deviceRepo.EXPECT().
		FindDeviceByDeviceID(ctx, "greenhouse-01").
		Return(otherOwner, nil)

	output, err := fx.service.GenerateAdvisories(ctx, &usecase.GenerateAdvisoriesInput{
		UserID:   uuid.New(),
		DeviceID: "greenhouse-01",
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceOwnershipViolation))
}

func TestAdvisoryService_GenerateAdvisories_EngineFailure(t *testing.T) {
	fx := createTestAdvisoryService(t)

	ctx := context.Background()
	userID := uuid.New()
	device := &entity.Device{DeviceID: "greenhouse-01", UserID: userID}

	fx.deviceRepo.EXPECT().FindDeviceByDeviceID(ctx, "greenhouse-01").Return(device, nil)
	fx.readingRepo.EXPECT().
		FindRecentByDevice(ctx, "greenhouse-01", mock.AnythingOfType("time.Time"), mock.AnythingOfType("int")).
		Return(testReadings("greenhouse-01"), nil)
	fx.advisoryRepo.EXPECT().
		HasRecentAdvisories(ctx, "greenhouse-01", mock.AnythingOfType("time.Time")).
		Return(false, nil)
	fx.engine.EXPECT().
		GenerateAdvisories(ctx, device, mock.AnythingOfType("entity.SensorSummary")).
		Return(nil, errors.Wrap(domainerrors.ErrUpstreamUnavailable, "completion request failed"))

	output, err := fx.service.GenerateAdvisories(ctx, &usecase.GenerateAdvisoriesInput{
		UserID:   userID,
		DeviceID: "greenhouse-01",
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUpstreamUnavailable))
}

func TestAdvisoryService_GenerateAdvisories_StoreFailure(t *testing.T) {
	fx := createTestAdvisoryService(t)

	ctx := context.Background()
	userID := uuid.New()
	device := &entity.Device{DeviceID: "greenhouse-01", UserID: userID}

	fx.deviceRepo.EXPECT().FindDeviceByDeviceID(ctx, "greenhouse-01").Return(device, nil)
	fx.readingRepo.EXPECT().
		FindRecentByDevice(ctx, "greenhouse-01", mock.AnythingOfType("time.Time"), mock.AnythingOfType("int")).
		Return(testReadings("greenhouse-01"), nil)
	fx.advisoryRepo.EXPECT().
		HasRecentAdvisories(ctx, "greenhouse-01", mock.AnythingOfType("time.Time")).
		Return(false, nil)
	fx.engine.EXPECT().
		GenerateAdvisories(ctx, device, mock.AnythingOfType("entity.SensorSummary")).
		Return([]*service.AdvisoryDraft{
			{Title: "Increase irrigation", Message: "Soil moisture is low.", Priority: "high", Category: "irrigation", Confidence: 0.9},
		}, nil)
	fx.advisoryRepo.EXPECT().
		CreateAdvisories(ctx, mock.AnythingOfType("[]*entity.Advisory")).
		Return(errors.New("database error"))

	output, err := fx.service.GenerateAdvisories(ctx, &usecase.GenerateAdvisoriesInput{
		UserID:   userID,
		DeviceID: "greenhouse-01",
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.Contains(t, err.Error(), "failed to store advisories")
}

func TestAdvisoryService_MarkAdvisoryRead_NotFound(t *testing.T) {
	fx := createTestAdvisoryService(t)

	ctx := context.Background()
	advisoryID := uuid.New()

	fx.advisoryRepo.EXPECT().
		FindAdvisoryByID(ctx, advisoryID).
		Return(nil, repository.ErrAdvisoryNotFound)

	err := fx.service.MarkAdvisoryRead(ctx, uuid.New(), advisoryID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAdvisoryNotFound))
}

func TestAdvisoryService_MarkAdvisoryRead_WrongOwnerReadsAsNotFound(t *testing.T) {
	fx := createTestAdvisoryService(t)

	ctx := context.Background()
	advisoryID := uuid.New()
	stored := &entity.Advisory{ID: advisoryID, UserID: uuid.New()}

	fx.advisoryRepo.EXPECT().FindAdvisoryByID(ctx, advisoryID).Return(stored, nil)

	err := fx.service.MarkAdvisoryRead(ctx, uuid.New(), advisoryID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAdvisoryNotFound))
}

func TestAdvisoryService_MarkAdvisoryDismissed_NotFound(t *testing.T) {
	fx := createTestAdvisoryService(t)

	ctx := context.Background()
	advisoryID := uuid.New()

	fx.advisoryRepo.EXPECT().
		FindAdvisoryByID(ctx, advisoryID).
		Return(nil, repository.ErrAdvisoryNotFound)

	err := fx.service.MarkAdvisoryDismissed(ctx, uuid.New(), advisoryID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAdvisoryNotFound))
}

func TestAdvisoryService_ListAdvisories_FindError(t *testing.T) {
	fx := createTestAdvisoryService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.advisoryRepo.EXPECT().
		FindAdvisoriesByUser(ctx, userID, repository.AdvisoryListFilter{}).
		Return(nil, errors.New("database error"))

	advisories, err := fx.service.ListAdvisories(ctx, &usecase.ListAdvisoriesInput{UserID: userID})

	assert.Error(t, err)
	assert.Nil(t, advisories)
	assert.Contains(t, err.Error(), "failed to list advisories")
}
