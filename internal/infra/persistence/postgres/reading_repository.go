// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"agrisense/internal/domain/entity"
	domainerrors "agrisense/internal/domain/errors"
	"agrisense/internal/domain/repository"
	"agrisense/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// readingRepository implements the repository.ReadingRepository interface.
type readingRepository struct {
	db *gorm.DB
}

// NewReadingRepository is the constructor for readingRepository.
func NewReadingRepository(db *gorm.DB) repository.ReadingRepository {
	return &readingRepository{
		db: db,
	}
}

// CreateReadings persists a batch of readings as a single atomic insert.
// A multi-row Create is one INSERT statement, so either every row of the
// batch is stored or none is.
func (repo *readingRepository) CreateReadings(ctx context.Context, readings []*entity.SensorReading) error {
	if len(readings) == 0 {
		return nil
	}

	readingModels := make([]*model.SensorReadingModel, 0, len(readings))
	for _, reading := range readings {
		readingModels = append(readingModels, fromReadingDomain(reading))
	}

	if err := repo.db.WithContext(ctx).Create(&readingModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to store sensor readings")
	}

	// Update the entities with generated values
	for i, readingM := range readingModels {
		readings[i].ID = readingM.ID
	}

	return nil
}

// FindRecentByDevice retrieves readings for a device with timestamps at or
// after since, newest first, capped at limit rows.
func (repo *readingRepository) FindRecentByDevice(ctx context.Context, deviceID string, since time.Time, limit int) ([]*entity.SensorReading, error) {
	var readingModels []*model.SensorReadingModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ? AND timestamp >= ?", deviceID, since).
		Order("timestamp DESC").
		Limit(limit).
		Find(&readingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent readings by device")
	}

	readings := make([]*entity.SensorReading, 0, len(readingModels))
	for _, readingM := range readingModels {
		readings = append(readings, toReadingDomain(readingM))
	}

	return readings, nil
}

// --- Mapper Functions ---

// toReadingDomain converts a GORM SensorReadingModel to a domain SensorReading entity.
func toReadingDomain(data *model.SensorReadingModel) *entity.SensorReading {
	if data == nil {
		return nil
	}

	return &entity.SensorReading{
		ID:         data.ID,
		DeviceID:   data.DeviceID,
		SensorType: data.SensorType,
		Value:      data.Value,
		Unit:       data.Unit,
		Timestamp:  data.Timestamp,
	}
}

// fromReadingDomain converts a domain SensorReading entity to a GORM SensorReadingModel.
func fromReadingDomain(data *entity.SensorReading) *model.SensorReadingModel {
	if data == nil {
		return nil
	}

	return &model.SensorReadingModel{
		ID:         data.ID,
		DeviceID:   data.DeviceID,
		SensorType: data.SensorType,
		Value:      data.Value,
		Unit:       data.Unit,
		Timestamp:  data.Timestamp,
	}
}
