package service

import (
	"context"

	"agrisense/internal/domain/entity"
)

// ReadingExporter defines the interface for archiving a device's readings to
// external storage.
type ReadingExporter interface {
	// ExportReadings writes the readings as a CSV object and returns the
	// object key within the configured bucket.
	ExportReadings(ctx context.Context, device *entity.Device, readings []*entity.SensorReading) (string, error)
}
