// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"agrisense/internal/domain/entity"
)

// ReadingRepository defines the interface for sensor reading persistence.
// Readings are append-only; there is no update or delete surface.
type ReadingRepository interface {
	// CreateReadings persists a batch of readings as a single atomic insert.
	CreateReadings(ctx context.Context, readings []*entity.SensorReading) error

	// FindRecentByDevice retrieves readings for a device with timestamps at or
	// after since, newest first, capped at limit rows.
	FindRecentByDevice(ctx context.Context, deviceID string, since time.Time, limit int) ([]*entity.SensorReading, error)
}
