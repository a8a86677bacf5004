package usecase

import (
	"context"
	"time"
)

// --- Input DTOs ---

// SensorReadingInput is one measurement in an ingestion batch.
type SensorReadingInput struct {
	SensorType string
	Value      float64
	Unit       string

	// Timestamp is optional; nil means the server receive time.
	Timestamp *time.Time
}

// IngestReadingsInput defines a batch of measurements reported by a device.
type IngestReadingsInput struct {
	DeviceID string
	Readings []SensorReadingInput
}

// --- Output DTOs ---

// IngestOutput reports how many rows were stored.
type IngestOutput struct {
	Inserted int `json:"inserted"`
}

// IngestionUsecase defines the interface for the sensor data intake pipeline.
type IngestionUsecase interface {
	IngestReadings(ctx context.Context, input *IngestReadingsInput) (*IngestOutput, error)
}
