package usecase

import (
	"context"
	"time"

	"agrisense/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterDeviceInput defines the data required to register a field device.
type RegisterDeviceInput struct {
	UserID     uuid.UUID
	DeviceID   string
	DeviceName string
	DeviceType string
	Location   string
}

// ListReadingsInput defines the query for a device's recent readings.
type ListReadingsInput struct {
	UserID   uuid.UUID
	DeviceID string

	// Window is the trailing time range; zero means the configured default.
	Window time.Duration

	// Limit caps the number of rows, newest first; zero means the configured default.
	Limit int
}

// --- Output DTOs ---

// ExportReadingsOutput describes the archived CSV object.
type ExportReadingsOutput struct {
	ObjectKey string `json:"object_key"`
	RowCount  int    `json:"row_count"`
}

// DeviceUsecase defines the interface for device-related business operations.
type DeviceUsecase interface {
	RegisterDevice(ctx context.Context, input *RegisterDeviceInput) (*entity.Device, error)
	ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error)
	SetDeviceActive(ctx context.Context, userID uuid.UUID, deviceID string, active bool) (*entity.Device, error)
	GetDeviceQR(ctx context.Context, userID uuid.UUID, deviceID string) ([]byte, error)
	ListReadings(ctx context.Context, input *ListReadingsInput) ([]*entity.SensorReading, error)
	ExportReadings(ctx context.Context, userID uuid.UUID, deviceID string) (*ExportReadingsOutput, error)
}
