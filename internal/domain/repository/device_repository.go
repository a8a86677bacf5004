// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"agrisense/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to create a device whose device_id already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// CreateDevice persists a new device for a user.
	CreateDevice(ctx context.Context, device *entity.Device) error

	// FindDeviceByDeviceID retrieves a device by its stable device_id string.
	FindDeviceByDeviceID(ctx context.Context, deviceID string) (*entity.Device, error)

	// FindDevicesByUser retrieves all devices for a specific user, newest first.
	FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error)

	// UpdateActive sets the active flag for a specific device.
	UpdateActive(ctx context.Context, deviceID string, active bool) error
}
