// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultDeviceType is assigned when registration omits the device type.
const DefaultDeviceType = "ESP32"

// Device represents a registered physical sensor unit on the farm.
type Device struct {
	ID         uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the row.
	DeviceID   string    `json:"device_id"`   // Caller-chosen stable identifier, unique across all devices.
	DeviceName string    `json:"device_name"` // Display name shown in the device registry.
	DeviceType string    `json:"device_type"` // Hardware type, defaults to "ESP32".
	Location   string    `json:"location"`    // Optional free-text location (e.g., "north greenhouse").
	UserID     uuid.UUID `json:"user_id"`     // The ID of the user who owns this device.
	IsActive   bool      `json:"is_active"`   // Inactive devices are rejected at ingestion.
	CreatedAt  time.Time `json:"created_at"`  // Timestamp of when this device was registered.
	UpdatedAt  time.Time `json:"updated_at"`  // Timestamp of the last modification.
}
