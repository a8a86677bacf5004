// Package entity contains the core business objects of the project.
package entity

import "time"

// SensorReading represents one timestamped measurement reported by a device.
// Readings are append-only and immutable once written.
type SensorReading struct {
	ID         uint64    `json:"id"`          // Auto-incrementing identifier.
	DeviceID   string    `json:"device_id"`   // Stable device identifier, referenced by value.
	SensorType string    `json:"sensor_type"` // Free-form sensor tag, e.g. "temperature".
	Value      float64   `json:"value"`       // Numeric measurement.
	Unit       string    `json:"unit"`        // Measurement unit, e.g. "°C".
	Timestamp  time.Time `json:"timestamp"`   // Caller-supplied, or server-assigned at insert.
}
