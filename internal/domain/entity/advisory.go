// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Advisory priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Advisory represents a generated farming recommendation shown to the owner.
// The SensorData snapshot is evidence for why the advisory was issued and is
// immutable after creation; only the two boolean flags may change, and only
// from false to true.
type Advisory struct {
	ID           uuid.UUID     `json:"id"`                   // The Global Unique Identifier (GUID) for the advisory.
	UserID       uuid.UUID     `json:"user_id"`              // The ID of the owner this advisory was generated for.
	DeviceID     string        `json:"device_id"`            // Stable identifier of the device whose readings produced it.
	Title        string        `json:"title"`                // Brief title.
	Message      string        `json:"message"`              // Detailed recommendation body.
	Priority     string        `json:"priority"`             // One of low, medium, high.
	Category     string        `json:"category"`             // Free-form tag (irrigation, fertilizer, weather, ...).
	SensorData   SensorSummary `json:"sensor_data"`          // Immutable snapshot of the summary that produced it.
	AIConfidence float64       `json:"ai_confidence"`        // Model-reported confidence in [0,1].
	IsRead       bool          `json:"is_read"`              // Set true once the owner has seen it; never reverted.
	IsDismissed  bool          `json:"is_dismissed"`         // Set true once the owner dismisses it; never reverted.
	CreatedAt    time.Time     `json:"created_at"`           // Timestamp of when this advisory was generated.
	ExpiresAt    *time.Time    `json:"expires_at,omitempty"` // Optional expiry timestamp.
}
