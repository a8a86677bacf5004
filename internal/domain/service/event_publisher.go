package service

import (
	"context"
)

// ChangeEvent represents a "row inserted" notification on the realtime change
// feed the dashboard subscribes to. Delivery is at-least-once with no ordering
// guarantee across distinct rows.
type ChangeEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing.
	Table     string `json:"table"`                // Table the change occurred on.
	Kind      string `json:"kind"`                 // Event kind, e.g. "INSERT".
	DeviceID  string `json:"device_id,omitempty"`  // Stable device identifier, when relevant.
	UserID    string `json:"user_id,omitempty"`    // Owner the change belongs to, when relevant.
	RowCount  int    `json:"row_count"`            // Number of rows inserted by the change.
}

// EventPublisher defines the interface for publishing change events to the
// realtime feed.
type EventPublisher interface {
	// PublishChangeEvent publishes a change event for dashboard live updates.
	PublishChangeEvent(ctx context.Context, event *ChangeEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
