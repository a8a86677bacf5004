// Package entity contains the core business objects of the project.
package entity

// Trend classifications for a sensor type's short-term value movement.
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// SensorStats holds the aggregated statistics for one sensor type over a
// trailing window of readings.
type SensorStats struct {
	Current       float64 `json:"current"`        // Value of the single most recent reading.
	Unit          string  `json:"unit"`           // Unit of the most recent reading.
	Average       float64 `json:"average"`        // Mean over all readings in the window.
	Min           float64 `json:"min"`            // Minimum value in the window.
	Max           float64 `json:"max"`            // Maximum value in the window.
	ReadingsCount int     `json:"readings_count"` // Number of readings in the window.
	Trend         string  `json:"trend"`          // increasing, decreasing or stable.
}

// SensorSummary maps a sensor type to its aggregated statistics.
type SensorSummary map[string]SensorStats
