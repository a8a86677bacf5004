// Package constants defines shared domain-level constants.
package constants

// Pub/Sub provider types selectable through configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Change-feed table names published to the realtime event stream.
const (
	TableSensorReadings  = "sensor_readings"
	TableRecommendations = "recommendations"
)

// Change-feed event kinds.
const (
	EventKindInsert = "INSERT"
)
