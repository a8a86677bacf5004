package analysis

import (
	"testing"
	"time"

	"agrisense/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newestFirst builds a newest-first reading series for one sensor type.
// values[0] is the most recent reading.
func newestFirst(sensorType, unit string, values ...float64) []*entity.SensorReading {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	readings := make([]*entity.SensorReading, len(values))
	for i, v := range values {
		readings[i] = &entity.SensorReading{
			DeviceID:   "greenhouse-01",
			SensorType: sensorType,
			Value:      v,
			Unit:       unit,
			Timestamp:  now.Add(-time.Duration(i) * time.Minute),
		}
	}

	return readings
}

func TestClassifyTrend(t *testing.T) {
	tests := []struct {
		name   string
		values []float64 // newest first
		want   string
	}{
		{"flat series", []float64{10, 10, 10, 10, 10}, entity.TrendStable},
		{"rising sixty percent", []float64{16, 10, 10, 10, 10}, entity.TrendIncreasing},
		{"falling six percent", []float64{9.4, 10, 10, 10, 10}, entity.TrendDecreasing},
		{"exactly plus five percent is stable", []float64{10.5, 10, 10, 10, 10}, entity.TrendStable},
		{"exactly minus five percent is stable", []float64{9.5, 10, 10, 10, 10}, entity.TrendStable},
		{"just above threshold", []float64{10.51, 10, 10, 10, 10}, entity.TrendIncreasing},
		{"single reading", []float64{42}, entity.TrendStable},
		{"empty series", nil, entity.TrendStable},
		{"zero baseline", []float64{3, 1, 0}, entity.TrendStable},
		{"two readings rising", []float64{12, 10}, entity.TrendIncreasing},
		// Only the five most recent readings participate; the spike at
		// position six must not affect the result.
		{"older readings ignored", []float64{10, 10, 10, 10, 10, 1000}, entity.TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyTrend(tt.values))
		})
	}
}

func TestSummarize_SingleType(t *testing.T) {
	readings := newestFirst("temperature", "°C", 24, 22, 20)

	summary := Summarize(readings)
	require.Len(t, summary, 1)

	stats, ok := summary["temperature"]
	require.True(t, ok)
	assert.InDelta(t, 24, stats.Current, 1e-9)
	assert.Equal(t, "°C", stats.Unit)
	assert.InDelta(t, 22, stats.Average, 1e-9)
	assert.InDelta(t, 20, stats.Min, 1e-9)
	assert.InDelta(t, 24, stats.Max, 1e-9)
	assert.Equal(t, 3, stats.ReadingsCount)
	assert.Equal(t, entity.TrendIncreasing, stats.Trend)
}

func TestSummarize_GroupsBySensorType(t *testing.T) {
	readings := append(
		newestFirst("temperature", "°C", 25, 25, 25),
		newestFirst("soil_moisture", "%", 30, 40, 50)...,
	)

	summary := Summarize(readings)
	require.Len(t, summary, 2)

	assert.Equal(t, entity.TrendStable, summary["temperature"].Trend)
	assert.Equal(t, entity.TrendDecreasing, summary["soil_moisture"].Trend)
	assert.Equal(t, 3, summary["soil_moisture"].ReadingsCount)
	assert.InDelta(t, 40, summary["soil_moisture"].Average, 1e-9)
}

func TestSummarize_CurrentIsMostRecentNotExtreme(t *testing.T) {
	// The current value is the newest reading, not the min or max.
	readings := newestFirst("humidity", "%", 55, 80, 20)

	summary := Summarize(readings)
	stats := summary["humidity"]
	assert.InDelta(t, 55, stats.Current, 1e-9)
	assert.InDelta(t, 20, stats.Min, 1e-9)
	assert.InDelta(t, 80, stats.Max, 1e-9)
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)
	assert.Empty(t, summary)
}
