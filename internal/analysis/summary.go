// Package analysis contains pure computations over sensor readings. It has no
// external dependencies and no side effects; the Summarize output is the exact
// value stored as the immutable snapshot on any advisory derived from it.
package analysis

import (
	"agrisense/internal/domain/entity"
)

const (
	// trendWindow is the number of most-recent readings considered for trend
	// classification.
	trendWindow = 5

	// trendThresholdPercent is the percent change beyond which a trend is no
	// longer classified as stable.
	trendThresholdPercent = 5.0
)

// Summarize groups a newest-first window of readings by sensor type and
// computes per-type statistics. The input order must be newest first; each
// group preserves that order.
func Summarize(readings []*entity.SensorReading) entity.SensorSummary {
	groups := make(map[string][]*entity.SensorReading)
	order := make([]string, 0)
	for _, reading := range readings {
		if _, seen := groups[reading.SensorType]; !seen {
			order = append(order, reading.SensorType)
		}
		groups[reading.SensorType] = append(groups[reading.SensorType], reading)
	}

	summary := make(entity.SensorSummary, len(groups))
	for _, sensorType := range order {
		group := groups[sensorType]
		values := make([]float64, len(group))
		for i, reading := range group {
			values[i] = reading.Value
		}

		latest := group[0]
		summary[sensorType] = entity.SensorStats{
			Current:       latest.Value,
			Unit:          latest.Unit,
			Average:       mean(values),
			Min:           minOf(values),
			Max:           maxOf(values),
			ReadingsCount: len(group),
			Trend:         classifyTrend(values),
		}
	}

	return summary
}

// classifyTrend classifies the short-term movement of a newest-first value
// series. It compares the newest value against the oldest value of the
// trendWindow most-recent readings as a percent change. Fewer than two
// readings, or a zero baseline, classify as stable (no division attempted).
func classifyTrend(values []float64) string {
	if len(values) < 2 {
		return entity.TrendStable
	}

	recent := values
	if len(recent) > trendWindow {
		recent = recent[:trendWindow]
	}

	first := recent[len(recent)-1] // chronologically earliest within the slice
	last := recent[0]              // most recent
	if first == 0 {
		return entity.TrendStable
	}

	change := (last - first) / first * 100
	switch {
	case change > trendThresholdPercent:
		return entity.TrendIncreasing
	case change < -trendThresholdPercent:
		return entity.TrendDecreasing
	default:
		return entity.TrendStable
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

func minOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}

	return m
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}

	return m
}
