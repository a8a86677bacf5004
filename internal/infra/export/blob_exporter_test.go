package export

import (
	"context"
	"encoding/csv"
	"log/slog"
	"strings"
	"testing"
	"time"

	"agrisense/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/fileblob"
)

func TestBlobExporter_ExportReadings(t *testing.T) {
	dir := t.TempDir()
	bucket, err := fileblob.OpenBucket(dir, nil)
	require.NoError(t, err)
	t.Cleanup(func() { bucket.Close() })

	exporter := newBlobExporterWithBucket(bucket, slog.New(slog.DiscardHandler))

	device := &entity.Device{DeviceID: "ESP32-001", DeviceName: "Greenhouse A"}
	readings := []*entity.SensorReading{
		{
			DeviceID:   "ESP32-001",
			SensorType: "temperature",
			Value:      25.5,
			Unit:       "C",
			Timestamp:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			DeviceID:   "ESP32-001",
			SensorType: "humidity",
			Value:      61,
			Unit:       "%",
			Timestamp:  time.Date(2025, 6, 1, 12, 5, 0, 0, time.UTC),
		},
	}

	key, err := exporter.ExportReadings(context.Background(), device, readings)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "readings/ESP32-001/"))
	assert.True(t, strings.HasSuffix(key, ".csv"))

	// Read the object back and verify the CSV content.
	data, err := bucket.ReadAll(context.Background(), key)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, []string{"ESP32-001", "temperature", "25.5", "C", "2025-06-01T12:00:00Z"}, records[1])
	assert.Equal(t, []string{"ESP32-001", "humidity", "61", "%", "2025-06-01T12:05:00Z"}, records[2])
}

func TestBlobExporter_ExportReadings_Empty(t *testing.T) {
	dir := t.TempDir()
	bucket, err := fileblob.OpenBucket(dir, nil)
	require.NoError(t, err)
	t.Cleanup(func() { bucket.Close() })

	exporter := newBlobExporterWithBucket(bucket, slog.New(slog.DiscardHandler))

	key, err := exporter.ExportReadings(context.Background(), &entity.Device{DeviceID: "ESP32-002"}, nil)
	require.NoError(t, err)

	// Header row only.
	data, err := bucket.ReadAll(context.Background(), key)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, csvHeader, records[0])
}

func TestObjectKey(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 30, 45, 0, time.UTC)
	assert.Equal(t, "readings/ESP32-001/20250601T123045Z.csv", objectKey("ESP32-001", now))
}
