// Package export archives sensor readings as CSV objects in a blob bucket.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"agrisense/internal/domain/entity"
	"agrisense/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Blob drivers registered by URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

var csvHeader = []string{"device_id", "sensor_type", "value", "unit", "timestamp"}

// blobExporter implements ReadingExporter on top of a gocloud.dev bucket,
// so the storage backend (local disk, GCS, S3) is chosen by URL.
type blobExporter struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// ExporterParams holds dependencies for ReadingExporter, injected by Fx
type ExporterParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Logger *slog.Logger
}

// NewBlobExporter opens the bucket at bucketURL and wires its shutdown
// into the application lifecycle.
func NewBlobExporter(params ExporterParams, bucketURL string) (service.ReadingExporter, error) {
	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing export bucket")

			return bucket.Close()
		},
	})

	return &blobExporter{
		bucket: bucket,
		logger: params.Logger,
	}, nil
}

// newBlobExporterWithBucket is used by tests to inject an already-open bucket.
func newBlobExporterWithBucket(bucket *blob.Bucket, logger *slog.Logger) service.ReadingExporter {
	return &blobExporter{
		bucket: bucket,
		logger: logger,
	}
}

// ExportReadings writes the readings as a CSV object and returns its key.
func (e *blobExporter) ExportReadings(ctx context.Context, device *entity.Device, readings []*entity.SensorReading) (string, error) {
	key := objectKey(device.DeviceID, time.Now().UTC())

	writer, err := e.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", key)
	}

	csvWriter := csv.NewWriter(writer)

	if err := csvWriter.Write(csvHeader); err != nil {
		writer.Close()

		return "", errors.WithStack(err)
	}

	for _, reading := range readings {
		record := []string{
			reading.DeviceID,
			reading.SensorType,
			strconv.FormatFloat(reading.Value, 'f', -1, 64),
			reading.Unit,
			reading.Timestamp.UTC().Format(time.RFC3339),
		}
		if err := csvWriter.Write(record); err != nil {
			writer.Close()

			return "", errors.WithStack(err)
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		writer.Close()

		return "", errors.WithStack(err)
	}

	// Close commits the object; the write is not durable until it returns.
	if err := writer.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to commit object %s", key)
	}

	e.logger.Info("Readings exported",
		slog.String("device_id", device.DeviceID),
		slog.String("object_key", key),
		slog.Int("row_count", len(readings)),
	)

	return key, nil
}

// objectKey builds a per-device, timestamped object path.
func objectKey(deviceID string, now time.Time) string {
	return fmt.Sprintf("readings/%s/%s.csv", deviceID, now.Format("20060102T150405Z"))
}
