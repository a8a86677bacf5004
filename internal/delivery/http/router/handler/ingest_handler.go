package handler

import (
	"log/slog"
	"net/http"
	"time"

	"agrisense/internal/delivery/http/response"
	"agrisense/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// IngestHandlerParams holds dependencies for IngestHandler, injected by Fx.
type IngestHandlerParams struct {
	fx.In

	IngestionUC usecase.IngestionUsecase
	Logger      *slog.Logger
}

// IngestHandler holds dependencies for the device-facing intake endpoint.
type IngestHandler struct {
	ingestionUC usecase.IngestionUsecase
	logger      *slog.Logger
}

// NewIngestHandler is the constructor for IngestHandler
func NewIngestHandler(params IngestHandlerParams) *IngestHandler {
	return &IngestHandler{
		ingestionUC: params.IngestionUC,
		logger:      params.Logger,
	}
}

// SensorReadingRequest is one measurement in an intake batch.
type SensorReadingRequest struct {
	SensorType string     `json:"sensor_type" validate:"required"`
	Value      float64    `json:"value"`
	Unit       string     `json:"unit" validate:"required"`
	Timestamp  *time.Time `json:"timestamp"`
}

// IngestReadingsRequest represents the request body for sensor data intake.
type IngestReadingsRequest struct {
	DeviceID       string                 `json:"device_id" validate:"required"`
	SensorReadings []SensorReadingRequest `json:"sensor_readings" validate:"required,min=1,dive"`
}

// IngestReadings handles a batch of measurements reported by a field device.
func (h *IngestHandler) IngestReadings(c echo.Context) error {
	var req IngestReadingsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sensor data input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	readings := make([]usecase.SensorReadingInput, 0, len(req.SensorReadings))
	for _, r := range req.SensorReadings {
		readings = append(readings, usecase.SensorReadingInput{
			SensorType: r.SensorType,
			Value:      r.Value,
			Unit:       r.Unit,
			Timestamp:  r.Timestamp,
		})
	}

	output, err := h.ingestionUC.IngestReadings(c.Request().Context(), &usecase.IngestReadingsInput{
		DeviceID: req.DeviceID,
		Readings: readings,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Sensor data stored successfully")
}
