package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"agrisense/internal/delivery/http/middleware"
	"agrisense/internal/delivery/http/response"
	"agrisense/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDeviceRequest represents the request body for registering a device
type RegisterDeviceRequest struct {
	DeviceID   string `json:"device_id" validate:"required"`
	DeviceName string `json:"device_name" validate:"required"`
	DeviceType string `json:"device_type"`
	Location   string `json:"location"`
}

// SetDeviceActiveRequest represents the request body for toggling ingestion
type SetDeviceActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// getUserID extracts the authenticated user ID set by the auth middleware.
func getUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication context")
	}

	return userID, nil
}

// RegisterDevice handles device registration
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), &usecase.RegisterDeviceInput{
		UserID:     userID,
		DeviceID:   req.DeviceID,
		DeviceName: req.DeviceName,
		DeviceType: req.DeviceType,
		Location:   req.Location,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, device, "Device registered successfully")
}

// ListDevices handles retrieving all of the caller's devices
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	devices, err := h.deviceUC.ListDevices(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, devices, "Devices retrieved successfully")
}

// SetDeviceActive handles toggling ingestion for a device
func (h *DeviceHandler) SetDeviceActive(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req SetDeviceActiveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	device, err := h.deviceUC.SetDeviceActive(c.Request().Context(), userID, c.Param("deviceID"), *req.IsActive)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, device, "Device updated successfully")
}

// GetDeviceQR serves the provisioning QR code as a PNG image
func (h *DeviceHandler) GetDeviceQR(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	pngBytes, err := h.deviceUC.GetDeviceQR(c.Request().Context(), userID, c.Param("deviceID"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", pngBytes)
}

// ListReadings handles the dashboard reading window query
func (h *DeviceHandler) ListReadings(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	input := &usecase.ListReadingsInput{
		UserID:   userID,
		DeviceID: c.Param("deviceID"),
	}

	if hoursParam := c.QueryParam("hours"); hoursParam != "" {
		hours, err := strconv.Atoi(hoursParam)
		if err != nil || hours <= 0 {
			return response.BadRequest(c, "VALIDATION_ERROR", "hours must be a positive integer")
		}
		input.Window = time.Duration(hours) * time.Hour
	}

	if limitParam := c.QueryParam("limit"); limitParam != "" {
		limit, err := strconv.Atoi(limitParam)
		if err != nil || limit <= 0 {
			return response.BadRequest(c, "VALIDATION_ERROR", "limit must be a positive integer")
		}
		input.Limit = limit
	}

	readings, err := h.deviceUC.ListReadings(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, readings, "Readings retrieved successfully")
}

// ExportReadings archives the device's recent readings to the blob bucket
func (h *DeviceHandler) ExportReadings(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	output, err := h.deviceUC.ExportReadings(c.Request().Context(), userID, c.Param("deviceID"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Readings exported successfully")
}
