package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"agrisense/internal/delivery/http/response"
	"agrisense/internal/domain/entity"
	"agrisense/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AdvisoryHandlerParams holds dependencies for AdvisoryHandler, injected by Fx.
type AdvisoryHandlerParams struct {
	fx.In

	AdvisoryUC usecase.AdvisoryUsecase
	Logger     *slog.Logger
}

// AdvisoryHandler holds dependencies for recommendation-related handlers.
type AdvisoryHandler struct {
	advisoryUC usecase.AdvisoryUsecase
	logger     *slog.Logger
}

// NewAdvisoryHandler is the constructor for AdvisoryHandler
func NewAdvisoryHandler(params AdvisoryHandlerParams) *AdvisoryHandler {
	return &AdvisoryHandler{
		advisoryUC: params.AdvisoryUC,
		logger:     params.Logger,
	}
}

// GenerateAdvisoriesRequest represents the request body for on-demand generation.
type GenerateAdvisoriesRequest struct {
	DeviceID      string `json:"deviceId" validate:"required"`
	ForceGenerate bool   `json:"forceGenerate"`
}

// GenerateAdvisoriesResponse is the generation result payload.
type GenerateAdvisoriesResponse struct {
	Recommendations []*entity.Advisory `json:"recommendations"`
	Count           int                `json:"count"`
}

// GenerateAdvisories handles an on-demand recommendation run for one device.
func (h *AdvisoryHandler) GenerateAdvisories(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req GenerateAdvisoriesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid generation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.advisoryUC.GenerateAdvisories(c.Request().Context(), &usecase.GenerateAdvisoriesInput{
		UserID:        userID,
		DeviceID:      req.DeviceID,
		ForceGenerate: req.ForceGenerate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	// Skipped runs still succeed; the reason tells the dashboard what happened.
	if output.Skipped {
		return response.Success(c, http.StatusOK, GenerateAdvisoriesResponse{
			Recommendations: []*entity.Advisory{},
		}, output.SkipReason)
	}

	return response.Success(c, http.StatusOK, GenerateAdvisoriesResponse{
		Recommendations: output.Advisories,
		Count:           len(output.Advisories),
	}, "Recommendations generated successfully")
}

// ListAdvisories handles the dashboard recommendation feed query.
func (h *AdvisoryHandler) ListAdvisories(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	input := &usecase.ListAdvisoriesInput{UserID: userID}

	if unreadParam := c.QueryParam("unread"); unreadParam != "" {
		unread, err := strconv.ParseBool(unreadParam)
		if err != nil {
			return response.BadRequest(c, "VALIDATION_ERROR", "unread must be a boolean")
		}
		input.UnreadOnly = unread
	}

	if limitParam := c.QueryParam("limit"); limitParam != "" {
		limit, err := strconv.Atoi(limitParam)
		if err != nil || limit <= 0 {
			return response.BadRequest(c, "VALIDATION_ERROR", "limit must be a positive integer")
		}
		input.Limit = limit
	}

	advisories, err := h.advisoryUC.ListAdvisories(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, advisories, "Recommendations retrieved successfully")
}

// MarkRead marks one of the caller's recommendations as read.
func (h *AdvisoryHandler) MarkRead(c echo.Context) error {
	userID, advisoryID, err := h.resolveAdvisoryParams(c)
	if err != nil {
		return err
	}

	if err := h.advisoryUC.MarkAdvisoryRead(c.Request().Context(), userID, advisoryID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Recommendation marked as read")
}

// MarkDismissed dismisses one of the caller's recommendations.
func (h *AdvisoryHandler) MarkDismissed(c echo.Context) error {
	userID, advisoryID, err := h.resolveAdvisoryParams(c)
	if err != nil {
		return err
	}

	if err := h.advisoryUC.MarkAdvisoryDismissed(c.Request().Context(), userID, advisoryID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Recommendation dismissed")
}

// resolveAdvisoryParams extracts the caller and the advisory path parameter.
func (h *AdvisoryHandler) resolveAdvisoryParams(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	userID, err := getUserID(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	advisoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, response.BadRequest(c, "VALIDATION_ERROR", "Invalid recommendation ID")
	}

	return userID, advisoryID, nil
}
