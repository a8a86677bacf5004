package usecase

import (
	"context"

	"agrisense/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// GenerateAdvisoriesInput defines a generation request for a device.
type GenerateAdvisoriesInput struct {
	UserID   uuid.UUID
	DeviceID string

	// ForceGenerate bypasses the suppression window.
	ForceGenerate bool
}

// ListAdvisoriesInput defines the query for a user's advisories.
type ListAdvisoriesInput struct {
	UserID           uuid.UUID
	UnreadOnly       bool
	IncludeDismissed bool
	Limit            int
}

// --- Output DTOs ---

// Generation skip reasons, surfaced to the caller as part of a success response.
const (
	SkipReasonNoRecentData     = "No recent sensor data available"
	SkipReasonRecentAdvisories = "Recent recommendations already exist"
)

// GenerateAdvisoriesOutput reports what the generation run produced.
// Skipped runs succeed with no advisories and a reason.
type GenerateAdvisoriesOutput struct {
	Advisories []*entity.Advisory
	Skipped    bool
	SkipReason string
}

// AdvisoryUsecase defines the interface for advisory-related business operations.
type AdvisoryUsecase interface {
	GenerateAdvisories(ctx context.Context, input *GenerateAdvisoriesInput) (*GenerateAdvisoriesOutput, error)
	ListAdvisories(ctx context.Context, input *ListAdvisoriesInput) ([]*entity.Advisory, error)
	MarkAdvisoryRead(ctx context.Context, userID, advisoryID uuid.UUID) error
	MarkAdvisoryDismissed(ctx context.Context, userID, advisoryID uuid.UUID) error
}
