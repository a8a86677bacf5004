package service

import (
	"context"

	"agrisense/internal/domain/entity"
)

// AdvisoryDraft is one recommendation produced by the AI collaborator before
// it is persisted as an Advisory.
type AdvisoryDraft struct {
	Title      string  `json:"title"`      // Brief title.
	Message    string  `json:"message"`    // Detailed recommendation.
	Priority   string  `json:"priority"`   // One of low, medium, high.
	Category   string  `json:"category"`   // One of irrigation, fertilizer, weather, pest, disease, general.
	Confidence float64 `json:"confidence"` // Model-reported confidence in [0,1].
}

// AdvisoryEngine defines the interface for the external text-generation
// collaborator. Implementations must return domainerrors.ErrInvalidAIResponse
// when the service's textual output does not parse as the expected JSON array,
// and domainerrors.ErrUpstreamUnavailable when the call itself fails.
type AdvisoryEngine interface {
	// GenerateAdvisories asks the model for at most three recommendations for
	// the given device based on its sensor summary.
	GenerateAdvisories(ctx context.Context, device *entity.Device, summary entity.SensorSummary) ([]*AdvisoryDraft, error)
}
