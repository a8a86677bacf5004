// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"agrisense/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for advisory persistence.
var (
	// ErrAdvisoryNotFound is returned when an advisory is not found.
	ErrAdvisoryNotFound = errors.New("advisory not found")
)

// AdvisoryListFilter narrows advisory list queries.
type AdvisoryListFilter struct {
	UnreadOnly       bool // Only advisories with is_read = false.
	IncludeDismissed bool // Include advisories the owner has dismissed.
	Limit            int  // Maximum rows to return; 0 means the repository default.
}

// AdvisoryRepository defines the interface for advisory-related database operations.
type AdvisoryRepository interface {
	// CreateAdvisories persists a batch of advisories as a single atomic insert.
	CreateAdvisories(ctx context.Context, advisories []*entity.Advisory) error

	// FindAdvisoryByID retrieves an advisory by its unique ID.
	FindAdvisoryByID(ctx context.Context, id uuid.UUID) (*entity.Advisory, error)

	// FindAdvisoriesByUser retrieves advisories for an owner, newest first.
	FindAdvisoriesByUser(ctx context.Context, userID uuid.UUID, filter AdvisoryListFilter) ([]*entity.Advisory, error)

	// HasRecentAdvisories reports whether any advisory for the device was
	// created at or after since. The read must observe the latest committed
	// state (primary, not a replica) so the idempotency gate never misses a
	// freshly inserted batch.
	HasRecentAdvisories(ctx context.Context, deviceID string, since time.Time) (bool, error)

	// MarkRead sets is_read = true for an advisory. The flag is never reverted.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// MarkDismissed sets is_dismissed = true for an advisory. The flag is never reverted.
	MarkDismissed(ctx context.Context, id uuid.UUID) error
}
