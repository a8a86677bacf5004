// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"agrisense/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for refresh token persistence.
var (
	// ErrRefreshTokenNotFound is returned when a refresh token is not found.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
)

// RefreshTokenRepository defines the interface for refresh token persistence.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new refresh token record.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindByTokenHash retrieves an unrevoked refresh token by its hash.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// RevokeByTokenHash marks a refresh token as revoked (rotation or logout).
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
}
