// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a farm owner account.
type User struct {
	ID           uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the user.
	Name         string    `json:"name"`       // Display name shown on the dashboard.
	Email        string    `json:"email"`      // Unique login email.
	PasswordHash string    `json:"-"`          // Bcrypt hash of the login password; never serialized.
	CreatedAt    time.Time `json:"created_at"` // Timestamp of when this account was created.
	UpdatedAt    time.Time `json:"updated_at"` // Timestamp of the last modification.
}

// RefreshToken represents a stored refresh token bound to a user session.
type RefreshToken struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the token record.
	UserID    uuid.UUID `json:"user_id"`    // The ID of the user who owns this session.
	TokenHash string    `json:"-"`          // SHA-256 hash of the refresh token; the plaintext is never stored.
	ExpiresAt time.Time `json:"expires_at"` // Timestamp after which the token is no longer accepted.
	Revoked   bool      `json:"revoked"`    // Indicates the token was rotated or explicitly logged out.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this token was issued.
}
