// Package auth implements the credential services the domain declares:
// bcrypt password hashing and JWT issuance/validation.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"agrisense/internal/domain/service"
)

// bcryptHasher implements service.PasswordHasher with bcrypt. Salt
// generation is handled by the library and embedded in the hash.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher at bcrypt's default cost.
func NewBcryptHasher() service.PasswordHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

// NewBcryptHasherWithCost returns a hasher at the given cost. Costs outside
// bcrypt's supported range fall back to the default rather than failing
// every registration at runtime.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
