// Package service defines stateless domain-level contracts that do not
// belong to any single entity, such as credential hashing, token issuance,
// advisory generation and notification delivery.
package service

// PasswordHasher hashes account passwords before persistence and verifies
// login attempts against the stored hash. Implementations choose the
// algorithm and cost; the domain only sees opaque hash strings.
type PasswordHasher interface {
	// Hash derives a salted hash from the plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the stored hash.
	Check(password, hash string) bool
}
