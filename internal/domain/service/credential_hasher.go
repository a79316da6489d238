// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// SaltLength is the required salt size in bytes (128 bits). It is a
// system-wide constant, like the derivation parameters, so every stored hash
// stays verifiable without per-record parameter metadata.
const SaltLength = 16

// CredentialHasher turns plaintext passwords into durable, verifiable
// secrets. Implementations must be deterministic: DeriveKey on equal inputs
// always yields equal output.
type CredentialHasher interface {
	// GenerateSalt returns SaltLength bytes from a cryptographically secure
	// random source.
	GenerateSalt() ([]byte, error)

	// DeriveKey applies the key-derivation function to (password, salt) and
	// returns the 256-bit derived key. Pure, no side effects.
	DeriveKey(password string, salt []byte) []byte

	// Verify recomputes the derived key for (password, salt) and compares it
	// to the base64-encoded expected hash in constant time.
	Verify(password string, salt []byte, expectedHash string) bool
}
