// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"

	"golang.org/x/crypto/pbkdf2"

	domainerrors "kennel/internal/domain/errors"
	"kennel/internal/domain/service"
)

// Derivation parameters are fixed system-wide so every stored hash remains
// verifiable without per-record metadata. Changing them invalidates every
// existing credential.
const (
	pbkdf2Iterations = 100_000
	derivedKeyLength = 32 // 256-bit
)

// pbkdf2Hasher is a concrete implementation of the CredentialHasher interface
// using PBKDF2 with HMAC-SHA256.
type pbkdf2Hasher struct{}

// NewPBKDF2Hasher is the constructor for pbkdf2Hasher.
// It returns the implementation as a service.CredentialHasher interface.
func NewPBKDF2Hasher() service.CredentialHasher {
	return &pbkdf2Hasher{}
}

// GenerateSalt returns a fresh 128-bit salt from crypto/rand.
func (h *pbkdf2Hasher) GenerateSalt() ([]byte, error) {
	salt := make([]byte, service.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, domainerrors.ErrEntropyUnavailable.WrapMessage(err.Error())
	}

	return salt, nil
}

// DeriveKey derives a 256-bit key from (password, salt). Deterministic.
func (h *pbkdf2Hasher) DeriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, derivedKeyLength, sha256.New)
}

// Verify recomputes the derived key and compares it against the stored
// base64 hash in constant time, closing the timing side channel a plain
// string comparison would open.
func (h *pbkdf2Hasher) Verify(password string, salt []byte, expectedHash string) bool {
	expected, err := base64.StdEncoding.DecodeString(expectedHash)
	if err != nil {
		return false
	}

	derived := h.DeriveKey(password, salt)

	return subtle.ConstantTimeCompare(derived, expected) == 1
}
