// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// Identity is the durable credential record for one registered user.
// The handle doubles as the store's primary lookup key, so it is kept in
// normalized form at all times; Salt and CredentialHash are always a
// mutually consistent pair (the hash was derived with exactly this salt).
type Identity struct {
	ID             uuid.UUID // Assigned once at registration, immutable afterwards.
	Handle         string    // Normalized unique username, the store key.
	Email          string    // Normalized unique contact address.
	FirstName      string    // Profile field, opaque to the credential core.
	LastName       string    // Profile field, opaque to the credential core.
	Salt           []byte    // 128-bit random salt, generated at registration.
	CredentialHash string    // Base64 of the key derived from (password, Salt).
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NormalizeKey lower-cases s and strips all whitespace. It is applied to
// handles and emails at registration and at every subsequent lookup, so the
// same string always resolves to the same record. Idempotent.
func NormalizeKey(s string) string {
	lowered := strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}
