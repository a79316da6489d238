package service

import (
	"kennel/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by issued tokens.
type Claims struct {
	IdentityID uuid.UUID
	Handle     string
	jwt.RegisteredClaims
}

// TokenIssuer produces the opaque signed token returned on successful
// authentication. The core issues exactly one token per successful login and
// treats its internal structure as out of scope.
type TokenIssuer interface {
	// IssueToken creates a signed token for the verified identity.
	IssueToken(identity *entity.Identity) (string, error)

	// ValidateToken checks the validity of a token string and returns its
	// claims.
	ValidateToken(tokenString string) (*Claims, error)
}
