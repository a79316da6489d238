// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"kennel/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new identity.
type RegisterInput struct {
	Handle    string `json:"handle" validate:"required,min=3,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// AuthenticateInput defines the data required to log in.
type AuthenticateInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordInput defines the data required to rotate a credential.
type ChangePasswordInput struct {
	Handle      string `json:"handle" validate:"required"`
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

// UpdateProfileInput defines the profile fields an identity may change.
// Credentials are only ever touched through ChangePassword.
type UpdateProfileInput struct {
	Handle    string `json:"handle" validate:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// --- Output DTOs ---

// PublicIdentity is the externally visible projection of an identity.
// Salt and credential hash never leave the core.
type PublicIdentity struct {
	ID        uuid.UUID `json:"id"`
	Handle    string    `json:"handle"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewPublicIdentity is the total conversion from the domain entity to its
// public projection. Every exposed field is assigned here; secret material
// has no counterpart by construction.
func NewPublicIdentity(identity *entity.Identity) PublicIdentity {
	return PublicIdentity{
		ID:        identity.ID,
		Handle:    identity.Handle,
		Email:     identity.Email,
		FirstName: identity.FirstName,
		LastName:  identity.LastName,
		CreatedAt: identity.CreatedAt,
	}
}

// RegisterOutput returns the newly created identity's public projection.
type RegisterOutput struct {
	Identity PublicIdentity `json:"identity"`
}

// AuthenticateOutput returns the verified identity and its session token.
type AuthenticateOutput struct {
	Identity PublicIdentity `json:"identity"`
	Token    string         `json:"token"`
}

// IdentityUsecase defines the interface for credential-lifecycle operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type IdentityUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Authenticate(ctx context.Context, input *AuthenticateInput) (*AuthenticateOutput, error)
	ChangePassword(ctx context.Context, input *ChangePasswordInput) error

	GetIdentity(ctx context.Context, handle string) (*PublicIdentity, error)
	ListIdentities(ctx context.Context) ([]PublicIdentity, error)
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*PublicIdentity, error)
}
