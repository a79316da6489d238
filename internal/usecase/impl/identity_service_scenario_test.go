package impl

import (
	"context"
	"testing"
	"time"

	"kennel/config"
	domainerrors "kennel/internal/domain/errors"
	"kennel/internal/infra/auth"
	"kennel/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCredentialLifecycle runs the full flow against the real PBKDF2 hasher
// and JWT issuer, with only the store faked: register, duplicate register,
// login, failed login, password change, login with the new password.
func TestCredentialLifecycle(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Auth: &config.AuthConfig{TokenTTL: time.Hour},
	}
	cfg.SecretKey.Access = "lifecycle-test-secret"

	issuer, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	repo := newFakeIdentityRepo()
	svc := NewIdentityService(IdentityServiceParams{
		Repo:   repo,
		Hasher: auth.NewPBKDF2Hasher(),
		Issuer: issuer,
		Config: cfg,
		Logger: newDiscardLogger(),
	})

	ctx := context.Background()

	registered, err := svc.Register(ctx, &usecase.RegisterInput{
		Handle:    "alice",
		Email:     "alice@example.com",
		Password:  "correct horse battery",
		FirstName: "Alice",
	})
	require.NoError(t, err)

	// A second registration with the same handle must be rejected.
	_, err = svc.Register(ctx, &usecase.RegisterInput{
		Handle:   "Alice",
		Email:    "other@example.com",
		Password: "another password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrHandleTaken)

	login, err := svc.Authenticate(ctx, &usecase.AuthenticateInput{
		Email:    "alice@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.Identity.ID, login.Identity.ID)
	require.NotEmpty(t, login.Token)

	claims, err := issuer.ValidateToken(login.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.Identity.ID, claims.IdentityID)
	assert.Equal(t, "alice", claims.Handle)

	_, err = svc.Authenticate(ctx, &usecase.AuthenticateInput{
		Email:    "alice@example.com",
		Password: "wrong horse",
	})
	assert.ErrorIs(t, err, domainerrors.ErrIncorrectPassword)

	err = svc.ChangePassword(ctx, &usecase.ChangePasswordInput{
		Handle:      "alice",
		OldPassword: "correct horse battery",
		NewPassword: "staple gun battery",
	})
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, &usecase.AuthenticateInput{
		Email:    "alice@example.com",
		Password: "correct horse battery",
	})
	assert.ErrorIs(t, err, domainerrors.ErrIncorrectPassword, "old password must stop working after a change")

	relogin, err := svc.Authenticate(ctx, &usecase.AuthenticateInput{
		Email:    "alice@example.com",
		Password: "staple gun battery",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.Identity.ID, relogin.Identity.ID)
}
