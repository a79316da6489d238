// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"encoding/base64"
	"log/slog"

	"kennel/config"
	"kennel/internal/domain/entity"
	domainerrors "kennel/internal/domain/errors"
	"kennel/internal/domain/repository"
	"kennel/internal/domain/service"
	"kennel/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// identityService implements the IdentityUsecase interface. Each operation is
// an independent request-response unit: no state is shared between requests
// beyond the injected store adapter.
type identityService struct {
	repo         repository.IdentityRepository
	hasher       service.CredentialHasher
	issuer       service.TokenIssuer
	preserveSalt bool
	logger       *slog.Logger
}

// IdentityServiceParams holds dependencies for the identity service, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	Repo   repository.IdentityRepository
	Hasher service.CredentialHasher
	Issuer service.TokenIssuer
	Config *config.Config
	Logger *slog.Logger
}

// NewIdentityService is the constructor for identityService. It receives all dependencies as interfaces.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	preserveSalt := false
	if params.Config != nil && params.Config.Auth != nil {
		preserveSalt = params.Config.Auth.PreserveSaltOnChange
	}

	return &identityService{
		repo:         params.Repo,
		hasher:       params.Hasher,
		issuer:       params.Issuer,
		preserveSalt: preserveSalt,
		logger:       params.Logger,
	}
}

// Register creates a new identity: conflict pre-check, fresh salt, derived
// credential hash, single upsert keyed by handle. The check-then-write
// sequence is not atomic across concurrent requests; the store's uniqueness
// constraints are the real integrity mechanism.
func (srv *identityService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	handle := entity.NormalizeKey(input.Handle)
	email := entity.NormalizeKey(input.Email)
	if handle == "" || email == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("handle and email must be non-empty after normalization")
	}

	srv.logger.Info("Starting registration", slog.String("handle", handle), slog.String("email", email))

	matches, err := srv.repo.FindByEmailOrHandle(ctx, email, handle)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query existing identities")
	}
	if !entity.ConsistentMatches(matches) {
		srv.logger.Error("Duplicate identity records in store", slog.String("handle", handle), slog.String("email", email))

		return nil, domainerrors.ErrIdentityConflictState.WrapMessage("registration aborted")
	}

	switch entity.ResolveConflict(matches, email, handle) {
	case entity.EmailAndHandleTaken:
		return nil, domainerrors.ErrHandleAndEmailTaken.WrapMessage("registration failed")
	case entity.HandleTaken:
		return nil, domainerrors.ErrHandleTaken.WrapMessage("registration failed")
	case entity.EmailTaken:
		return nil, domainerrors.ErrEmailTaken.WrapMessage("registration failed")
	case entity.NoConflict:
	}

	salt, err := srv.hasher.GenerateSalt()
	if err != nil {
		srv.logger.Error("Salt generation failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate salt")
	}

	identity := &entity.Identity{
		ID:             uuid.New(),
		Handle:         handle,
		Email:          email,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Salt:           salt,
		CredentialHash: encodeKey(srv.hasher.DeriveKey(input.Password, salt)),
	}

	if err := srv.repo.Upsert(ctx, identity); err != nil {
		srv.logger.Error("Failed to persist new identity", slog.String("handle", handle), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to persist new identity")
	}

	srv.logger.Debug("Identity registered", slog.String("identityID", identity.ID.String()))

	return &usecase.RegisterOutput{Identity: usecase.NewPublicIdentity(identity)}, nil
}

// Authenticate verifies a login attempt and issues exactly one token on
// success. Unknown email and wrong password remain distinct error kinds; how
// much of that distinction reaches the wire is the delivery layer's policy.
func (srv *identityService) Authenticate(ctx context.Context, input *usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error) {
	email := entity.NormalizeKey(input.Email)

	srv.logger.Debug("Starting authentication", slog.String("email", email))

	identity, err := srv.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			return nil, domainerrors.ErrIdentityNotFound.WrapMessage("authentication failed")
		}

		return nil, errors.Wrap(err, "failed to find identity by email")
	}

	if !srv.hasher.Verify(input.Password, identity.Salt, identity.CredentialHash) {
		srv.logger.Warn("Authentication failed", slog.String("email", email))

		return nil, domainerrors.ErrIncorrectPassword.WrapMessage("authentication failed")
	}

	token, err := srv.issuer.IssueToken(identity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.logger.Debug("Authentication succeeded", slog.String("identityID", identity.ID.String()))

	return &usecase.AuthenticateOutput{
		Identity: usecase.NewPublicIdentity(identity),
		Token:    token,
	}, nil
}

// ChangePassword verifies the old password, derives a hash for the new one
// and writes the updated record. The salt rotates on every change unless the
// legacy preserve-salt mode is configured. Nothing is mutated on a failed
// verification, and store failures always propagate.
func (srv *identityService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) error {
	handle := entity.NormalizeKey(input.Handle)

	srv.logger.Info("Starting password change", slog.String("handle", handle))

	identity, err := srv.repo.FindByHandle(ctx, handle)
	if err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			return domainerrors.ErrIdentityNotFound.WrapMessage("password change failed")
		}

		return errors.Wrap(err, "failed to find identity by handle")
	}

	if !srv.hasher.Verify(input.OldPassword, identity.Salt, identity.CredentialHash) {
		return domainerrors.ErrIncorrectPassword.WrapMessage("password change failed")
	}

	salt := identity.Salt
	if !srv.preserveSalt {
		salt, err = srv.hasher.GenerateSalt()
		if err != nil {
			srv.logger.Error("Salt rotation failed", slog.Any("error", err))

			return errors.Wrap(err, "failed to rotate salt")
		}
	}

	identity.Salt = salt
	identity.CredentialHash = encodeKey(srv.hasher.DeriveKey(input.NewPassword, salt))

	if err := srv.repo.Upsert(ctx, identity); err != nil {
		srv.logger.Error("Failed to persist password change", slog.String("handle", handle), slog.Any("error", err))

		return errors.Wrap(err, "failed to persist password change")
	}

	srv.logger.Debug("Password changed", slog.String("identityID", identity.ID.String()))

	return nil
}

// GetIdentity fetches one identity by handle.
func (srv *identityService) GetIdentity(ctx context.Context, handle string) (*usecase.PublicIdentity, error) {
	identity, err := srv.repo.FindByHandle(ctx, entity.NormalizeKey(handle))
	if err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			return nil, domainerrors.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to find identity by handle")
	}

	view := usecase.NewPublicIdentity(identity)

	return &view, nil
}

// ListIdentities returns the public projection of every identity.
func (srv *identityService) ListIdentities(ctx context.Context) ([]usecase.PublicIdentity, error) {
	identities, err := srv.repo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list identities")
	}

	views := make([]usecase.PublicIdentity, 0, len(identities))
	for _, identity := range identities {
		views = append(views, usecase.NewPublicIdentity(identity))
	}

	return views, nil
}

// UpdateProfile changes the profile fields carried on an identity. The
// credential pair (salt, hash) is left untouched.
func (srv *identityService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*usecase.PublicIdentity, error) {
	handle := entity.NormalizeKey(input.Handle)

	identity, err := srv.repo.FindByHandle(ctx, handle)
	if err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			return nil, domainerrors.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to find identity by handle")
	}

	identity.FirstName = input.FirstName
	identity.LastName = input.LastName

	if err := srv.repo.Upsert(ctx, identity); err != nil {
		return nil, errors.Wrap(err, "failed to persist profile update")
	}

	view := usecase.NewPublicIdentity(identity)

	return &view, nil
}

// encodeKey renders a derived key in the form credential hashes are stored in.
func encodeKey(key []byte) string {
	return base64.StdEncoding.EncodeToString(key)
}
