// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"kennel/internal/domain/entity"
	domainerrors "kennel/internal/domain/errors"
	"kennel/internal/domain/repository"
	"kennel/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// identityRepository implements the repository.IdentityRepository interface using GORM.
type identityRepository struct {
	db *gorm.DB
}

// NewIdentityRepository is the constructor for identityRepository.
// It returns the repository as a repository.IdentityRepository interface, adhering to dependency inversion.
func NewIdentityRepository(db *gorm.DB) repository.IdentityRepository {
	return &identityRepository{db: db}
}

// FindByHandle retrieves a single identity by its normalized handle.
func (repo *identityRepository) FindByHandle(ctx context.Context, handle string) (*entity.Identity, error) {
	var identityM model.IdentityModel
	err := repo.db.WithContext(ctx).
		Where("handle = ?", handle).
		First(&identityM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, domainerrors.NewStorageError(err, "failed to find identity by handle")
	}

	return toIdentityDomain(&identityM), nil
}

// FindByEmail retrieves a single identity by its normalized email address.
func (repo *identityRepository) FindByEmail(ctx context.Context, email string) (*entity.Identity, error) {
	var identityM model.IdentityModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&identityM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, domainerrors.NewStorageError(err, "failed to find identity by email")
	}

	return toIdentityDomain(&identityM), nil
}

// FindByID retrieves a single identity by its immutable ID.
func (repo *identityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	var identityM model.IdentityModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&identityM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, domainerrors.NewStorageError(err, "failed to find identity by id")
	}

	return toIdentityDomain(&identityM), nil
}

// FindByEmailOrHandle retrieves every identity whose email or handle matches
// the candidate values. Used by the registration conflict pre-filter.
func (repo *identityRepository) FindByEmailOrHandle(ctx context.Context, email, handle string) ([]*entity.Identity, error) {
	var models []model.IdentityModel
	err := repo.db.WithContext(ctx).
		Where("email = ? OR handle = ?", email, handle).
		Find(&models).Error
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to find identities by email or handle")
	}

	identities := make([]*entity.Identity, 0, len(models))
	for i := range models {
		identities = append(identities, toIdentityDomain(&models[i]))
	}

	return identities, nil
}

// FindAll retrieves every identity in the store.
func (repo *identityRepository) FindAll(ctx context.Context) ([]*entity.Identity, error) {
	var models []model.IdentityModel
	if err := repo.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to list identities")
	}

	identities := make([]*entity.Identity, 0, len(models))
	for i := range models {
		identities = append(identities, toIdentityDomain(&models[i]))
	}

	return identities, nil
}

// Upsert writes the identity keyed by its handle in a single atomic
// statement. The email unique constraint can still fire here when two
// registrations race past the conflict pre-filter; that surfaces as a
// conflict error rather than corrupting either record.
func (repo *identityRepository) Upsert(ctx context.Context, identity *entity.Identity) error {
	identityM := fromIdentityDomain(identity)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "handle"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"email", "first_name", "last_name", "salt", "credential_hash", "updated_at",
			}),
		}).
		Create(identityM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailTaken.WrapMessage("identity upsert hit a uniqueness constraint")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required identity fields")
		}

		return domainerrors.NewStorageError(err, "failed to upsert identity")
	}

	identity.CreatedAt = identityM.CreatedAt
	identity.UpdatedAt = identityM.UpdatedAt

	return nil
}

// toIdentityDomain maps the persistence model back to a pure domain entity.
func toIdentityDomain(m *model.IdentityModel) *entity.Identity {
	return &entity.Identity{
		ID:             m.ID,
		Handle:         m.Handle,
		Email:          m.Email,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		Salt:           m.Salt,
		CredentialHash: m.CredentialHash,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// fromIdentityDomain maps a pure domain entity to a GORM persistence model.
func fromIdentityDomain(identity *entity.Identity) *model.IdentityModel {
	return &model.IdentityModel{
		ID:             identity.ID,
		Handle:         identity.Handle,
		Email:          identity.Email,
		FirstName:      identity.FirstName,
		LastName:       identity.LastName,
		Salt:           identity.Salt,
		CredentialHash: identity.CredentialHash,
		CreatedAt:      identity.CreatedAt,
		UpdatedAt:      identity.UpdatedAt,
	}
}
