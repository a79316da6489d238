// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"kennel/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrIdentityNotFound is a domain-specific error returned when no identity
// exists for the given key.
var ErrIdentityNotFound = errors.New("identity not found")

// IdentityRepository is the narrow contract the credential core needs from
// the record store: fetch by unique key, fetch by predicate, upsert. The
// store is treated as opaque, possibly remote and possibly failing; the only
// atomicity assumed is that of a single Upsert call. True uniqueness of
// handle and email is enforced by the store itself; the core's conflict
// check is a best-effort pre-filter, not the integrity mechanism.
//
// All key arguments must already be normalized (entity.NormalizeKey).
type IdentityRepository interface {
	// FindByHandle retrieves a single identity by its handle, the store's
	// primary lookup key.
	FindByHandle(ctx context.Context, handle string) (*entity.Identity, error)

	// FindByEmail retrieves a single identity by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Identity, error)

	// FindByID retrieves a single identity by its immutable ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error)

	// FindByEmailOrHandle retrieves every identity whose email equals email
	// OR whose handle equals handle. Order unspecified, possibly empty.
	FindByEmailOrHandle(ctx context.Context, email, handle string) ([]*entity.Identity, error)

	// FindAll retrieves every identity in the store.
	FindAll(ctx context.Context) ([]*entity.Identity, error)

	// Upsert writes the identity keyed by its handle, inserting or replacing
	// the existing record in a single atomic call.
	Upsert(ctx context.Context, identity *entity.Identity) error
}
