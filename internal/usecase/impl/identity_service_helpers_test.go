package impl

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"kennel/config"
	"kennel/internal/domain/entity"
	domainerrors "kennel/internal/domain/errors"
	"kennel/internal/domain/repository"
	"kennel/internal/domain/service"
	"kennel/internal/usecase"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(preserveSalt bool) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			PreserveSaltOnChange: preserveSalt,
		},
	}
}

// fakeIdentityRepo is an in-memory stand-in for the identity store. It keeps
// records in a plain slice so tests can also stage abnormal states (duplicate
// handles or emails) that a constrained database would reject.
type fakeIdentityRepo struct {
	mu      sync.Mutex
	records []*entity.Identity

	findErr   error
	upsertErr error
}

func newFakeIdentityRepo() *fakeIdentityRepo {
	return &fakeIdentityRepo{}
}

func (f *fakeIdentityRepo) seed(identity *entity.Identity) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, identity)
}

func (f *fakeIdentityRepo) FindByHandle(_ context.Context, handle string) (*entity.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, r := range f.records {
		if r.Handle == handle {
			cloned := *r

			return &cloned, nil
		}
	}

	return nil, repository.ErrIdentityNotFound
}

func (f *fakeIdentityRepo) FindByEmail(_ context.Context, email string) (*entity.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, r := range f.records {
		if r.Email == email {
			cloned := *r

			return &cloned, nil
		}
	}

	return nil, repository.ErrIdentityNotFound
}

func (f *fakeIdentityRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, r := range f.records {
		if r.ID == id {
			cloned := *r

			return &cloned, nil
		}
	}

	return nil, repository.ErrIdentityNotFound
}

func (f *fakeIdentityRepo) FindByEmailOrHandle(_ context.Context, email, handle string) ([]*entity.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	var matches []*entity.Identity
	for _, r := range f.records {
		if r.Email == email || r.Handle == handle {
			cloned := *r
			matches = append(matches, &cloned)
		}
	}

	return matches, nil
}

func (f *fakeIdentityRepo) FindAll(_ context.Context) ([]*entity.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	all := make([]*entity.Identity, 0, len(f.records))
	for _, r := range f.records {
		cloned := *r
		all = append(all, &cloned)
	}

	return all, nil
}

func (f *fakeIdentityRepo) Upsert(_ context.Context, identity *entity.Identity) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return f.upsertErr
	}
	cloned := *identity
	for i, r := range f.records {
		if r.Handle == identity.Handle {
			f.records[i] = &cloned

			return nil
		}
	}
	f.records = append(f.records, &cloned)

	return nil
}

// stubHasher is a fast, deterministic CredentialHasher for flow tests. Salts
// come from a counter so consecutive calls never collide.
type stubHasher struct {
	mu      sync.Mutex
	counter byte
	saltErr error
}

func (s *stubHasher) GenerateSalt() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saltErr != nil {
		return nil, s.saltErr
	}
	s.counter++
	salt := make([]byte, service.SaltLength)
	salt[0] = s.counter

	return salt, nil
}

func (s *stubHasher) DeriveKey(password string, salt []byte) []byte {
	return []byte(fmt.Sprintf("key|%s|%x", password, salt))
}

func (s *stubHasher) Verify(password string, salt []byte, expectedHash string) bool {
	return base64.StdEncoding.EncodeToString(s.DeriveKey(password, salt)) == expectedHash
}

// stubIssuer returns a predictable token per identity.
type stubIssuer struct {
	issueErr error
}

func (s *stubIssuer) IssueToken(identity *entity.Identity) (string, error) {
	if s.issueErr != nil {
		return "", s.issueErr
	}

	return "token-" + identity.Handle, nil
}

func (s *stubIssuer) ValidateToken(string) (*service.Claims, error) {
	return nil, domainerrors.ErrTokenInvalid
}

// identityServiceFixtures holds all test dependencies for identity service tests.
type identityServiceFixtures struct {
	service usecase.IdentityUsecase
	repo    *fakeIdentityRepo
	hasher  *stubHasher
	issuer  *stubIssuer
}

func createTestIdentityService(preserveSalt bool) identityServiceFixtures {
	repo := newFakeIdentityRepo()
	hasher := &stubHasher{}
	issuer := &stubIssuer{}

	svc := NewIdentityService(IdentityServiceParams{
		Repo:   repo,
		Hasher: hasher,
		Issuer: issuer,
		Config: newTestConfig(preserveSalt),
		Logger: newDiscardLogger(),
	})

	return identityServiceFixtures{
		service: svc,
		repo:    repo,
		hasher:  hasher,
		issuer:  issuer,
	}
}

// seedIdentity registers a ready-made record with a credential derived by the
// stub hasher.
func (f identityServiceFixtures) seedIdentity(handle, email, password string) *entity.Identity {
	salt, _ := f.hasher.GenerateSalt()
	identity := &entity.Identity{
		ID:             uuid.New(),
		Handle:         handle,
		Email:          email,
		Salt:           salt,
		CredentialHash: base64.StdEncoding.EncodeToString(f.hasher.DeriveKey(password, salt)),
	}
	f.repo.seed(identity)

	return identity
}
