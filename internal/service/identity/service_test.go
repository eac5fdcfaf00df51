package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/JWL-RentalService/internal/domain"
	profileRepo "github.com/m04kA/JWL-RentalService/internal/infra/storage/profile"
)

// fakeProfileRepo in-memory реализация ProfileRepository для тестов
type fakeProfileRepo struct {
	byEmail     map[string]*domain.Profile
	createCalls int
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{byEmail: make(map[string]*domain.Profile)}
}

func (f *fakeProfileRepo) GetByEmail(_ context.Context, email string) (*domain.Profile, error) {
	if p, ok := f.byEmail[email]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, profileRepo.ErrProfileNotFound
}

func (f *fakeProfileRepo) Create(_ context.Context, p *domain.Profile) (*domain.Profile, error) {
	f.createCalls++
	if _, ok := f.byEmail[p.Email]; ok {
		return nil, profileRepo.ErrDuplicateEmail
	}
	cp := *p
	f.byEmail[p.Email] = &cp
	return p, nil
}

func (f *fakeProfileRepo) UpdateOrganizationDomain(_ context.Context, id string, orgDomain string) error {
	for _, p := range f.byEmail {
		if p.ID == id && p.OrganizationDomain == nil {
			p.OrganizationDomain = &orgDomain
		}
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestResolveDeduplicatesByNormalizedEmail(t *testing.T) {
	repo := newFakeProfileRepo()
	resolver := NewResolver(repo, nopLogger{})

	first, err := resolver.Resolve(context.Background(), "Jane@Example.com", "Jane Doe", nil)
	require.NoError(t, err)

	second, err := resolver.Resolve(context.Background(), "jane@example.com", "Jane Doe", nil)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "jane@example.com", first.Email)
	assert.Equal(t, 1, repo.createCalls)
}

func TestResolveDerivesOrganizationDomain(t *testing.T) {
	repo := newFakeProfileRepo()
	resolver := NewResolver(repo, nopLogger{})

	t.Run("public webmail gives no organization", func(t *testing.T) {
		p, err := resolver.Resolve(context.Background(), "jane@gmail.com", "Jane Doe", nil)
		require.NoError(t, err)
		assert.Nil(t, p.OrganizationDomain)
	})

	t.Run("corporate domain is the organization signal", func(t *testing.T) {
		p, err := resolver.Resolve(context.Background(), "jane@acme.com", "Jane Doe", nil)
		require.NoError(t, err)
		require.NotNil(t, p.OrganizationDomain)
		assert.Equal(t, "acme.com", *p.OrganizationDomain)
	})

	t.Run("role defaults to customer", func(t *testing.T) {
		p, err := resolver.Resolve(context.Background(), "bob@acme.com", "Bob Roe", nil)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleCustomer, p.Role)
		assert.NotEmpty(t, p.ID)
	})
}

func TestResolveBackfillsNullDomainOnly(t *testing.T) {
	repo := newFakeProfileRepo()
	resolver := NewResolver(repo, nopLogger{})

	// Профиль создан без домена (публичный почтовый сервис)
	existing := &domain.Profile{
		ID:    "profile-1",
		Email: "jane@example.org",
		Role:  domain.RoleCustomer,
	}
	repo.byEmail[existing.Email] = existing

	resolved, err := resolver.Resolve(context.Background(), "Jane@Example.org", "Jane Doe", nil)
	require.NoError(t, err)
	require.NotNil(t, resolved.OrganizationDomain)
	assert.Equal(t, "example.org", *resolved.OrganizationDomain)

	// Повторное разрешение не перезаписывает заполненный домен
	otherDomain := "filled.example"
	repo.byEmail[existing.Email].OrganizationDomain = &otherDomain

	resolved, err = resolver.Resolve(context.Background(), "jane@example.org", "Jane Doe", nil)
	require.NoError(t, err)
	require.NotNil(t, resolved.OrganizationDomain)
	assert.Equal(t, "filled.example", *resolved.OrganizationDomain)
}

func TestResolveHandlesConcurrentCreate(t *testing.T) {
	repo := newFakeProfileRepo()
	resolver := NewResolver(repo, nopLogger{})

	// Симулируем профиль, появившийся между lookup и insert
	raceRepo := &racingProfileRepo{fakeProfileRepo: repo}
	resolver = NewResolver(raceRepo, nopLogger{})

	p, err := resolver.Resolve(context.Background(), "jane@acme.com", "Jane Doe", nil)
	require.NoError(t, err)
	assert.Equal(t, "winner", p.ID)
}

// racingProfileRepo при первом lookup отвечает not found,
// а на insert — duplicate, как будто конкурент успел создать профиль
type racingProfileRepo struct {
	*fakeProfileRepo
	attempted bool
}

func (r *racingProfileRepo) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	if !r.attempted {
		return nil, profileRepo.ErrProfileNotFound
	}
	return &domain.Profile{ID: "winner", Email: email, Role: domain.RoleCustomer}, nil
}

func (r *racingProfileRepo) Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	r.attempted = true
	return nil, profileRepo.ErrDuplicateEmail
}
