package profile

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/JWL-RentalService/internal/domain"
	"github.com/m04kA/JWL-RentalService/pkg/ptr"
)

func TestCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(
			"INSERT INTO profiles (id,email,full_name,company_name,organization_domain,role) "+
				"VALUES ($1,$2,$3,$4,$5,$6) RETURNING created_at, updated_at")).
			WithArgs("profile-1", "jane@acme.com", "Jane Doe", nil, "acme.com", domain.RoleCustomer).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

		created, err := repo.Create(context.Background(), &domain.Profile{
			ID:                 "profile-1",
			Email:              "jane@acme.com",
			FullName:           "Jane Doe",
			OrganizationDomain: ptr.Ptr("acme.com"),
			Role:               domain.RoleCustomer,
		})
		require.NoError(t, err)
		assert.Equal(t, now, created.CreatedAt)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO profiles").
			WillReturnError(&pq.Error{Code: "23505"})

		_, err := repo.Create(context.Background(), &domain.Profile{
			ID:       "profile-2",
			Email:    "jane@acme.com",
			FullName: "Jane Doe",
			Role:     domain.RoleCustomer,
		})
		require.ErrorIs(t, err, ErrDuplicateEmail)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM profiles WHERE email = $1")).
			WithArgs("jane@acme.com").
			WillReturnRows(sqlmock.NewRows(profileColumns).
				AddRow("profile-1", "jane@acme.com", "Jane Doe", nil, "acme.com", "customer", now, now))

		p, err := repo.GetByEmail(context.Background(), "jane@acme.com")
		require.NoError(t, err)
		assert.Equal(t, "profile-1", p.ID)
		require.NotNil(t, p.OrganizationDomain)
		assert.Equal(t, "acme.com", *p.OrganizationDomain)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM profiles WHERE email = $1")).
			WithArgs("missing@acme.com").
			WillReturnRows(sqlmock.NewRows(profileColumns))

		_, err := repo.GetByEmail(context.Background(), "missing@acme.com")
		require.ErrorIs(t, err, ErrProfileNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

// Дозаполнение домена никогда не перезаписывает уже выведенное значение:
// UPDATE ограничен строками с organization_domain IS NULL
func TestUpdateOrganizationDomain(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("backfills null domain", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(
			"UPDATE profiles SET organization_domain = $1, updated_at = NOW() "+
				"WHERE id = $2 AND organization_domain IS NULL")).
			WithArgs("acme.com", "profile-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateOrganizationDomain(context.Background(), "profile-1", "acme.com"))
	})

	t.Run("already set is not an error", func(t *testing.T) {
		mock.ExpectExec("UPDATE profiles").
			WithArgs("acme.com", "profile-1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, repo.UpdateOrganizationDomain(context.Background(), "profile-1", "acme.com"))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
