package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/JWL-RentalService/internal/domain"
	"github.com/m04kA/JWL-RentalService/pkg/dbmetrics"
	"github.com/m04kA/JWL-RentalService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL при нарушении уникальности
const pgUniqueViolation = "23505"

var profileColumns = []string{
	"id",
	"email",
	"full_name",
	"company_name",
	"organization_domain",
	"role",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с профилями клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория профилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый профиль клиента
// Email должен быть заранее нормализован (см. domain.NormalizeEmail)
func (r *Repository) Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("profiles").
		Columns(
			"id",
			"email",
			"full_name",
			"company_name",
			"organization_domain",
			"role",
		).
		Values(
			p.ID,
			p.Email,
			p.FullName,
			p.CompanyName,
			p.OrganizationDomain,
			p.Role,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}

// GetByEmail получает профиль по нормализованному email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(profileColumns...).
		From("profiles").
		Where(squirrel.Eq{"email": email}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Profile
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.Email,
		&p.FullName,
		&p.CompanyName,
		&p.OrganizationDomain,
		&p.Role,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - scan profile: %v", ErrScanRow, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

// UpdateOrganizationDomain дозаполняет домен организации профиля
// Обновляет только строки с organization_domain IS NULL — однажды
// выведенный домен никогда не перезаписывается
func (r *Repository) UpdateOrganizationDomain(ctx context.Context, id string, orgDomain string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("profiles").
		Set("organization_domain", orgDomain).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"organization_domain": nil}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateOrganizationDomain - build update query: %v", ErrBuildQuery, err)
	}

	// rowsAffected = 0 означает, что домен уже заполнен — это не ошибка
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpdateOrganizationDomain - execute update: %v", ErrExecQuery, err)
	}

	return nil
}
