package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/JWL-RentalService/internal/domain"
	profileRepo "github.com/m04kA/JWL-RentalService/internal/infra/storage/profile"
)

// Resolver сервис разрешения личности клиента по email
// Гарантирует ровно один профиль на нормализованный email
type Resolver struct {
	profileRepo ProfileRepository
	logger      Logger
}

// NewResolver создает новый экземпляр сервиса
func NewResolver(profileRepo ProfileRepository, logger Logger) *Resolver {
	return &Resolver{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// Resolve находит профиль по email или создает новый
//
// Для существующего профиля дозаполняет organization_domain, если он был NULL
// и из текущего email выводится непубличный домен. Однажды заполненный домен
// никогда не перезаписывается.
//
// Для нового профиля: домен организации выводится из email (NULL для публичных
// почтовых сервисов), роль customer, id — свежий uuid.
func (r *Resolver) Resolve(ctx context.Context, email, fullName string, companyName *string) (*domain.Profile, error) {
	normalized := domain.NormalizeEmail(email)

	existing, err := r.profileRepo.GetByEmail(ctx, normalized)
	if err != nil && !errors.Is(err, profileRepo.ErrProfileNotFound) {
		r.logger.Error("Resolve: failed to lookup profile email=%s: %v", normalized, err)
		return nil, fmt.Errorf("%w: Resolve - lookup: %v", ErrInternal, err)
	}

	if existing != nil {
		if existing.OrganizationDomain == nil {
			if derived := domain.DeriveOrganizationDomain(normalized); derived != nil {
				if err := r.profileRepo.UpdateOrganizationDomain(ctx, existing.ID, *derived); err != nil {
					// Дозаполнение не критично для бронирования, ошибку только логируем
					r.logger.Warn("Resolve: failed to backfill organization domain for profile id=%s: %v",
						existing.ID, err)
				} else {
					existing.OrganizationDomain = derived
				}
			}
		}

		r.logger.Info("Resolve: reusing profile id=%s for email=%s", existing.ID, normalized)
		return existing, nil
	}

	profile := &domain.Profile{
		ID:                 uuid.New().String(),
		Email:              normalized,
		FullName:           fullName,
		CompanyName:        companyName,
		OrganizationDomain: domain.DeriveOrganizationDomain(normalized),
		Role:               domain.RoleCustomer,
	}

	created, err := r.profileRepo.Create(ctx, profile)
	if err != nil {
		// Конкурирующий запрос мог создать профиль между lookup и insert
		if errors.Is(err, profileRepo.ErrDuplicateEmail) {
			existing, lookupErr := r.profileRepo.GetByEmail(ctx, normalized)
			if lookupErr == nil {
				r.logger.Info("Resolve: concurrent create detected, reusing profile id=%s", existing.ID)
				return existing, nil
			}
		}
		r.logger.Error("Resolve: failed to create profile email=%s: %v", normalized, err)
		return nil, fmt.Errorf("%w: Resolve - create: %v", ErrProfileWrite, err)
	}

	r.logger.Info("Resolve: created profile id=%s for email=%s", created.ID, normalized)
	return created, nil
}
