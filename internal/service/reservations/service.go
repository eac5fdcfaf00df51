package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/JWL-RentalService/internal/domain"
	profileRepo "github.com/m04kA/JWL-RentalService/internal/infra/storage/profile"
	reservationRepo "github.com/m04kA/JWL-RentalService/internal/infra/storage/reservation"
	"github.com/m04kA/JWL-RentalService/internal/service/reservations/models"
)

// Service сервис чтения и отмены бронирований
// Создание бронирований живет в usecase-слое (create_booking, create_bulk_booking),
// здесь только операции над уже существующими записями
type Service struct {
	reservationRepo ReservationRepository
	profileRepo     ProfileRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	profileRepo ProfileRepository,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		profileRepo:     profileRepo,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%s", id)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(res), nil
}

// GetCustomerReservations получает историю бронирований клиента по email
func (s *Service) GetCustomerReservations(ctx context.Context, email string) (*models.ReservationListResponse, error) {
	normalized := domain.NormalizeEmail(email)
	s.logger.Info("GetCustomerReservations: fetching reservations for email=%s", normalized)

	profile, err := s.profileRepo.GetByEmail(ctx, normalized)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			s.logger.Warn("GetCustomerReservations: profile not found for email=%s", normalized)
			return nil, ErrProfileNotFound
		}
		s.logger.Error("GetCustomerReservations: profile lookup error for email=%s: %v", normalized, err)
		return nil, fmt.Errorf("%w: GetCustomerReservations - profile lookup: %v", ErrInternal, err)
	}

	reservations, err := s.reservationRepo.GetByProfileID(ctx, profile.ID)
	if err != nil {
		s.logger.Error("GetCustomerReservations: repository error for profile id=%s: %v", profile.ID, err)
		return nil, fmt.Errorf("%w: GetCustomerReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerReservations: fetched %d reservations for profile id=%s",
		len(reservations), profile.ID)
	return models.FromDomainReservationList(reservations), nil
}

// Cancel отменяет бронирование
// Отмена возможна только из статусов pending и confirmed;
// выданные и завершенные аренды отменять нельзя
func (s *Service) Cancel(ctx context.Context, id string, req *models.CancelReservationRequest) error {
	s.logger.Info("Cancel: cancelling reservation id=%s", id)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%s not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !res.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%s cannot be cancelled, status=%s", id, res.Status)
		return ErrCannotCancel
	}

	if err := s.reservationRepo.Cancel(ctx, id, req.CancellationReason); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%s", id)
	return nil
}
