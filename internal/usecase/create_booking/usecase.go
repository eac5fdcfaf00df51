package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/JWL-RentalService/internal/domain"
	itemRepo "github.com/m04kA/JWL-RentalService/internal/infra/storage/item"
	reservationRepo "github.com/m04kA/JWL-RentalService/internal/infra/storage/reservation"
)

// UseCase use case создания бронирования одного изделия
type UseCase struct {
	reservationRepo ReservationRepository
	itemRepo        ItemRepository
	settingsRepo    SettingsRepository
	identity        IdentityResolver
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	itemRepo ItemRepository,
	settingsRepo SettingsRepository,
	identity IdentityResolver,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		itemRepo:        itemRepo,
		settingsRepo:    settingsRepo,
		identity:        identity,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Последовательность проверок фиксирована и прерывается на первой ошибке:
// email → даты → пароль доступа → доступность изделия → профиль клиента → вставка.
// Предварительная проверка доступности выполняется вне транзакции и носит
// справочный характер; решающая проверка повторяется внутри сериализуемой
// транзакции с блокировкой строк (FOR UPDATE) непосредственно перед вставкой,
// так что два конкурирующих запроса не могут забронировать одно изделие
// на пересекающиеся даты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: item=%s, email=%s, dates=%s..%s",
		req.ItemID, req.Email, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1-2. Валидация входных данных — до любых обращений к хранилищу
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	candidate := domain.NewDateRange(req.StartDate, req.EndDate)

	// 3. Снэпшот настроек и пароль доступа
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to load settings: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrSettingsUnavailable, err)
	}

	if err := validatePasswordGate(settings, req.AccessPassword); err != nil {
		uc.logger.Warn("CreateBooking: access password mismatch for email=%s", req.Email)
		return nil, err
	}

	// 4. Изделие и предварительная проверка доступности (вне транзакции, справочно)
	if err := uc.checkItemAvailable(ctx, req.ItemID, candidate, settings.TurnaroundBufferDays); err != nil {
		return nil, err
	}

	// 5. Разрешение личности клиента
	profile, err := uc.identity.Resolve(ctx, req.Email, req.FullName, req.CompanyName)
	if err != nil {
		uc.logger.Error("CreateBooking: identity resolution failed for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: %v", ErrProfileWrite, err)
	}

	// 6. Решающая проверка и вставка в сериализуемой транзакции
	var result *domain.Reservation

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.checkItemAvailable(txCtx, req.ItemID, candidate, settings.TurnaroundBufferDays); err != nil {
			return err
		}

		reservation := &domain.Reservation{
			ID:        uuid.New().String(),
			ItemID:    req.ItemID,
			ProfileID: profile.ID,
			StartDate: candidate.From,
			EndDate:   candidate.To,
			Status:    domain.StatusPending,
			Notes:     req.Notes,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrOverlapConflict) {
				uc.logger.Warn("CreateBooking: overlap constraint rejected insert for item=%s", req.ItemID)
				return ErrItemNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create reservation for item=%s: %v", req.ItemID, err)
			return fmt.Errorf("%w: %v", ErrReservationWrite, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created reservation id=%s for item=%s",
		result.ID, result.ItemID)

	return &Response{
		ReservationID: result.ID,
		ItemID:        result.ItemID,
		ProfileID:     result.ProfileID,
		StartDate:     result.StartDate,
		EndDate:       result.EndDate,
		Status:        string(result.Status),
		Notes:         result.Notes,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}

// checkItemAvailable проверяет, что изделие можно бронировать и что
// запрошенный диапазон не пересекается с занятыми окнами (включая буфер)
// Внутри транзакции чтение блокирующих бронирований выполняется с FOR UPDATE
func (uc *UseCase) checkItemAvailable(ctx context.Context, itemID string, candidate domain.DateRange, bufferDays int) error {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, itemRepo.ErrItemNotFound) {
			uc.logger.Warn("CreateBooking: item id=%s not found", itemID)
			return ErrItemNotFound
		}
		uc.logger.Error("CreateBooking: failed to get item id=%s: %v", itemID, err)
		return fmt.Errorf("%w: failed to get item: %v", ErrInternal, err)
	}

	if !item.IsBookable() {
		uc.logger.Warn("CreateBooking: item id=%s is not bookable, status=%s", itemID, item.Status)
		return ErrItemNotBookable
	}

	blocking, err := uc.reservationRepo.GetBlockingByItemID(ctx, itemID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get blocking reservations for item=%s: %v", itemID, err)
		return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	if conflict := domain.FirstConflict(candidate, blocking, bufferDays); conflict != nil {
		uc.logger.Warn("CreateBooking: item=%s unavailable, conflicts with reservation id=%s (%s..%s, buffer=%d)",
			itemID, conflict.ID,
			conflict.StartDate.Format(domain.DateFormat), conflict.EndDate.Format(domain.DateFormat),
			bufferDays)
		return ErrItemNotAvailable
	}

	return nil
}
