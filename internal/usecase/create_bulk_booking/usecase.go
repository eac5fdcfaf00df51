package create_bulk_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/JWL-RentalService/internal/domain"
	reservationRepo "github.com/m04kA/JWL-RentalService/internal/infra/storage/reservation"
	"github.com/m04kA/JWL-RentalService/pkg/ptr"
)

// UseCase use case группового бронирования нескольких изделий
// Группа создается целиком или не создается вовсе: частичных наборов не бывает
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

// Execute выполняет use case группового бронирования
//
// Проверки те же, что у одиночного бронирования, но доступность проверяется
// для каждого изделия запроса: отказ по любому изделию отклоняет весь запрос.
// Вставка всех строк группы выполняется одним запросом внутри сериализуемой
// транзакции, после повторной проверки доступности с блокировкой строк
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBulkBooking: items=%d, email=%s, dates=%s..%s",
		len(req.ItemIDs), req.Email, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1-2. Валидация входных данных — до любых обращений к хранилищу
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBulkBooking: validation failed: %v", err)
		return nil, err
	}

	candidate := domain.NewDateRange(req.StartDate, req.EndDate)

	// 3. Снэпшот настроек и пароль доступа
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("CreateBulkBooking: failed to load settings: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrSettingsUnavailable, err)
	}

	if err := validatePasswordGate(settings, req.AccessPassword); err != nil {
		uc.logger.Warn("CreateBulkBooking: access password mismatch for email=%s", req.Email)
		return nil, err
	}

	// 4. Предварительная проверка доступности всех изделий (вне транзакции)
	if err := uc.checkAllItemsAvailable(ctx, req.ItemIDs, candidate, settings.TurnaroundBufferDays); err != nil {
		return nil, err
	}

	// 5. Разрешение личности клиента
	profile, err := uc.identity.Resolve(ctx, req.Email, req.FullName, req.CompanyName)
	if err != nil {
		uc.logger.Error("CreateBulkBooking: identity resolution failed for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: %v", ErrProfileWrite, err)
	}

	// 6. Решающая проверка и вставка группы в сериализуемой транзакции
	groupID := uuid.New().String()
	reservationIDs := make([]string, 0, len(req.ItemIDs))

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		reservationIDs = reservationIDs[:0]

		if err := uc.checkAllItemsAvailable(txCtx, req.ItemIDs, candidate, settings.TurnaroundBufferDays); err != nil {
			return err
		}

		reservations := make([]*domain.Reservation, 0, len(req.ItemIDs))
		for _, itemID := range req.ItemIDs {
			id := uuid.New().String()
			reservations = append(reservations, &domain.Reservation{
				ID:        id,
				ItemID:    itemID,
				ProfileID: profile.ID,
				StartDate: candidate.From,
				EndDate:   candidate.To,
				Status:    domain.StatusPending,
				GroupID:   ptr.Ptr(groupID),
				Notes:     req.Notes,
			})
			reservationIDs = append(reservationIDs, id)
		}

		if err := uc.reservationRepo.CreateGroup(txCtx, reservations); err != nil {
			if errors.Is(err, reservationRepo.ErrOverlapConflict) {
				uc.logger.Warn("CreateBulkBooking: overlap constraint rejected group insert, group=%s", groupID)
				return ErrItemNotAvailable
			}
			uc.logger.Error("CreateBulkBooking: failed to create reservation group=%s: %v", groupID, err)
			return fmt.Errorf("%w: %v", ErrReservationWrite, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBulkBooking: successfully created group=%s with %d reservations",
		groupID, len(reservationIDs))

	return &Response{
		GroupID:        groupID,
		ReservationIDs: reservationIDs,
		ProfileID:      profile.ID,
		StartDate:      candidate.From,
		EndDate:        candidate.To,
		Status:         string(domain.StatusPending),
	}, nil
}

// checkAllItemsAvailable проверяет существование, статус и доступность
// каждого изделия запроса; любой отказ отклоняет весь групповой запрос
func (uc *UseCase) checkAllItemsAvailable(ctx context.Context, itemIDs []string, candidate domain.DateRange, bufferDays int) error {
	items, err := uc.itemRepo.GetByIDs(ctx, itemIDs)
	if err != nil {
		uc.logger.Error("CreateBulkBooking: failed to get items: %v", err)
		return fmt.Errorf("%w: failed to get items: %v", ErrInternal, err)
	}

	byID := make(map[string]*domain.Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	for _, itemID := range itemIDs {
		item, ok := byID[itemID]
		if !ok {
			uc.logger.Warn("CreateBulkBooking: item id=%s not found", itemID)
			return ErrItemNotFound
		}

		if !item.IsBookable() {
			uc.logger.Warn("CreateBulkBooking: item id=%s is not bookable, status=%s", itemID, item.Status)
			return ErrItemNotBookable
		}

		blocking, err := uc.reservationRepo.GetBlockingByItemID(ctx, itemID)
		if err != nil {
			uc.logger.Error("CreateBulkBooking: failed to get blocking reservations for item=%s: %v", itemID, err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		if conflict := domain.FirstConflict(candidate, blocking, bufferDays); conflict != nil {
			uc.logger.Warn("CreateBulkBooking: item=%s unavailable, conflicts with reservation id=%s",
				itemID, conflict.ID)
			return ErrItemNotAvailable
		}
	}

	return nil
}
