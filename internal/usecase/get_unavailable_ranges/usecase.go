package get_unavailable_ranges

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/JWL-RentalService/internal/domain"
	itemRepo "github.com/m04kA/JWL-RentalService/internal/infra/storage/item"
)

// UseCase use case получения занятых окон изделия для календарных подсказок
//
// Результат справочный: к моменту отправки бронирования состояние могло
// измениться, решающая проверка всегда выполняется в транзакции создания
type UseCase struct {
	reservationRepo ReservationRepository
	itemRepo        ItemRepository
	settingsRepo    SettingsRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	itemRepo ItemRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		itemRepo:        itemRepo,
		settingsRepo:    settingsRepo,
		logger:          logger,
	}
}

// Execute выполняет use case получения занятых окон
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.ItemID == "" {
		return nil, fmt.Errorf("%w: itemID is required", ErrInvalidInput)
	}

	uc.logger.Info("GetUnavailableRanges: item=%s", req.ItemID)

	if _, err := uc.itemRepo.GetByID(ctx, req.ItemID); err != nil {
		if errors.Is(err, itemRepo.ErrItemNotFound) {
			uc.logger.Warn("GetUnavailableRanges: item id=%s not found", req.ItemID)
			return nil, ErrItemNotFound
		}
		uc.logger.Error("GetUnavailableRanges: failed to get item id=%s: %v", req.ItemID, err)
		return nil, fmt.Errorf("%w: failed to get item: %v", ErrInternal, err)
	}

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("GetUnavailableRanges: failed to load settings: %v", err)
		return nil, fmt.Errorf("%w: failed to load settings: %v", ErrInternal, err)
	}

	blocking, err := uc.reservationRepo.GetBlockingByItemID(ctx, req.ItemID)
	if err != nil {
		uc.logger.Error("GetUnavailableRanges: failed to get reservations for item=%s: %v", req.ItemID, err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	ranges := domain.MergeBlockedRanges(blocking, settings.TurnaroundBufferDays)

	uc.logger.Info("GetUnavailableRanges: item=%s has %d blocked ranges (buffer=%d)",
		req.ItemID, len(ranges), settings.TurnaroundBufferDays)

	return &Response{
		ItemID:     req.ItemID,
		BufferDays: settings.TurnaroundBufferDays,
		Ranges:     ranges,
	}, nil
}
