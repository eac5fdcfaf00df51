package get_unavailable_ranges

import (
	"context"

	"github.com/m04kA/JWL-RentalService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetBlockingByItemID(ctx context.Context, itemID string) ([]*domain.Reservation, error)
}

// ItemRepository интерфейс репозитория изделий
type ItemRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Item, error)
}

// SettingsRepository интерфейс репозитория настроек бронирования
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.BookingSettings, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
