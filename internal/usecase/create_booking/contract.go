package create_booking

import (
	"context"

	"github.com/m04kA/JWL-RentalService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
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

// IdentityResolver интерфейс сервиса разрешения личности клиента
type IdentityResolver interface {
	Resolve(ctx context.Context, email, fullName string, companyName *string) (*domain.Profile, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
