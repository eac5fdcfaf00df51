package reservations

import (
	"context"

	"github.com/m04kA/JWL-RentalService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	GetByProfileID(ctx context.Context, profileID string) ([]*domain.Reservation, error)
	Cancel(ctx context.Context, id string, reason string) error
}

// ProfileRepository интерфейс репозитория профилей
type ProfileRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
