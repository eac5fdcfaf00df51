package cancel_reservation

import (
	"context"

	"github.com/m04kA/JWL-RentalService/internal/service/reservations/models"
)

type ReservationService interface {
	Cancel(ctx context.Context, id string, req *models.CancelReservationRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
