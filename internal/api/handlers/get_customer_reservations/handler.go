package get_customer_reservations

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/JWL-RentalService/internal/api/handlers"
	"github.com/m04kA/JWL-RentalService/internal/service/reservations"
)

const (
	msgMissingEmail    = "отсутствует email клиента"
	msgProfileNotFound = "клиент не найден"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/customers/{email}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	email := vars["email"]
	if email == "" {
		h.logger.Warn("GET /customers/{email}/reservations - Missing email")
		handlers.RespondBadRequest(w, msgMissingEmail)
		return
	}

	result, err := h.service.GetCustomerReservations(r.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrProfileNotFound):
			h.logger.Warn("GET /customers/{email}/reservations - Profile not found: email=%s", email)
			handlers.RespondNotFound(w, msgProfileNotFound)

		default:
			h.logger.Error("GET /customers/{email}/reservations - Failed to get reservations: email=%s, error=%v",
				email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /customers/{email}/reservations - Retrieved %d reservations: email=%s",
		result.Total, email)
	handlers.RespondJSON(w, http.StatusOK, result)
}
