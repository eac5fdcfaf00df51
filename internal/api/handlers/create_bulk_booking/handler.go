package create_bulk_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/JWL-RentalService/internal/api/handlers"
	createBulkBooking "github.com/m04kA/JWL-RentalService/internal/usecase/create_bulk_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidEmail       = "некорректный email"
	msgInvalidDates       = "некорректный диапазон дат"
	msgAccessDenied       = "неверный пароль доступа к бронированию"
	msgItemNotFound       = "одно из изделий не найдено"
	msgItemNotBookable    = "одно из изделий недоступно для аренды"
	msgItemNotAvailable   = "одно из изделий занято на выбранные даты"
	msgDuplicateItems     = "изделие повторяется в запросе"
	msgInvalidInput       = "некорректные данные запроса"
)

// Стабильные машинные коды ошибок для клиентов формы бронирования
const (
	codeInvalidEmail = "INVALID_EMAIL"
	codeInvalidDates = "INVALID_DATES"
	codeAccessDenied = "ACCESS_DENIED"
	codeNotAvailable = "NOT_AVAILABLE"
)

type Handler struct {
	useCase CreateBulkBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBulkBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/bulk
//
// Группа бронируется целиком: отказ по любому изделию отклоняет весь запрос
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBulkBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/bulk - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings/bulk - Failed to parse request: %v", err)
		handlers.RespondErrorCode(w, http.StatusBadRequest, codeInvalidDates, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBulkBooking.ErrItemNotAvailable):
			h.logger.Warn("POST /bookings/bulk - Item not available: items=%d, dates=%s..%s",
				len(req.ItemIDs), req.StartDate, req.EndDate)
			handlers.RespondErrorCode(w, http.StatusConflict, codeNotAvailable, msgItemNotAvailable)

		case errors.Is(err, createBulkBooking.ErrItemNotFound):
			h.logger.Warn("POST /bookings/bulk - Item not found: items=%d", len(req.ItemIDs))
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, createBulkBooking.ErrItemNotBookable):
			h.logger.Warn("POST /bookings/bulk - Item not bookable: items=%d", len(req.ItemIDs))
			handlers.RespondError(w, http.StatusConflict, msgItemNotBookable)

		case errors.Is(err, createBulkBooking.ErrDuplicateItems):
			h.logger.Warn("POST /bookings/bulk - Duplicate items in request: %v", err)
			handlers.RespondBadRequest(w, msgDuplicateItems)

		case errors.Is(err, createBulkBooking.ErrAccessDenied):
			h.logger.Warn("POST /bookings/bulk - Access denied: email=%s", req.Email)
			handlers.RespondErrorCode(w, http.StatusForbidden, codeAccessDenied, msgAccessDenied)

		case errors.Is(err, createBulkBooking.ErrInvalidEmail):
			h.logger.Warn("POST /bookings/bulk - Invalid email: email=%s", req.Email)
			handlers.RespondErrorCode(w, http.StatusBadRequest, codeInvalidEmail, msgInvalidEmail)

		case errors.Is(err, createBulkBooking.ErrInvalidDates):
			h.logger.Warn("POST /bookings/bulk - Invalid dates: dates=%s..%s", req.StartDate, req.EndDate)
			handlers.RespondErrorCode(w, http.StatusBadRequest, codeInvalidDates, msgInvalidDates)

		case errors.Is(err, createBulkBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/bulk - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/bulk - Failed to create bulk booking: items=%d, email=%s, error=%v",
				len(req.ItemIDs), req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings/bulk - Bulk booking created successfully: group_id=%s, reservations=%d",
		result.GroupID, len(result.ReservationIDs))
	handlers.RespondJSON(w, http.StatusCreated, response)
}
