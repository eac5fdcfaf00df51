package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/JWL-RentalService/internal/api/handlers"
	createBooking "github.com/m04kA/JWL-RentalService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidEmail       = "некорректный email"
	msgInvalidDates       = "некорректный диапазон дат"
	msgAccessDenied       = "неверный пароль доступа к бронированию"
	msgItemNotFound       = "изделие не найдено"
	msgItemNotBookable    = "изделие недоступно для аренды"
	msgItemNotAvailable   = "изделие занято на выбранные даты"
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
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondErrorCode(w, http.StatusBadRequest, codeInvalidDates, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrItemNotAvailable):
			h.logger.Warn("POST /bookings - Item not available: item_id=%s, dates=%s..%s",
				req.ItemID, req.StartDate, req.EndDate)
			handlers.RespondErrorCode(w, http.StatusConflict, codeNotAvailable, msgItemNotAvailable)

		case errors.Is(err, createBooking.ErrItemNotFound):
			h.logger.Warn("POST /bookings - Item not found: item_id=%s", req.ItemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, createBooking.ErrItemNotBookable):
			h.logger.Warn("POST /bookings - Item not bookable: item_id=%s", req.ItemID)
			handlers.RespondError(w, http.StatusConflict, msgItemNotBookable)

		case errors.Is(err, createBooking.ErrAccessDenied):
			h.logger.Warn("POST /bookings - Access denied: email=%s", req.Email)
			handlers.RespondErrorCode(w, http.StatusForbidden, codeAccessDenied, msgAccessDenied)

		case errors.Is(err, createBooking.ErrInvalidEmail):
			h.logger.Warn("POST /bookings - Invalid email: email=%s", req.Email)
			handlers.RespondErrorCode(w, http.StatusBadRequest, codeInvalidEmail, msgInvalidEmail)

		case errors.Is(err, createBooking.ErrInvalidDates):
			h.logger.Warn("POST /bookings - Invalid dates: dates=%s..%s", req.StartDate, req.EndDate)
			handlers.RespondErrorCode(w, http.StatusBadRequest, codeInvalidDates, msgInvalidDates)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: item_id=%s, email=%s, error=%v",
				req.ItemID, req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: reservation_id=%s, item_id=%s",
		result.ReservationID, result.ItemID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
