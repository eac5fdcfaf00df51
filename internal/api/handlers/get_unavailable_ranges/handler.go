package get_unavailable_ranges

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/JWL-RentalService/internal/api/handlers"
	getUnavailableRanges "github.com/m04kA/JWL-RentalService/internal/usecase/get_unavailable_ranges"
)

const (
	msgMissingItemID = "отсутствует ID изделия"
	msgItemNotFound  = "изделие не найдено"
)

type Handler struct {
	useCase GetUnavailableRangesUseCase
	logger  Logger
}

func NewHandler(useCase GetUnavailableRangesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/items/{itemId}/unavailable-ranges
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем itemId из URL
	vars := mux.Vars(r)
	itemID := vars["itemId"]
	if itemID == "" {
		h.logger.Warn("GET /items/{id}/unavailable-ranges - Missing item ID")
		handlers.RespondBadRequest(w, msgMissingItemID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getUnavailableRanges.Request{ItemID: itemID})
	if err != nil {
		switch {
		case errors.Is(err, getUnavailableRanges.ErrItemNotFound):
			h.logger.Warn("GET /items/{id}/unavailable-ranges - Item not found: item_id=%s", itemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, getUnavailableRanges.ErrInvalidInput):
			h.logger.Warn("GET /items/{id}/unavailable-ranges - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingItemID)

		default:
			h.logger.Error("GET /items/{id}/unavailable-ranges - Failed to get ranges: item_id=%s, error=%v",
				itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /items/{id}/unavailable-ranges - Retrieved %d ranges: item_id=%s",
		len(result.Ranges), itemID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
