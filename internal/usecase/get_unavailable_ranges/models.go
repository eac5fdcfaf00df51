package get_unavailable_ranges

import "github.com/m04kA/JWL-RentalService/internal/domain"

// Request модель запроса занятых окон изделия
type Request struct {
	ItemID string // ID изделия
}

// Response модель ответа со списком занятых окон
// Окна расширены буфером на обслуживание, отсортированы и слиты —
// клиент использует их как подсказки календаря
type Response struct {
	ItemID     string
	BufferDays int
	Ranges     []domain.DateRange
}
