package get_unavailable_ranges

import (
	"github.com/m04kA/JWL-RentalService/internal/domain"
	getUnavailableRanges "github.com/m04kA/JWL-RentalService/internal/usecase/get_unavailable_ranges"
)

// DateRangeResponse занятое окно дат, границы включительно
type DateRangeResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// UnavailableRangesResponse HTTP response model
type UnavailableRangesResponse struct {
	ItemID     string              `json:"itemId"`
	BufferDays int                 `json:"bufferDays"`
	Ranges     []DateRangeResponse `json:"unavailableRanges"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getUnavailableRanges.Response) *UnavailableRangesResponse {
	ranges := make([]DateRangeResponse, 0, len(resp.Ranges))
	for _, r := range resp.Ranges {
		ranges = append(ranges, DateRangeResponse{
			From: r.From.Format(domain.DateFormat),
			To:   r.To.Format(domain.DateFormat),
		})
	}

	return &UnavailableRangesResponse{
		ItemID:     resp.ItemID,
		BufferDays: resp.BufferDays,
		Ranges:     ranges,
	}
}
