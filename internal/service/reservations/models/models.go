package models

import (
	"time"

	"github.com/m04kA/JWL-RentalService/internal/domain"
)

// ReservationResponse модель бронирования для вызывающей стороны
type ReservationResponse struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"itemId"`
	ProfileID string    `json:"profileId"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Status    string    `json:"status"`
	GroupID   *string   `json:"groupId,omitempty"`
	Notes     *string   `json:"notes,omitempty"`

	DispatchNotes *string `json:"dispatchNotes,omitempty"`
	ReturnNotes   *string `json:"returnNotes,omitempty"`

	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse список бронирований
type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
	Total        int                    `json:"total"`
}

// CancelReservationRequest запрос на отмену бронирования
type CancelReservationRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// FromDomainReservation конвертирует domain модель в ответ сервиса
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:                 r.ID,
		ItemID:             r.ItemID,
		ProfileID:          r.ProfileID,
		StartDate:          r.StartDate,
		EndDate:            r.EndDate,
		Status:             string(r.Status),
		GroupID:            r.GroupID,
		Notes:              r.Notes,
		DispatchNotes:      r.DispatchNotes,
		ReturnNotes:        r.ReturnNotes,
		CancellationReason: r.CancellationReason,
		CancelledAt:        r.CancelledAt,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	out := make([]*ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, FromDomainReservation(r))
	}
	return &ReservationListResponse{
		Reservations: out,
		Total:        len(out),
	}
}
