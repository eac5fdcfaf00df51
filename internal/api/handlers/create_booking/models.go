package create_booking

import (
	"time"

	"github.com/m04kA/JWL-RentalService/internal/domain"
	createBooking "github.com/m04kA/JWL-RentalService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ItemID         string  `json:"itemId"`
	Email          string  `json:"email"`
	FullName       string  `json:"fullName"`
	CompanyName    *string `json:"companyName,omitempty"`
	StartDate      string  `json:"startDate"` // "2026-06-10"
	EndDate        string  `json:"endDate"`   // "2026-06-12"
	AccessPassword *string `json:"accessPassword,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ReservationID string  `json:"reservationId"`
	ItemID        string  `json:"itemId"`
	ProfileID     string  `json:"profileId"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ItemID:         r.ItemID,
		Email:          r.Email,
		FullName:       r.FullName,
		CompanyName:    r.CompanyName,
		StartDate:      startDate,
		EndDate:        endDate,
		AccessPassword: r.AccessPassword,
		Notes:          r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *ReservationResponse {
	return &ReservationResponse{
		ReservationID: resp.ReservationID,
		ItemID:        resp.ItemID,
		ProfileID:     resp.ProfileID,
		StartDate:     resp.StartDate.Format(domain.DateFormat),
		EndDate:       resp.EndDate.Format(domain.DateFormat),
		Status:        resp.Status,
		Notes:         resp.Notes,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
