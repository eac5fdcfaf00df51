package create_bulk_booking

import (
	"time"

	"github.com/m04kA/JWL-RentalService/internal/domain"
	createBulkBooking "github.com/m04kA/JWL-RentalService/internal/usecase/create_bulk_booking"
)

// CreateBulkBookingRequest HTTP request model
type CreateBulkBookingRequest struct {
	ItemIDs        []string `json:"itemIds"`
	Email          string   `json:"email"`
	FullName       string   `json:"fullName"`
	CompanyName    *string  `json:"companyName,omitempty"`
	StartDate      string   `json:"startDate"`
	EndDate        string   `json:"endDate"`
	AccessPassword *string  `json:"accessPassword,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
}

// BulkBookingResponse HTTP response model
type BulkBookingResponse struct {
	GroupID        string   `json:"groupId"`
	ReservationIDs []string `json:"reservationIds"`
	ProfileID      string   `json:"profileId"`
	StartDate      string   `json:"startDate"`
	EndDate        string   `json:"endDate"`
	Status         string   `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBulkBookingRequest) ToUseCaseRequest() (*createBulkBooking.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &createBulkBooking.Request{
		ItemIDs:        r.ItemIDs,
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
func FromUseCaseResponse(resp *createBulkBooking.Response) *BulkBookingResponse {
	return &BulkBookingResponse{
		GroupID:        resp.GroupID,
		ReservationIDs: resp.ReservationIDs,
		ProfileID:      resp.ProfileID,
		StartDate:      resp.StartDate.Format(domain.DateFormat),
		EndDate:        resp.EndDate.Format(domain.DateFormat),
		Status:         resp.Status,
	}
}
