package domain

import "time"

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusActive    ReservationStatus = "active"
	StatusReturned  ReservationStatus = "returned"
	StatusCancelled ReservationStatus = "cancelled"
)

// IsBlocking returns true if reservations in this status occupy the item's dates
func (s ReservationStatus) IsBlocking() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusActive
}

// Reservation represents a booking of one item for one date range by one customer
// Даты включительные с обеих сторон, без компонента времени
type Reservation struct {
	ID        string
	ItemID    string
	ProfileID string
	StartDate time.Time
	EndDate   time.Time
	Status    ReservationStatus

	// GroupID общий идентификатор для бронирований, созданных одним групповым запросом
	// nil для одиночных бронирований
	GroupID *string
	Notes   *string

	// Данные выдачи и возврата, заполняются контуром исполнения заказов
	DispatchNotes *string
	ReturnNotes   *string
	DispatchImage *string
	ReturnImage   *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBlocking returns true if the reservation occupies the item's dates
func (r *Reservation) IsBlocking() bool {
	return r.Status.IsBlocking()
}

// CanBeCancelled returns true if the reservation can still be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// Range returns the reserved date range
func (r *Reservation) Range() DateRange {
	return DateRange{From: DateOnly(r.StartDate), To: DateOnly(r.EndDate)}
}

// BlockedRange returns the effective blocked window: the reserved range
// plus bufferDays after the end for physical turnaround
// Буфер добавляется только после конца аренды, никогда перед началом
func (r *Reservation) BlockedRange(bufferDays int) DateRange {
	return r.Range().ExtendEnd(bufferDays)
}
