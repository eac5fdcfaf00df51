package domain

import "time"

// ItemStatus represents the lifecycle status of a rentable item
type ItemStatus string

const (
	ItemStatusActive      ItemStatus = "active"
	ItemStatusMaintenance ItemStatus = "maintenance"
	ItemStatusRetired     ItemStatus = "retired"
)

// Item represents a rentable jewelry piece
// Каталог управляется отдельным админским контуром, движок бронирования
// читает изделия только для проверок
type Item struct {
	ID         string
	Name       string
	Category   string
	DailyPrice float64
	Status     ItemStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable returns true if the item can accept new reservations
func (i *Item) IsBookable() bool {
	return i.Status == ItemStatusActive
}
