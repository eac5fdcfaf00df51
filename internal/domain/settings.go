package domain

import "time"

// BookingSettings снэпшот настроек бронирования, читается один раз на запрос
// Движок бронирования никогда не изменяет эти значения
type BookingSettings struct {
	// BookingPassword общий пароль доступа к публичной форме бронирования
	// nil или пустая строка — форма открыта без пароля
	// Это информационный барьер, не граница безопасности: сравнение строковое
	BookingPassword *string

	// TurnaroundBufferDays обязательный зазор после конца аренды
	// на чистку и осмотр изделия
	TurnaroundBufferDays int

	UpdatedAt time.Time
}

// DefaultBookingSettings возвращает настройки по умолчанию:
// без пароля, буфер DefaultTurnaroundBufferDays
func DefaultBookingSettings() *BookingSettings {
	return &BookingSettings{
		BookingPassword:      nil,
		TurnaroundBufferDays: DefaultTurnaroundBufferDays,
	}
}

// PasswordRequired returns true if a non-empty booking password is configured
func (s *BookingSettings) PasswordRequired() bool {
	return s.BookingPassword != nil && *s.BookingPassword != ""
}

// PasswordMatches проверяет переданный пароль
// Если пароль не настроен, любой ввод (включая пустой) проходит
// Сравнение точное, с учетом регистра
func (s *BookingSettings) PasswordMatches(supplied string) bool {
	if !s.PasswordRequired() {
		return true
	}
	return supplied == *s.BookingPassword
}
