package create_booking

import (
	"fmt"
	"regexp"

	"github.com/m04kA/JWL-RentalService/internal/domain"
)

// emailPattern проверяет форму local@domain.tld
// Не претендует на полную валидацию RFC 5322, отсекает очевидно битые адреса
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// validateEmail проверяет синтаксическую корректность email
func validateEmail(email string) error {
	if !emailPattern.MatchString(domain.NormalizeEmail(email)) {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return nil
}

// validateDates проверяет, что обе даты заданы и start <= end
func validateDates(r domain.DateRange) error {
	if !r.IsValid() {
		return ErrInvalidDates
	}
	return nil
}

// validateRequest валидирует входные данные запроса
// Порядок проверок фиксирован: email, даты, прочие поля —
// отказ происходит на первой же ошибке, до любых обращений к хранилищу
func validateRequest(req *Request) error {
	if err := validateEmail(req.Email); err != nil {
		return err
	}

	if err := validateDates(domain.NewDateRange(req.StartDate, req.EndDate)); err != nil {
		return err
	}

	if req.ItemID == "" {
		return fmt.Errorf("%w: itemID is required", ErrInvalidInput)
	}

	if req.FullName == "" {
		return fmt.Errorf("%w: fullName is required", ErrInvalidInput)
	}

	if len(req.FullName) > domain.MaxFullNameLength {
		return fmt.Errorf("%w: fullName too long", ErrInvalidInput)
	}

	if req.CompanyName != nil && len(*req.CompanyName) > domain.MaxCompanyNameLength {
		return fmt.Errorf("%w: companyName too long", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes too long", ErrInvalidInput)
	}

	return nil
}

// validatePasswordGate проверяет пароль доступа к форме бронирования
// Пустой настроенный пароль пропускает любой ввод; сравнение точное,
// с учетом регистра — это информационный барьер, не граница безопасности
func validatePasswordGate(settings *domain.BookingSettings, supplied *string) error {
	value := ""
	if supplied != nil {
		value = *supplied
	}
	if !settings.PasswordMatches(value) {
		return ErrAccessDenied
	}
	return nil
}
