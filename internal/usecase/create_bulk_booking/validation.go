package create_bulk_booking

import (
	"fmt"
	"regexp"

	"github.com/m04kA/JWL-RentalService/internal/domain"
)

// emailPattern проверяет форму local@domain.tld
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// validateRequest валидирует входные данные запроса
// Отказ происходит на первой же ошибке, до любых обращений к хранилищу
func validateRequest(req *Request) error {
	if !emailPattern.MatchString(domain.NormalizeEmail(req.Email)) {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, req.Email)
	}

	if !domain.NewDateRange(req.StartDate, req.EndDate).IsValid() {
		return ErrInvalidDates
	}

	if len(req.ItemIDs) == 0 {
		return fmt.Errorf("%w: at least one itemID is required", ErrInvalidInput)
	}

	if len(req.ItemIDs) > domain.MaxBulkItems {
		return fmt.Errorf("%w: at most %d items per request", ErrInvalidInput, domain.MaxBulkItems)
	}

	// Повтор изделия в группе всегда конфликтовал бы сам с собой
	seen := make(map[string]struct{}, len(req.ItemIDs))
	for _, id := range req.ItemIDs {
		if id == "" {
			return fmt.Errorf("%w: empty itemID", ErrInvalidInput)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: item %s", ErrDuplicateItems, id)
		}
		seen[id] = struct{}{}
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
