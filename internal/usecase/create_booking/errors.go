package create_booking

import "errors"

var (
	// ErrInvalidEmail возвращается при синтаксически некорректном email
	ErrInvalidEmail = errors.New("create_booking: invalid email")

	// ErrInvalidDates возвращается при отсутствующих датах или start > end
	ErrInvalidDates = errors.New("create_booking: invalid date range")

	// ErrAccessDenied возвращается при неверном пароле доступа к бронированию
	ErrAccessDenied = errors.New("create_booking: access denied")

	// ErrItemNotFound возвращается, когда изделие не найдено
	ErrItemNotFound = errors.New("create_booking: item not found")

	// ErrItemNotBookable возвращается, когда изделие снято с аренды
	// (maintenance или retired)
	ErrItemNotBookable = errors.New("create_booking: item is not bookable")

	// ErrItemNotAvailable возвращается, когда запрошенные даты заняты
	// с учетом буфера на обслуживание
	ErrItemNotAvailable = errors.New("create_booking: item is not available for these dates")

	// ErrProfileWrite возвращается, когда не удалось создать или найти профиль клиента
	ErrProfileWrite = errors.New("create_booking: failed to resolve customer profile")

	// ErrReservationWrite возвращается, когда вставка бронирования не удалась
	ErrReservationWrite = errors.New("create_booking: failed to write reservation")

	// ErrSettingsUnavailable возвращается, когда настройки бронирования недоступны
	ErrSettingsUnavailable = errors.New("create_booking: booking settings unavailable")

	// ErrInvalidInput возвращается при прочих некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
