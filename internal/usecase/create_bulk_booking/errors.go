package create_bulk_booking

import "errors"

var (
	// ErrInvalidEmail возвращается при синтаксически некорректном email
	ErrInvalidEmail = errors.New("create_bulk_booking: invalid email")

	// ErrInvalidDates возвращается при отсутствующих датах или start > end
	ErrInvalidDates = errors.New("create_bulk_booking: invalid date range")

	// ErrAccessDenied возвращается при неверном пароле доступа к бронированию
	ErrAccessDenied = errors.New("create_bulk_booking: access denied")

	// ErrItemNotFound возвращается, когда одно из изделий не найдено
	ErrItemNotFound = errors.New("create_bulk_booking: item not found")

	// ErrItemNotBookable возвращается, когда одно из изделий снято с аренды
	ErrItemNotBookable = errors.New("create_bulk_booking: item is not bookable")

	// ErrItemNotAvailable возвращается, когда хотя бы одно изделие занято
	// на запрошенные даты — групповой запрос отклоняется целиком
	ErrItemNotAvailable = errors.New("create_bulk_booking: item is not available for these dates")

	// ErrDuplicateItems возвращается, когда в запросе повторяется изделие
	ErrDuplicateItems = errors.New("create_bulk_booking: duplicate item ids in request")

	// ErrProfileWrite возвращается, когда не удалось создать или найти профиль клиента
	ErrProfileWrite = errors.New("create_bulk_booking: failed to resolve customer profile")

	// ErrReservationWrite возвращается, когда вставка бронирований не удалась
	ErrReservationWrite = errors.New("create_bulk_booking: failed to write reservations")

	// ErrSettingsUnavailable возвращается, когда настройки бронирования недоступны
	ErrSettingsUnavailable = errors.New("create_bulk_booking: booking settings unavailable")

	// ErrInvalidInput возвращается при прочих некорректных входных данных
	ErrInvalidInput = errors.New("create_bulk_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_bulk_booking: internal error")
)
