package get_unavailable_ranges

import "errors"

var (
	// ErrItemNotFound возвращается, когда изделие не найдено
	ErrItemNotFound = errors.New("get_unavailable_ranges: item not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_unavailable_ranges: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_unavailable_ranges: internal error")
)
