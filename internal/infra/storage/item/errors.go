package item

import "errors"

var (
	// ErrItemNotFound возвращается, когда изделие не найдено
	ErrItemNotFound = errors.New("item.repository: item not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("item.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("item.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("item.repository: failed to scan row")
)
