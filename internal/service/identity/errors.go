package identity

import "errors"

var (
	// ErrProfileWrite возвращается, когда профиль не удалось создать или обновить
	ErrProfileWrite = errors.New("identity: failed to write profile")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("identity: internal error")
)
