package domain

// Default configuration values
const (
	// DefaultTurnaroundBufferDays буфер на обслуживание изделия между арендами,
	// если значение не задано в настройках
	DefaultTurnaroundBufferDays = 1
)

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxFullNameLength           = 200
	MaxCompanyNameLength        = 200
	MaxCancellationReasonLength = 500
	MaxBulkItems                = 50
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BlockingStatuses статусы, при которых бронирование занимает даты изделия
// Используется при проверке доступности
var BlockingStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusActive,
}

// publicEmailDomains домены публичных почтовых сервисов
// Для таких адресов организация по домену не выводится
var publicEmailDomains = map[string]struct{}{
	"gmail.com":      {},
	"outlook.com":    {},
	"hotmail.com":    {},
	"icloud.com":     {},
	"me.com":         {},
	"yahoo.com":      {},
	"msn.com":        {},
	"qq.com":         {},
	"163.com":        {},
	"126.com":        {},
	"live.com":       {},
	"aol.com":        {},
	"protonmail.com": {},
	"mail.com":       {},
}

// IsPublicEmailDomain возвращает true, если домен принадлежит публичному почтовому сервису
func IsPublicEmailDomain(domain string) bool {
	_, ok := publicEmailDomains[domain]
	return ok
}
