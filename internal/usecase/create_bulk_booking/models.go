package create_bulk_booking

import "time"

// Request модель запроса на групповое бронирование нескольких изделий
// Все изделия бронируются на один диапазон дат одним клиентом
type Request struct {
	ItemIDs        []string  // ID изделий, без повторов
	Email          string    // Email клиента
	FullName       string    // Имя клиента
	CompanyName    *string   // Название компании (опционально)
	StartDate      time.Time // Первый день аренды (включительно)
	EndDate        time.Time // Последний день аренды (включительно)
	AccessPassword *string   // Пароль доступа к форме бронирования (опционально)
	Notes          *string   // Заметки клиента (опционально)
}

// Response модель ответа с созданной группой бронирований
type Response struct {
	GroupID        string    // Общий идентификатор группы
	ReservationIDs []string  // ID созданных бронирований, в порядке ItemIDs запроса
	ProfileID      string    // ID профиля клиента
	StartDate      time.Time // Первый день аренды
	EndDate        time.Time // Последний день аренды
	Status         string    // Статус бронирований (всегда pending при создании)
}
