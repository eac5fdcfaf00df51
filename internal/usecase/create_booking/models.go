package create_booking

import "time"

// Request модель запроса на создание бронирования одного изделия
type Request struct {
	ItemID         string     // ID изделия
	Email          string     // Email клиента (нормализуется при разрешении личности)
	FullName       string     // Имя клиента
	CompanyName    *string    // Название компании (опционально)
	StartDate      time.Time  // Первый день аренды (включительно)
	EndDate        time.Time  // Последний день аренды (включительно)
	AccessPassword *string    // Пароль доступа к форме бронирования (опционально)
	Notes          *string    // Заметки клиента (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ReservationID string    // ID созданного бронирования
	ItemID        string    // ID изделия
	ProfileID     string    // ID профиля клиента
	StartDate     time.Time // Первый день аренды
	EndDate       time.Time // Последний день аренды
	Status        string    // Статус бронирования (всегда pending при создании)
	Notes         *string   // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
