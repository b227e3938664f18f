package create_booking

import (
	"time"
)

// Request модель запроса на создание бронирования
type Request struct {
	Name        string    // Имя клиента
	Email       string    // Email клиента (ключ защиты от повторной отправки)
	Phone       string    // Телефон клиента
	CapsterID   int64     // ID капстера
	Date        time.Time // Дата бронирования (без времени)
	Hour        int       // Час начала (0..23)
	ServiceID   int64     // ID услуги
	PaymentID   int64     // ID способа оплаты
	HaircutType string    // Тип стрижки
	Image       *string   // Референс стрижки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64
	Name        string
	Email       string
	Phone       string
	CapsterID   int64
	Date        time.Time
	Hour        int
	ServiceID   int64
	PaymentID   int64
	Status      string
	Rating      *int
	Image       *string
	HaircutType string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
