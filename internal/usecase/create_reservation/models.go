package create_reservation

import "time"

// Request модель запроса на создание бронирования через прямой канал
type Request struct {
	RoomID     int64      // ID номера
	CheckIn    time.Time  // Дата заезда
	CheckOut   time.Time  // Дата выезда (не включается в проживание)
	GuestName  string     // Имя гостя
	GuestEmail string     // Email гостя
	GuestPhone *string    // Телефон гостя (опционально)
	Adults     int        // Количество взрослых
	Children   int        // Количество детей
	Notes      *string    // Пожелания гостя (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64
	RoomID     int64
	CheckIn    time.Time
	CheckOut   time.Time
	Status     string
	Source     string
	GuestName  string
	GuestEmail string
	GuestPhone *string
	Adults     int
	Children   int
	TotalPrice float64
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
