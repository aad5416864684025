package process_channel_event

// EventBookingCreated единственный тип события, который reconciler
// сейчас материализует в бронирование
const EventBookingCreated = "booking.created"

// Notification уведомление внешнего канала (формат Booking.com коннектора)
type Notification struct {
	Event string           `json:"event"`
	Data  NotificationData `json:"data"`
}

// NotificationData полезная нагрузка уведомления
type NotificationData struct {
	RoomID       string       `json:"room_id"`    // идентификатор номера на стороне канала
	BookingID    string       `json:"booking_id"` // идентификатор бронирования на стороне канала
	GuestDetails GuestDetails `json:"guest_details"`
	CheckinDate  string       `json:"checkin_date"`  // YYYY-MM-DD
	CheckoutDate string       `json:"checkout_date"` // YYYY-MM-DD
	TotalPrice   float64      `json:"total_price"`
	Adults       int          `json:"adults"`
	Children     int          `json:"children"`
}

// GuestDetails контактные данные гостя из уведомления
type GuestDetails struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Outcome результат обработки аутентифицированного уведомления
type Outcome string

const (
	// OutcomeCreated бронирование создано
	OutcomeCreated Outcome = "created"
	// OutcomeDuplicate бронирование уже существует, повторная доставка
	OutcomeDuplicate Outcome = "duplicate"
	// OutcomeRoomUnmapped номер канала не привязан к внутреннему номеру
	OutcomeRoomUnmapped Outcome = "room_unmapped"
	// OutcomeIgnoredEvent тип события пока не обрабатывается
	OutcomeIgnoredEvent Outcome = "ignored_event"
	// OutcomeInvalidPayload полезная нагрузка не распарсилась
	OutcomeInvalidPayload Outcome = "invalid_payload"
	// OutcomeError внутренняя ошибка обработки; событие все равно подтверждено
	OutcomeError Outcome = "error"
)

// Result результат обработки уведомления
// Любое аутентифицированное уведомление дает Result (и подтверждение
// каналу), независимо от исхода обработки
type Result struct {
	Event         string
	Outcome       Outcome
	ReservationID *int64
}
