package domain

// Time format constants
const (
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// Default business values used when no configuration is present
const (
	DefaultLowInventoryThreshold = 0.20
	DefaultSettingsCacheTTLSec   = 300
)

// ActiveStatuses список статусов, учитываемых при подсчете занятости номеров
// Используется при фильтрации бронирований в расчете доступности
var ActiveStatuses = []ReservationStatus{
	StatusConfirmed,
	StatusCheckedIn,
	StatusCheckedOut,
}

// InactiveStatuses список статусов, не влияющих на занятость
var InactiveStatuses = []ReservationStatus{
	StatusPending,
	StatusCancelled,
}
