package models

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// RoomAvailabilityResponse доступность номера по дням в диапазоне [From, To)
type RoomAvailabilityResponse struct {
	RoomID   int64
	RoomName string
	Capacity int
	From     time.Time
	To       time.Time
	Days     []domain.DayAvailability

	// Агрегаты по диапазону для дашбордов
	AvailableNights int
	BookedNights    int
}

// DateAvailabilityEntry доступность одного номера на конкретную дату
type DateAvailabilityEntry struct {
	RoomID         int64
	RoomName       string
	Capacity       int
	BookedUnits    int
	AvailableUnits int
	IsAvailable    bool
}

// DateAvailabilityResponse доступность всех номеров на конкретную дату
type DateAvailabilityResponse struct {
	Date  time.Time
	Rooms []DateAvailabilityEntry
}

// MonthlyAvailabilityResponse доступность номера по дням месяца
type MonthlyAvailabilityResponse struct {
	RoomID   int64
	RoomName string
	Capacity int
	Month    time.Time
	Days     []domain.DayAvailability
}

// AggregatedDay суммарная доступность всех номеров на день со статусом
type AggregatedDay struct {
	Date           time.Time
	AvailableUnits int
	BookedUnits    int
	Status         domain.DayStatus
	Color          string
	TextColor      string
}

// MonthlyAggregatedResponse суммарная доступность по дням месяца
type MonthlyAggregatedResponse struct {
	Month         time.Time
	TotalCapacity int
	Days          []AggregatedDay
}

// OverviewResponse сводка "сегодня против следующей недели"
type OverviewResponse struct {
	Today    AggregatedDay
	NextWeek AggregatedDay
}
