package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/service/rules"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
}

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// RuleValidator интерфейс валидатора бизнес-правил бронирования
type RuleValidator interface {
	Validate(ctx context.Context, checkIn, checkOut time.Time) *rules.ValidationResult
}

// Metrics интерфейс доменных метрик
type Metrics interface {
	IncReservationCreated(source string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
