package get_room_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/service/availability/models"
)

type AvailabilityService interface {
	RoomAvailability(ctx context.Context, roomID int64, from, to time.Time) (*models.RoomAvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
