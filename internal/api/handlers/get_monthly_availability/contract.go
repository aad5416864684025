package get_monthly_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/service/availability/models"
)

type AvailabilityService interface {
	MonthlyAvailability(ctx context.Context, roomID int64, monthStart time.Time) (*models.MonthlyAvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
