package get_monthly_aggregated

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/service/availability/models"
)

type AvailabilityService interface {
	MonthlyAggregated(ctx context.Context, monthStart time.Time) (*models.MonthlyAggregatedResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
