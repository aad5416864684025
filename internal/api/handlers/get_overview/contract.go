package get_overview

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/availability/models"
)

type AvailabilityService interface {
	Overview(ctx context.Context) (*models.OverviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
