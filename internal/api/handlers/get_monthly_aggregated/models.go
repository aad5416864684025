package get_monthly_aggregated

import (
	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/service/availability/models"
)

// AggregatedDayResponse суммарная доступность на день со стилем для календаря
type AggregatedDayResponse struct {
	Date           string `json:"date"` // YYYY-MM-DD
	AvailableUnits int    `json:"availableUnits"`
	BookedUnits    int    `json:"bookedUnits"`
	Status         string `json:"status"` // FULL | LIMITED | AVAILABLE
	Color          string `json:"color"`
	TextColor      string `json:"textColor"`
}

// MonthlyAggregatedResponse HTTP response model
type MonthlyAggregatedResponse struct {
	Month         string                  `json:"month"` // YYYY-MM
	TotalCapacity int                     `json:"totalCapacity"`
	Days          []AggregatedDayResponse `json:"days"`
}

// AggregatedDayFromService конвертирует агрегированный день в HTTP модель
func AggregatedDayFromService(d models.AggregatedDay) AggregatedDayResponse {
	return AggregatedDayResponse{
		Date:           d.Date.Format(domain.DateFormat),
		AvailableUnits: d.AvailableUnits,
		BookedUnits:    d.BookedUnits,
		Status:         string(d.Status),
		Color:          d.Color,
		TextColor:      d.TextColor,
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.MonthlyAggregatedResponse) *MonthlyAggregatedResponse {
	days := make([]AggregatedDayResponse, 0, len(resp.Days))
	for _, d := range resp.Days {
		days = append(days, AggregatedDayFromService(d))
	}

	return &MonthlyAggregatedResponse{
		Month:         resp.Month.Format(domain.MonthFormat),
		TotalCapacity: resp.TotalCapacity,
		Days:          days,
	}
}
